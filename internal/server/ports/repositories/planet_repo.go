package repositories

import (
	"context"

	"starhub/internal/server/domain/entities"
)

// PlanetRepository определяет интерфейс для чтения каталога планет.
type PlanetRepository interface {
	FindByID(ctx context.Context, id int64) (*entities.Planet, error)

	List(ctx context.Context) ([]*entities.Planet, error)
}
