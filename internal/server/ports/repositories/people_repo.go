package repositories

import (
	"context"

	"starhub/internal/server/domain/entities"
)

// PeopleRepository определяет интерфейс для операций над персонажами.
type PeopleRepository interface {
	FindByID(ctx context.Context, id int64) (*entities.People, error)

	List(ctx context.Context) ([]*entities.People, error)

	// Delete удаляет персонажа; связанные записи избранного снимаются каскадно.
	Delete(ctx context.Context, id int64) error
}
