package api

import (
	"context"

	"starhub/internal/server/domain/entities"
)

// CatalogUseCase определяет порт для чтения каталога и удаления персонажей.
type CatalogUseCase interface {
	ListUsers(ctx context.Context) ([]*entities.User, error)

	GetUser(ctx context.Context, id int64) (*entities.User, error)

	ListPlanets(ctx context.Context) ([]*entities.Planet, error)

	GetPlanet(ctx context.Context, id int64) (*entities.Planet, error)

	ListPeople(ctx context.Context) ([]*entities.People, error)

	GetPeople(ctx context.Context, id int64) (*entities.People, error)

	DeletePeople(ctx context.Context, id int64) error
}
