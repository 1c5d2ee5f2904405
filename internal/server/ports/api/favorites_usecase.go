package api

import (
	"context"

	"starhub/internal/server/domain/entities"
)

// UserFavorites содержит оба множества избранного пользователя.
type UserFavorites struct {
	Planets []*entities.Planet
	People  []*entities.People
}

// FavoritesUseCase определяет порт для операций над избранным.
// Все операции требуют разрешенной личности действующего пользователя.
type FavoritesUseCase interface {
	AddPlanet(ctx context.Context, userID, planetID int64) error

	RemovePlanet(ctx context.Context, userID, planetID int64) error

	AddPeople(ctx context.Context, userID, peopleID int64) error

	RemovePeople(ctx context.Context, userID, peopleID int64) error

	List(ctx context.Context, userID int64) (*UserFavorites, error)

	ListPlanets(ctx context.Context, userID int64) ([]*entities.Planet, error)

	ListPeople(ctx context.Context, userID int64) ([]*entities.People, error)
}
