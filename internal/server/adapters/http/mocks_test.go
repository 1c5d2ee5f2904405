package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"starhub/internal/server/domain/entities"
	"starhub/internal/server/ports/api"
)

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(ctx context.Context, email, password string) (*api.AccessToken, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.AccessToken), args.Error(1)
}

func (m *mockAuthUseCase) CurrentUser(ctx context.Context, userID int64) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockCatalogUseCase struct {
	mock.Mock
}

func (m *mockCatalogUseCase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockCatalogUseCase) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockCatalogUseCase) ListPlanets(ctx context.Context) ([]*entities.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Planet), args.Error(1)
}

func (m *mockCatalogUseCase) GetPlanet(ctx context.Context, id int64) (*entities.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Planet), args.Error(1)
}

func (m *mockCatalogUseCase) ListPeople(ctx context.Context) ([]*entities.People, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.People), args.Error(1)
}

func (m *mockCatalogUseCase) GetPeople(ctx context.Context, id int64) (*entities.People, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.People), args.Error(1)
}

func (m *mockCatalogUseCase) DeletePeople(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFavoritesUseCase struct {
	mock.Mock
}

func (m *mockFavoritesUseCase) AddPlanet(ctx context.Context, userID, planetID int64) error {
	args := m.Called(ctx, userID, planetID)
	return args.Error(0)
}

func (m *mockFavoritesUseCase) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	args := m.Called(ctx, userID, planetID)
	return args.Error(0)
}

func (m *mockFavoritesUseCase) AddPeople(ctx context.Context, userID, peopleID int64) error {
	args := m.Called(ctx, userID, peopleID)
	return args.Error(0)
}

func (m *mockFavoritesUseCase) RemovePeople(ctx context.Context, userID, peopleID int64) error {
	args := m.Called(ctx, userID, peopleID)
	return args.Error(0)
}

func (m *mockFavoritesUseCase) List(ctx context.Context, userID int64) (*api.UserFavorites, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.UserFavorites), args.Error(1)
}

func (m *mockFavoritesUseCase) ListPlanets(ctx context.Context, userID int64) ([]*entities.Planet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Planet), args.Error(1)
}

func (m *mockFavoritesUseCase) ListPeople(ctx context.Context, userID int64) ([]*entities.People, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.People), args.Error(1)
}
