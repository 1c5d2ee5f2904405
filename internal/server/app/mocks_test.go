package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"starhub/internal/server/domain/entities"
	"starhub/internal/server/ports/repositories"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

type mockPlanetRepository struct {
	mock.Mock
}

func (m *mockPlanetRepository) FindByID(ctx context.Context, id int64) (*entities.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Planet), args.Error(1)
}

func (m *mockPlanetRepository) List(ctx context.Context) ([]*entities.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Planet), args.Error(1)
}

type mockPeopleRepository struct {
	mock.Mock
}

func (m *mockPeopleRepository) FindByID(ctx context.Context, id int64) (*entities.People, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.People), args.Error(1)
}

func (m *mockPeopleRepository) List(ctx context.Context) ([]*entities.People, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.People), args.Error(1)
}

func (m *mockPeopleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) Add(ctx context.Context, kind repositories.FavoriteKind, userID, targetID int64) error {
	args := m.Called(ctx, kind, userID, targetID)
	return args.Error(0)
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, kind repositories.FavoriteKind, userID, targetID int64) error {
	args := m.Called(ctx, kind, userID, targetID)
	return args.Error(0)
}

func (m *mockFavoriteRepository) ListPlanets(ctx context.Context, userID int64) ([]*entities.Planet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Planet), args.Error(1)
}

func (m *mockFavoriteRepository) ListPeople(ctx context.Context, userID int64) ([]*entities.People, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.People), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, userID int64) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}
