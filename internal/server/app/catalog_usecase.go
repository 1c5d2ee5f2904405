package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"starhub/internal/server/domain/entities"
	"starhub/internal/server/ports/api"
	"starhub/internal/server/ports/repositories"
	"starhub/pkg/logger"
)

const (
	methodListUsers    = "ListUsers"
	methodGetUser      = "GetUser"
	methodListPlanets  = "ListPlanets"
	methodGetPlanet    = "GetPlanet"
	methodListPeople   = "ListPeople"
	methodGetPeople    = "GetPeople"
	methodDeletePeople = "DeletePeople"

	msgPeopleDeleted = "people deleted, favorite memberships removed by cascade"

	errCtxListingUsers   = "listing users"
	errCtxGettingUser    = "getting user"
	errCtxListingPlanets = "listing planets"
	errCtxGettingPlanet  = "getting planet"
	errCtxListingPeople  = "listing people"
	errCtxGettingPeople  = "getting people"
	errCtxDeletingPeople = "deleting people"
)

// CatalogUseCaseImpl реализует интерфейс CatalogUseCase.
type CatalogUseCaseImpl struct {
	userRepo   repositories.UserRepository
	planetRepo repositories.PlanetRepository
	peopleRepo repositories.PeopleRepository
}

// NewCatalogUseCase создает новый экземпляр сервиса каталога.
func NewCatalogUseCase(
	userRepo repositories.UserRepository,
	planetRepo repositories.PlanetRepository,
	peopleRepo repositories.PeopleRepository,
) api.CatalogUseCase {
	return &CatalogUseCaseImpl{
		userRepo:   userRepo,
		planetRepo: planetRepo,
		peopleRepo: peopleRepo,
	}
}

// ListUsers возвращает всех пользователей.
func (c *CatalogUseCaseImpl) ListUsers(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsers))

	users, err := c.userRepo.List(ctx)
	if err != nil {
		log.Error(ctx, errCtxListingUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	return users, nil
}

// GetUser возвращает пользователя по ID.
func (c *CatalogUseCaseImpl) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUser), zap.Int64("id", id))

	user, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, errCtxGettingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGettingUser, err)
	}
	return user, nil
}

// ListPlanets возвращает все планеты.
func (c *CatalogUseCaseImpl) ListPlanets(ctx context.Context) ([]*entities.Planet, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListPlanets))

	planets, err := c.planetRepo.List(ctx)
	if err != nil {
		log.Error(ctx, errCtxListingPlanets, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingPlanets, err)
	}
	return planets, nil
}

// GetPlanet возвращает планету по ID.
func (c *CatalogUseCaseImpl) GetPlanet(ctx context.Context, id int64) (*entities.Planet, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPlanet), zap.Int64("id", id))

	planet, err := c.planetRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, errCtxGettingPlanet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGettingPlanet, err)
	}
	return planet, nil
}

// ListPeople возвращает всех персонажей.
func (c *CatalogUseCaseImpl) ListPeople(ctx context.Context) ([]*entities.People, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListPeople))

	people, err := c.peopleRepo.List(ctx)
	if err != nil {
		log.Error(ctx, errCtxListingPeople, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingPeople, err)
	}
	return people, nil
}

// GetPeople возвращает персонажа по ID.
func (c *CatalogUseCaseImpl) GetPeople(ctx context.Context, id int64) (*entities.People, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPeople), zap.Int64("id", id))

	person, err := c.peopleRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, errCtxGettingPeople, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGettingPeople, err)
	}
	return person, nil
}

// DeletePeople удаляет персонажа по ID.
func (c *CatalogUseCaseImpl) DeletePeople(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeletePeople), zap.Int64("id", id))

	if err := c.peopleRepo.Delete(ctx, id); err != nil {
		log.Debug(ctx, errCtxDeletingPeople, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingPeople, err)
	}

	log.Info(ctx, msgPeopleDeleted)
	return nil
}
