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
	methodAddFavorite    = "AddFavorite"
	methodRemoveFavorite = "RemoveFavorite"
	methodListFavorites  = "ListFavorites"

	msgFavoriteAdded   = "favorite added"
	msgFavoriteRemoved = "favorite removed"

	errCtxCheckingActingUser = "checking acting user"
	errCtxCheckingTarget     = "checking target entity"
	errCtxAddingFavorite     = "adding favorite"
	errCtxRemovingFavorite   = "removing favorite"
	errCtxListingFavorites   = "listing favorites"
)

// FavoritesUseCaseImpl реализует интерфейс FavoritesUseCase.
// Оба отношения избранного используют общий механизм: одинаковая
// идемпотентность и одинаковые виды ошибок для планет и персонажей.
type FavoritesUseCaseImpl struct {
	userRepo     repositories.UserRepository
	planetRepo   repositories.PlanetRepository
	peopleRepo   repositories.PeopleRepository
	favoriteRepo repositories.FavoriteRepository
}

// NewFavoritesUseCase создает новый экземпляр сервиса избранного.
func NewFavoritesUseCase(
	userRepo repositories.UserRepository,
	planetRepo repositories.PlanetRepository,
	peopleRepo repositories.PeopleRepository,
	favoriteRepo repositories.FavoriteRepository,
) api.FavoritesUseCase {
	return &FavoritesUseCaseImpl{
		userRepo:     userRepo,
		planetRepo:   planetRepo,
		peopleRepo:   peopleRepo,
		favoriteRepo: favoriteRepo,
	}
}

// AddPlanet добавляет планету в избранное пользователя. Идемпотентно.
func (f *FavoritesUseCaseImpl) AddPlanet(ctx context.Context, userID, planetID int64) error {
	return f.mutate(ctx, repositories.FavoritePlanets, userID, planetID, f.favoriteRepo.Add, methodAddFavorite, errCtxAddingFavorite, msgFavoriteAdded)
}

// RemovePlanet снимает планету с избранного пользователя. Идемпотентно.
func (f *FavoritesUseCaseImpl) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	return f.mutate(ctx, repositories.FavoritePlanets, userID, planetID, f.favoriteRepo.Remove, methodRemoveFavorite, errCtxRemovingFavorite, msgFavoriteRemoved)
}

// AddPeople добавляет персонажа в избранное пользователя. Идемпотентно.
func (f *FavoritesUseCaseImpl) AddPeople(ctx context.Context, userID, peopleID int64) error {
	return f.mutate(ctx, repositories.FavoritePeople, userID, peopleID, f.favoriteRepo.Add, methodAddFavorite, errCtxAddingFavorite, msgFavoriteAdded)
}

// RemovePeople снимает персонажа с избранного пользователя. Идемпотентно.
func (f *FavoritesUseCaseImpl) RemovePeople(ctx context.Context, userID, peopleID int64) error {
	return f.mutate(ctx, repositories.FavoritePeople, userID, peopleID, f.favoriteRepo.Remove, methodRemoveFavorite, errCtxRemovingFavorite, msgFavoriteRemoved)
}

// List возвращает оба множества избранного пользователя.
func (f *FavoritesUseCaseImpl) List(ctx context.Context, userID int64) (*api.UserFavorites, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListFavorites), zap.Int64("userID", userID))

	if err := f.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	planets, err := f.favoriteRepo.ListPlanets(ctx, userID)
	if err != nil {
		log.Error(ctx, errCtxListingFavorites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingFavorites, err)
	}

	people, err := f.favoriteRepo.ListPeople(ctx, userID)
	if err != nil {
		log.Error(ctx, errCtxListingFavorites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingFavorites, err)
	}

	return &api.UserFavorites{Planets: planets, People: people}, nil
}

// ListPlanets возвращает избранные планеты пользователя.
func (f *FavoritesUseCaseImpl) ListPlanets(ctx context.Context, userID int64) ([]*entities.Planet, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListFavorites), zap.Int64("userID", userID))

	if err := f.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	planets, err := f.favoriteRepo.ListPlanets(ctx, userID)
	if err != nil {
		log.Error(ctx, errCtxListingFavorites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingFavorites, err)
	}
	return planets, nil
}

// ListPeople возвращает избранных персонажей пользователя.
func (f *FavoritesUseCaseImpl) ListPeople(ctx context.Context, userID int64) ([]*entities.People, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListFavorites), zap.Int64("userID", userID))

	if err := f.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	people, err := f.favoriteRepo.ListPeople(ctx, userID)
	if err != nil {
		log.Error(ctx, errCtxListingFavorites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingFavorites, err)
	}
	return people, nil
}

// mutate выполняет общую последовательность для добавления и снятия избранного:
// проверка действующего пользователя, проверка цели, мутация отношения.
func (f *FavoritesUseCaseImpl) mutate(
	ctx context.Context,
	kind repositories.FavoriteKind,
	userID, targetID int64,
	op func(context.Context, repositories.FavoriteKind, int64, int64) error,
	method, errCtx, successMsg string,
) error {
	log := logger.Log(ctx).With(
		zap.String("method", method),
		zap.String("kind", string(kind)),
		zap.Int64("userID", userID),
		zap.Int64("targetID", targetID),
	)

	if err := f.checkUser(ctx, userID); err != nil {
		return err
	}

	if err := f.checkTarget(ctx, kind, targetID); err != nil {
		log.Debug(ctx, errCtxCheckingTarget, zap.Error(err))
		return err
	}

	if err := op(ctx, kind, userID, targetID); err != nil {
		log.Error(ctx, errCtx, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	log.Info(ctx, successMsg)
	return nil
}

// checkUser проверяет существование действующего пользователя.
func (f *FavoritesUseCaseImpl) checkUser(ctx context.Context, userID int64) error {
	if _, err := f.userRepo.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingActingUser, err)
	}
	return nil
}

// checkTarget проверяет существование целевой сущности нужного вида.
func (f *FavoritesUseCaseImpl) checkTarget(ctx context.Context, kind repositories.FavoriteKind, targetID int64) error {
	var err error
	switch kind {
	case repositories.FavoritePlanets:
		_, err = f.planetRepo.FindByID(ctx, targetID)
	case repositories.FavoritePeople:
		_, err = f.peopleRepo.FindByID(ctx, targetID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingTarget, err)
	}
	return nil
}
