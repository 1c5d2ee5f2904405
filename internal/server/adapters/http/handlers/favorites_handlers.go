package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"starhub/internal/server/adapters/http/dto"
	"starhub/internal/server/ports/api"
	"starhub/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListFavorites       = "favorites handler: list favorites"
	LogHandlerListFavoritePlanets = "favorites handler: list favorite planets"
	LogHandlerListFavoritePeople  = "favorites handler: list favorite people"
	LogHandlerAddFavorite         = "favorites handler: add favorite"
	LogHandlerRemoveFavorite      = "favorites handler: remove favorite"
)

// Сообщения подтверждений внешнего контракта.
const (
	MsgPlanetAdded   = "Planet added to favorites"
	MsgPlanetRemoved = "Planet removed from favorites"
	MsgPeopleAdded   = "People added to favorites"
	MsgPeopleRemoved = "People removed from favorites"
)

// FavoritesHandler содержит HTTP обработчики избранного.
type FavoritesHandler struct {
	favoritesUseCase api.FavoritesUseCase
}

// NewFavoritesHandler создает новый экземпляр обработчика избранного.
func NewFavoritesHandler(favoritesUseCase api.FavoritesUseCase) *FavoritesHandler {
	return &FavoritesHandler{favoritesUseCase: favoritesUseCase}
}

// List обрабатывает запрос обоих множеств избранного текущего пользователя.
func (h *FavoritesHandler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListFavorites)

	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return sendMessage(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	favorites, err := h.favoritesUseCase.List(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	response := dto.FavoritesResponse{
		FavoritePlanets: dto.NewPlanetResponses(favorites.Planets),
		FavoritePeople:  dto.NewPeopleResponses(favorites.People),
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListPlanets обрабатывает запрос избранных планет текущего пользователя.
func (h *FavoritesHandler) ListPlanets(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListFavoritePlanets)

	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return sendMessage(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	planets, err := h.favoritesUseCase.ListPlanets(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPlanetResponses(planets)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListPeople обрабатывает запрос избранных персонажей текущего пользователя.
func (h *FavoritesHandler) ListPeople(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListFavoritePeople)

	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return sendMessage(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	people, err := h.favoritesUseCase.ListPeople(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPeopleResponses(people)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// AddPlanet обрабатывает запрос на добавление планеты в избранное.
func (h *FavoritesHandler) AddPlanet(ctx fiber.Ctx) error {
	return h.mutate(ctx, LogHandlerAddFavorite, MsgPlanetAdded, h.favoritesUseCase.AddPlanet)
}

// RemovePlanet обрабатывает запрос на снятие планеты с избранного.
func (h *FavoritesHandler) RemovePlanet(ctx fiber.Ctx) error {
	return h.mutate(ctx, LogHandlerRemoveFavorite, MsgPlanetRemoved, h.favoritesUseCase.RemovePlanet)
}

// AddPeople обрабатывает запрос на добавление персонажа в избранное.
func (h *FavoritesHandler) AddPeople(ctx fiber.Ctx) error {
	return h.mutate(ctx, LogHandlerAddFavorite, MsgPeopleAdded, h.favoritesUseCase.AddPeople)
}

// RemovePeople обрабатывает запрос на снятие персонажа с избранного.
func (h *FavoritesHandler) RemovePeople(ctx fiber.Ctx) error {
	return h.mutate(ctx, LogHandlerRemoveFavorite, MsgPeopleRemoved, h.favoritesUseCase.RemovePeople)
}

// mutate выполняет общую последовательность обработчиков мутаций избранного.
func (h *FavoritesHandler) mutate(
	ctx fiber.Ctx,
	logMsg, successMsg string,
	op func(context.Context, int64, int64) error,
) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logMsg)

	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return sendMessage(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	targetID, err := pathID(ctx)
	if err != nil {
		return sendMessage(ctx, http.StatusBadRequest, MsgInvalidID)
	}

	if err := op(requestCtx, userID, targetID); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	return sendMessage(ctx, http.StatusOK, successMsg)
}
