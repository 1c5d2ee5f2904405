package handlers

import (
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
	LogHandlerListUsers    = "catalog handler: list users"
	LogHandlerGetUser      = "catalog handler: get user"
	LogHandlerListPlanets  = "catalog handler: list planets"
	LogHandlerGetPlanet    = "catalog handler: get planet"
	LogHandlerListPeople   = "catalog handler: list people"
	LogHandlerGetPeople    = "catalog handler: get people"
	LogHandlerDeletePeople = "catalog handler: delete people"
)

// CatalogHandler содержит HTTP обработчики каталога.
type CatalogHandler struct {
	catalogUseCase api.CatalogUseCase
}

// NewCatalogHandler создает новый экземпляр обработчика каталога.
func NewCatalogHandler(catalogUseCase api.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUseCase: catalogUseCase}
}

// ListUsers обрабатывает запрос списка пользователей.
func (h *CatalogHandler) ListUsers(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListUsers)

	users, err := h.catalogUseCase.ListUsers(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserResponses(users)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetUser обрабатывает запрос пользователя по ID.
func (h *CatalogHandler) GetUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetUser)

	id, err := pathID(ctx)
	if err != nil {
		return sendMessage(ctx, http.StatusBadRequest, MsgInvalidID)
	}

	user, err := h.catalogUseCase.GetUser(requestCtx, id)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListPlanets обрабатывает запрос списка планет.
func (h *CatalogHandler) ListPlanets(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListPlanets)

	planets, err := h.catalogUseCase.ListPlanets(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPlanetResponses(planets)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetPlanet обрабатывает запрос планеты по ID.
func (h *CatalogHandler) GetPlanet(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetPlanet)

	id, err := pathID(ctx)
	if err != nil {
		return sendMessage(ctx, http.StatusBadRequest, MsgInvalidID)
	}

	planet, err := h.catalogUseCase.GetPlanet(requestCtx, id)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPlanetResponse(planet)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListPeople обрабатывает запрос списка персонажей.
func (h *CatalogHandler) ListPeople(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListPeople)

	people, err := h.catalogUseCase.ListPeople(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPeopleResponses(people)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetPeople обрабатывает запрос персонажа по ID.
func (h *CatalogHandler) GetPeople(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetPeople)

	id, err := pathID(ctx)
	if err != nil {
		return sendMessage(ctx, http.StatusBadRequest, MsgInvalidID)
	}

	person, err := h.catalogUseCase.GetPeople(requestCtx, id)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPeopleResponse(person)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeletePeople обрабатывает запрос на удаление персонажа.
// Успешный ответ текстовый, для совместимости внешнего контракта.
func (h *CatalogHandler) DeletePeople(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeletePeople)

	id, err := pathID(ctx)
	if err != nil {
		return sendMessage(ctx, http.StatusBadRequest, MsgInvalidID)
	}

	if err := h.catalogUseCase.DeletePeople(requestCtx, id); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).SendString("Deleted"); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
