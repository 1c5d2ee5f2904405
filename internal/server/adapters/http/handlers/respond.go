// Package handlers содержит HTTP обработчики REST API.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"starhub/internal/server/adapters/http/dto"
	"starhub/internal/server/adapters/http/middleware"
	"starhub/internal/server/domain/entities"
	"starhub/internal/server/domain/services"
)

// Сообщения ошибок внешнего контракта.
const (
	MsgUserNotFound       = "User not found"
	MsgPlanetNotFound     = "Planet not found"
	MsgPeopleNotFound     = "People not found"
	MsgBadCredentials     = "Bad email or password"
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidRequestBody = "Invalid request body"
	MsgInvalidID          = "Invalid id"
	MsgInternalError      = "Internal Server Error"
)

// sendMessage отправляет JSON ответ с одним полем message.
func sendMessage(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// sendDomainError переводит доменную ошибку в HTTP статус и тело.
// Доменные ошибки доходят до границы без изменений и отображаются здесь.
func sendDomainError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return sendMessage(ctx, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, entities.ErrPlanetNotFound):
		return sendMessage(ctx, http.StatusNotFound, MsgPlanetNotFound)
	case errors.Is(err, entities.ErrPeopleNotFound):
		return sendMessage(ctx, http.StatusNotFound, MsgPeopleNotFound)
	case errors.Is(err, services.ErrInvalidCredentials):
		return sendMessage(ctx, http.StatusUnauthorized, MsgBadCredentials)
	case errors.Is(err, services.ErrInvalidJWTToken),
		errors.Is(err, services.ErrExpiredJWTToken),
		errors.Is(err, services.ErrUnauthenticated):
		return sendMessage(ctx, http.StatusUnauthorized, MsgUnauthorized)
	default:
		return sendMessage(ctx, http.StatusInternalServerError, MsgInternalError)
	}
}

// pathID извлекает числовой параметр id из пути запроса.
func pathID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing id path parameter: %w", err)
	}
	return id, nil
}

// authenticatedUserID извлекает ID пользователя, сохраненный auth middleware.
func authenticatedUserID(ctx fiber.Ctx) (int64, bool) {
	userID, ok := ctx.Locals(middleware.UserIDKey).(int64)
	return userID, ok
}
