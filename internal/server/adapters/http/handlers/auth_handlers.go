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
	LogHandlerLogin       = "auth handler: login"
	LogHandlerCurrentUser = "auth handler: current user"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// AuthHandler содержит HTTP обработчики для аутентификации.
type AuthHandler struct {
	authUseCase api.AuthUseCase
}

// NewAuthHandler создает новый экземпляр обработчика аутентификации.
func NewAuthHandler(authUseCase api.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Login обрабатывает запрос на вход пользователя.
func (h *AuthHandler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessage(ctx, http.StatusBadRequest, MsgInvalidRequestBody)
	}

	if req.Email == "" || req.Password == "" {
		return sendMessage(ctx, http.StatusBadRequest, "email and password are required")
	}

	token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.LoginResponse{AccessToken: token.Token}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// CurrentUser обрабатывает запрос на получение текущего пользователя.
// Токен уже проверен middleware; здесь перепроверяется существование
// пользователя, и его отсутствие дает 404, а не 401.
func (h *AuthHandler) CurrentUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCurrentUser)

	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return sendMessage(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	user, err := h.authUseCase.CurrentUser(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendDomainError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.CurrentUserResponse{CurrentUser: dto.NewUserResponse(user)}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
