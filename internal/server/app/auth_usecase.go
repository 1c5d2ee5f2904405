// Package app реализует сценарии уровня приложения.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"starhub/internal/server/domain/entities"
	"starhub/internal/server/domain/services"
	"starhub/internal/server/ports/api"
	"starhub/internal/server/ports/repositories"
	svc "starhub/internal/server/ports/services"
	"starhub/pkg/logger"
)

const (
	methodLogin       = "Login"
	methodCurrentUser = "CurrentUser"

	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgTokenIssued         = "access token issued"
	msgResolvingUser       = "resolving current user"
	msgUserSinceDeleted    = "token is valid but user no longer exists"

	msgErrFindingUser        = "error finding user by email"
	msgErrVerifyingPassword  = "error verifying password"
	msgErrGenerateLoginToken = "failed to generate token on login"

	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxGeneratingToken    = "generating token"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Login аутентифицирует пользователя по email и паролю и выдает токен доступа.
// Несуществующий email и неверный пароль дают одну и ту же ошибку:
// ответ не должен позволять перечислять пользователей.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*api.AccessToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))

	token, expiresAt, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrGenerateLoginToken, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgTokenIssued, zap.Int64("userID", user.ID))
	return &api.AccessToken{Token: token, ExpiresAt: expiresAt}, nil
}

// CurrentUser возвращает пользователя, к которому привязан валидный токен.
// Пользователь мог быть удален после выдачи токена, поэтому ErrUserNotFound
// здесь отличается от ошибки аутентификации.
func (a *AuthUseCaseImpl) CurrentUser(ctx context.Context, userID int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCurrentUser), zap.Int64("userID", userID))
	log.Debug(ctx, msgResolvingUser)

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserSinceDeleted)
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return user, nil
}
