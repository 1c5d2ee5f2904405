// Package api определяет порты уровня приложения.
package api

import (
	"context"
	"time"

	"starhub/internal/server/domain/entities"
)

// AccessToken представляет выданный токен доступа.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*AccessToken, error)

	// CurrentUser возвращает пользователя по разрешенной личности токена.
	// Отдельно от валидации токена: пользователь мог быть удален.
	CurrentUser(ctx context.Context, userID int64) (*entities.User, error)
}
