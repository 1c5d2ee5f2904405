package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для операций с токенами JWT.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID int64) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (int64, error)
}
