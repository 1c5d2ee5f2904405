// Package repositories определяет порты для слоя хранения.
package repositories

import (
	"context"

	"starhub/internal/server/domain/entities"
)

// UserRepository определяет интерфейс для операций над пользователями.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	List(ctx context.Context) ([]*entities.User, error)
}
