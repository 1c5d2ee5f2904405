package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapters "starhub/internal/server/adapters/services"
	"starhub/internal/server/domain/services"
)

func TestBcryptHashAndVerify(t *testing.T) {
	ctx := context.Background()
	passwordService := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := passwordService.Hash(ctx, "password123")

	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	ok, err := passwordService.Verify(ctx, "password123", hash)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptVerifyMismatch(t *testing.T) {
	ctx := context.Background()
	passwordService := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := passwordService.Hash(ctx, "password123")
	require.NoError(t, err)

	// Несовпадение пароля - не ошибка, а отрицательный результат.
	ok, err := passwordService.Verify(ctx, "wrong-password", hash)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHashValidation(t *testing.T) {
	ctx := context.Background()
	passwordService := adapters.NewBcrypt(bcrypt.MinCost)

	t.Run("empty password", func(t *testing.T) {
		_, err := passwordService.Hash(ctx, "")
		require.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := passwordService.Hash(ctx, "short")
		require.ErrorIs(t, err, services.ErrInvalidPassword)
	})
}

func TestBcryptVerifyValidation(t *testing.T) {
	ctx := context.Background()
	passwordService := adapters.NewBcrypt(bcrypt.MinCost)

	t.Run("empty password", func(t *testing.T) {
		ok, err := passwordService.Verify(ctx, "", "some-hash")
		require.ErrorIs(t, err, services.ErrInvalidPassword)
		assert.False(t, ok)
	})

	t.Run("empty hash", func(t *testing.T) {
		ok, err := passwordService.Verify(ctx, "password123", "")
		require.ErrorIs(t, err, services.ErrInvalidPassword)
		assert.False(t, ok)
	})
}
