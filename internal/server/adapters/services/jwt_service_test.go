package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "starhub/internal/server/adapters/services"
	"starhub/internal/server/domain/services"
)

const testSecretKey = "test-secret-key-for-unit-tests"

func TestJWTGenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	tokenService := adapters.NewJWT(testSecretKey, 15*time.Minute)

	token, expiresAt, err := tokenService.GenerateAccessToken(ctx, 7)

	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	userID, err := tokenService.ValidateAccessToken(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestJWTValidateErrors(t *testing.T) {
	ctx := context.Background()
	tokenService := adapters.NewJWT(testSecretKey, 15*time.Minute)

	t.Run("garbage token", func(t *testing.T) {
		_, err := tokenService.ValidateAccessToken(ctx, "not-a-jwt")
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		otherService := adapters.NewJWT("another-secret-key", 15*time.Minute)
		token, _, err := otherService.GenerateAccessToken(ctx, 7)
		require.NoError(t, err)

		_, err = tokenService.ValidateAccessToken(ctx, token)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredService := adapters.NewJWT(testSecretKey, -time.Minute)
		token, _, err := expiredService.GenerateAccessToken(ctx, 7)
		require.NoError(t, err)

		_, err = tokenService.ValidateAccessToken(ctx, token)
		require.ErrorIs(t, err, services.ErrExpiredJWTToken)
	})

	t.Run("token without user_id claim", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		})
		token, err := raw.SignedString([]byte(testSecretKey))
		require.NoError(t, err)

		_, err = tokenService.ValidateAccessToken(ctx, token)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id": 7,
			"exp":     time.Now().Add(time.Minute).Unix(),
		})
		token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokenService.ValidateAccessToken(ctx, token)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})
}

func TestJWTGenerateWithEmptySecret(t *testing.T) {
	tokenService := adapters.NewJWT("", 15*time.Minute)

	_, _, err := tokenService.GenerateAccessToken(context.Background(), 7)

	require.ErrorIs(t, err, services.ErrGeneratingJWTToken)
}
