// Package services содержит доменные типы и ошибки сервисов аутентификации.
package services

import (
	"errors"
	"time"
)

// AuthErrors содержит ошибки, связанные с аутентификацией.
// Неверный пароль и несуществующий email намеренно не различаются,
// чтобы исключить перечисление пользователей.
var (
	ErrInvalidCredentials = errors.New("bad email or password")
	ErrUnauthenticated    = errors.New("missing or invalid token")
)

// JWTErrors содержит ошибки, связанные с JWT токенами.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// JWTConfig содержит настройки для JWT сервиса.
type JWTConfig struct {
	SecretKey      []byte
	AccessTokenTTL time.Duration
}

// JWTClaims определяет структуру данных JWT токена.
// Токен привязан ровно к одному пользователю и не несет иных утверждений.
type JWTClaims struct {
	UserID    int64     `json:"user_id"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
