package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid cpf or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrRefreshTokenMissing = errors.New("refresh token not provided")
	ErrUserNotFound        = errors.New("user not found")
)
