package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailAlreadyInUse     = errors.New("email already registered")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrWeakPassword          = errors.New("password must be 8+ chars, include uppercase and number")
	ErrMissingToken          = errors.New("no token provided")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrStaleToken            = errors.New("token has been invalidated")
	ErrRefreshTokenNotFound  = errors.New("refresh token not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrTooManyLoginAttempts  = errors.New("too many login attempts, please try again later")
)
