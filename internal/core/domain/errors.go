package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so that callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrMissingFields = errors.New("missing required fields")
	ErrSelfDelete    = errors.New("cannot delete own account")
	ErrForbidden     = errors.New("access forbidden")

	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)
