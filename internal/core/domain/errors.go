package domain

import "errors"

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// on sign-in, so callers cannot probe for username existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrValidation   = errors.New("validation failed")
	ErrUserExists   = errors.New("username already exists")
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenExpired and ErrTokenInvalid are distinct for diagnostics but
	// collapse into one unauthenticated outcome at the HTTP boundary.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrRoleForbidden = errors.New("role not allowed")
)
