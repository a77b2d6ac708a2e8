package auth

import "errors"

var (
	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidToken indicates a missing, malformed, or expired session token.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrInvalidInput indicates invalid registration input.
	ErrInvalidInput = errors.New("invalid registration input")
)
