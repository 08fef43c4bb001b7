package service

import (
	"errors"
	"fmt"
)

// Error kinds the HTTP layer maps to response outcomes. Anything not
// wrapping one of these is treated as a store failure.
var (
	// ErrValidation marks missing or malformed form input.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("username is already taken")
	// ErrNotFound indicates an unknown record id.
	ErrNotFound = errors.New("not found")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
