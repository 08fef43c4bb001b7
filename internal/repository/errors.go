package repository

import "errors"

// Errors surfaced by repository implementations so callers can react
// without matching on driver-specific messages.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
