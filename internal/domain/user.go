package domain

import "time"

// User represents an administrator account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	RegisteredAt time.Time
}
