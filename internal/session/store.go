package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a token does not map to a live session.
var ErrNoSession = errors.New("session not found")

// Store keeps the token -> user mapping for logged-in users. Sessions
// have no expiry; they live until Delete is called at logout.
type Store interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}
