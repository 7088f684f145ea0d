package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound covers both unknown and expired session tokens.
var ErrSessionNotFound = errors.New("session not found or expired")

// SessionStore abstracts server-side session persistence keyed by an
// opaque token handed to the browser.
type SessionStore interface {
	Save(ctx context.Context, token, username string) error
	// GetUsername resolves a token to its username, honoring expiry.
	GetUsername(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	// DeleteForUser drops every session belonging to a username.
	DeleteForUser(ctx context.Context, username string) error
	// PurgeExpired removes expired sessions. Used for housekeeping.
	PurgeExpired(ctx context.Context) error
}
