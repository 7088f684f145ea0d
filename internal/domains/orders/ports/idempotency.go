package ports

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyConflict signals that an idempotency key was reused with a
// different request payload.
var ErrIdempotencyConflict = errors.New("idempotency key reused with a different request")

// IdempotencyRecord ties an idempotency key to the fingerprint of the
// submission it first accepted and to the order it produced.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	OrderID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IdempotencyStore persists idempotency keys for order submission.
type IdempotencyStore interface {
	// Get loads a record by key, returning nil when absent.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	// Save inserts the record. If the key exists with the same hash and
	// order the stored record is returned; a differing hash returns the
	// stored record together with ErrIdempotencyConflict.
	Save(ctx context.Context, record IdempotencyRecord) (*IdempotencyRecord, error)
}
