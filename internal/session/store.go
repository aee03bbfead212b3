// Package session maps opaque session identifiers to the authenticated
// identity of a request. The identifier travels in an HTTP-only cookie; the
// identity only ever lives server-side.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a session id is unknown, expired, or its
// stored identity is incomplete.
var ErrNotFound = errors.New("session not found")

// Identity is the authenticated identity bound to a session. A value missing
// either field invalidates the whole session.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (i Identity) complete() bool {
	return i.UserID != "" && i.Email != ""
}

// Store defines the interface for session-state operations.
type Store interface {
	// Create establishes a new session for the identity and returns its
	// opaque id.
	Create(ctx context.Context, identity Identity) (string, error)

	// Get reads the identity bound to a session id without side effects.
	Get(ctx context.Context, id string) (Identity, error)

	// Delete discards the session unconditionally.
	Delete(ctx context.Context, id string) error
}
