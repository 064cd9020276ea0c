// Package session keeps in-flight assessment state behind an opaque token.
// Each SessionState is owned by exactly one respondent; handlers never rely
// on process memory surviving between requests, so the store is the only
// place session state lives.
package session

import (
	"context"
	"errors"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

// ErrNotFound is returned when a token resolves to no live session, either
// because it never existed or because it expired.
var ErrNotFound = errors.New("session not found")

// Store is the keyed session state store. Backends are interchangeable:
// an in-memory map for single-process deployments, Redis when state must
// survive restarts or be shared between instances.
type Store interface {
	// Create assigns a fresh opaque token to the session and stores it.
	Create(ctx context.Context, s *model.SessionState) error
	// Get returns the session for the token, or ErrNotFound.
	Get(ctx context.Context, token string) (*model.SessionState, error)
	// Save overwrites the stored session and refreshes its TTL.
	Save(ctx context.Context, s *model.SessionState) error
	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
