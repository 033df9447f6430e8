package session

import "context"

// Store defines the interface for session persistence.
type Store interface {
	// Restore reads the persisted session.
	// Returns nil if no session is stored (not an error).
	Restore(ctx context.Context) (*Session, error)

	// Save replaces the persisted session. Sets CreatedAt on first save
	// and refreshes UpdatedAt.
	Save(ctx context.Context, s *Session) error

	// Clear removes the persisted session. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error

	// Close closes the store and releases any resources.
	Close() error
}
