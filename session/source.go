package session

import "context"

// Source adapts a Store to the api client's token source: every request
// reads the current credential, so a logout is picked up immediately.
type Source struct {
	store Store
}

// NewSource creates a token source over the given store.
func NewSource(store Store) *Source {
	return &Source{store: store}
}

// Token returns the stored bearer credential, or "" when logged out.
func (s *Source) Token(ctx context.Context) (string, error) {
	sess, err := s.store.Restore(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	return sess.Token, nil
}
