// Package guard gates navigation: views requiring an authenticated session
// resolve to the login entry point when no credential is present.
package guard

import (
	"context"
	"fmt"

	"github.com/creastat/storefront/session"
)

// LoginPath is the unauthenticated entry point.
const LoginPath = "/login"

// publicPaths may be visited without a session.
var publicPaths = map[string]struct{}{
	LoginPath:          {},
	"/register":        {},
	"/forgot-password": {},
}

// Guard decides whether a requested view may render. It is stateless beyond
// reading the session store.
type Guard struct {
	store session.Store
}

// New creates a guard over the given session store.
func New(store session.Store) *Guard {
	return &Guard{store: store}
}

// Resolve returns the path that should actually render: the requested path
// when it is public or a session is present, LoginPath otherwise. It issues
// no backend calls.
func (g *Guard) Resolve(ctx context.Context, path string) (string, error) {
	if _, ok := publicPaths[path]; ok {
		return path, nil
	}

	sess, err := g.store.Restore(ctx)
	if err != nil {
		return "", fmt.Errorf("restore session: %w", err)
	}
	if sess == nil || sess.Token == "" {
		return LoginPath, nil
	}
	return path, nil
}

// Authenticated reports whether a session with a credential is present.
func (g *Guard) Authenticated(ctx context.Context) bool {
	sess, err := g.store.Restore(ctx)
	return err == nil && sess != nil && sess.Token != ""
}
