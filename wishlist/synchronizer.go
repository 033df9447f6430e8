// Package wishlist mirrors the server-side favorites set. It is the cart
// synchronizer's simpler sibling: writes always resynchronize with a full
// fetch, and there is no optimistic patching.
package wishlist

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Synchronizer) {
		s.log = log
	}
}

// Synchronizer mirrors the wishlist as a set keyed by product identifier.
type Synchronizer struct {
	api API
	log *zap.Logger

	mu      sync.RWMutex
	entries map[string]Entry
	subs    map[int]func([]Entry)
	nextSub int
}

// New creates a wishlist synchronizer with an empty mirror.
func New(backend API, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		api:     backend,
		log:     zap.NewNop(),
		entries: make(map[string]Entry),
		subs:    make(map[int]func([]Entry)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches the full favorites set and replaces the mirror. On failure
// the previous mirror is left untouched and the error is propagated.
func (s *Synchronizer) Refresh(ctx context.Context) ([]Entry, error) {
	resp, err := s.api.GetWishlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh wishlist: %w", err)
	}

	entries := make(map[string]Entry, len(resp.Data))
	for _, p := range resp.Data {
		entries[p.ID] = Entry{
			ProductID:      p.ID,
			Title:          p.Title,
			ImageURL:       p.ImageCover,
			Price:          p.Price,
			RatingsAverage: p.RatingsAverage,
		}
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.log.Debug("wishlist refreshed", zap.Int("count", len(entries)))
	s.publish()
	return s.Entries(), nil
}

// Add favorites a product, then unconditionally resynchronizes so membership
// reflects the authoritative set.
func (s *Synchronizer) Add(ctx context.Context, productID string) error {
	if _, err := s.api.AddWishlistItem(ctx, productID); err != nil {
		return fmt.Errorf("add to wishlist %s: %w", productID, err)
	}
	if _, err := s.Refresh(ctx); err != nil {
		return err
	}
	return nil
}

// Remove unfavorites a product, then resynchronizes.
func (s *Synchronizer) Remove(ctx context.Context, productID string) error {
	if _, err := s.api.RemoveWishlistItem(ctx, productID); err != nil {
		return fmt.Errorf("remove from wishlist %s: %w", productID, err)
	}
	if _, err := s.Refresh(ctx); err != nil {
		return err
	}
	return nil
}

// Contains reports membership in the latest fetched set.
func (s *Synchronizer) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[productID]
	return ok
}

// Entries returns the mirror as a slice ordered by product identifier.
func (s *Synchronizer) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted()
}

// Subscribe registers fn to run after every published mirror change and
// returns its unsubscribe function.
func (s *Synchronizer) Subscribe(fn func([]Entry)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// publish notifies subscribers outside the lock.
func (s *Synchronizer) publish() {
	s.mu.RLock()
	entries := s.sorted()
	fns := make([]func([]Entry), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(entries)
	}
}

// sorted flattens the set; callers must hold at least the read lock.
func (s *Synchronizer) sorted() []Entry {
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ProductID < entries[j].ProductID
	})
	return entries
}
