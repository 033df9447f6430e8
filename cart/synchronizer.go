// Package cart keeps a local mirror of the authenticated user's server-side
// cart and exposes mutation operations that reconcile the mirror against the
// authoritative backend response after each write.
package cart

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/creastat/storefront"
	"github.com/creastat/storefront/api"
)

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Synchronizer) {
		s.log = log
	}
}

// Synchronizer mirrors the server cart. All methods are safe for concurrent
// use; racing mutations are last-write-wins at response-processing time, but
// the snapshot is never observed in a torn state.
type Synchronizer struct {
	api API
	log *zap.Logger

	mu      sync.RWMutex
	snap    Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
}

// New creates a cart synchronizer with an empty mirror. Call Refresh to
// populate it.
func New(backend API, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		api:  backend,
		log:  zap.NewNop(),
		subs: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches the authoritative cart and replaces the mirror in full.
// On failure the previous snapshot is left untouched and returned alongside
// the error.
func (s *Synchronizer) Refresh(ctx context.Context) (Snapshot, error) {
	resp, err := s.api.GetCart(ctx)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("refresh cart: %w", err)
	}

	snap := snapshotFrom(resp)
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.log.Debug("cart refreshed",
		zap.String("cart_id", snap.CartID),
		zap.Int("num_items", snap.NumItems))
	s.publish()
	return s.Snapshot(), nil
}

// AddItem adds one unit of a product, then refreshes so the mirror reflects
// the authoritative counts (the create response alone is not trusted). The
// returned Result carries the backend's status and message; a business
// failure such as out-of-stock is a Result, not an error.
func (s *Synchronizer) AddItem(ctx context.Context, productID string) (*Result, error) {
	resp, err := s.api.AddCartItem(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("add item %s: %w", productID, err)
	}

	if _, err := s.Refresh(ctx); err != nil {
		// The write landed; a failed reconciling refresh only delays
		// consistency until the next read.
		s.log.Warn("refresh after add failed", zap.String("product_id", productID), zap.Error(err))
	}

	return &Result{Status: resp.Status, Message: resp.Message}, nil
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are rejected
// locally with ErrInvalidQuantity before any network call. On success the
// matching line is patched in place so the view updates without a refresh
// round-trip; NumItems is deliberately not re-derived from the patch.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, productID string, quantity int) (*Result, error) {
	if quantity < 1 {
		return nil, storefront.ErrInvalidQuantity
	}

	resp, err := s.api.UpdateCartItem(ctx, productID, quantity)
	if err != nil {
		return nil, fmt.Errorf("update quantity for %s: %w", productID, err)
	}

	s.mu.Lock()
	for i := range s.snap.Items {
		if s.snap.Items[i].ProductID == productID {
			s.snap.Items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
	s.publish()

	return &Result{Status: resp.Status, Message: resp.Message}, nil
}

// RemoveItem deletes a line. On success the line is filtered out of the
// mirror directly; no full refresh is issued.
func (s *Synchronizer) RemoveItem(ctx context.Context, productID string) (*Result, error) {
	resp, err := s.api.RemoveCartItem(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("remove item %s: %w", productID, err)
	}

	s.mu.Lock()
	kept := s.snap.Items[:0]
	for _, item := range s.snap.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.snap.Items = kept
	s.mu.Unlock()
	s.publish()

	return &Result{Status: resp.Status, Message: resp.Message}, nil
}

// Clear bulk-deletes the cart and resets the mirror locally, without a
// refresh round-trip. A follow-up order starts a fresh cart life cycle.
func (s *Synchronizer) Clear(ctx context.Context) (*Result, error) {
	resp, err := s.api.ClearCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	s.mu.Lock()
	s.snap = Snapshot{}
	s.mu.Unlock()
	s.publish()

	return &Result{Status: resp.Status, Message: resp.Message}, nil
}

// Checkout submits shipping details and a payment intent for the current
// cart. It rejects locally when the mirror holds no active cart, and never
// mutates the snapshot; the caller branches on the result (redirect to the
// hosted payment page, or confirm the placed cash order).
func (s *Synchronizer) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	s.mu.RLock()
	cartID := s.snap.CartID
	empty := s.snap.Empty()
	s.mu.RUnlock()

	if empty {
		return nil, storefront.ErrEmptyCart
	}

	switch req.Method {
	case PaymentOnline:
		resp, err := s.api.CreateCheckoutSession(ctx, cartID, req.ReturnURL, req.Shipping)
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		return &CheckoutResult{
			Status:     resp.Status,
			Message:    resp.Message,
			PaymentURL: resp.Session.URL,
		}, nil

	case PaymentCash:
		resp, err := s.api.CreateCashOrder(ctx, cartID, req.Shipping)
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		return &CheckoutResult{
			Status:  resp.Status,
			Message: resp.Message,
			OrderID: resp.Data.ID,
		}, nil

	default:
		return nil, fmt.Errorf("checkout: %w: unknown payment method %q", storefront.ErrInvalidConfig, req.Method)
	}
}

// Snapshot returns a copy of the current mirror.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone()
}

// NumItems returns the server-reported aggregate item count.
func (s *Synchronizer) NumItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.NumItems
}

// CartID returns the active cart identifier, or "" when there is none.
func (s *Synchronizer) CartID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.CartID
}

// Subscribe registers fn to run after every published mirror change and
// returns its unsubscribe function.
func (s *Synchronizer) Subscribe(fn func(Snapshot)) func() {
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

// publish notifies subscribers with a copy of the current snapshot.
// Callbacks run outside the lock.
func (s *Synchronizer) publish() {
	s.mu.RLock()
	snap := s.snap.clone()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// clone copies the snapshot, detaching the line slice.
func (s Snapshot) clone() Snapshot {
	copied := s
	copied.Items = make([]LineItem, len(s.Items))
	copy(copied.Items, s.Items)
	return copied
}

// snapshotFrom maps the backend cart envelope onto the local mirror.
func snapshotFrom(resp *api.CartResponse) Snapshot {
	items := make([]LineItem, 0, len(resp.Data.Products))
	for _, line := range resp.Data.Products {
		items = append(items, LineItem{
			ProductID: line.Product.ID,
			Title:     line.Product.Title,
			ImageURL:  line.Product.ImageCover,
			UnitPrice: line.Price,
			Quantity:  line.Count,
		})
	}
	return Snapshot{
		CartID:   resp.CartID,
		OwnerID:  resp.Data.CartOwner,
		NumItems: resp.NumOfCartItems,
		Items:    items,
	}
}
