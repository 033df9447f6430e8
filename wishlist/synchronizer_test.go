package wishlist

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creastat/storefront/api"
)

const testProduct = "prod-1"

// fakeBackend implements API over an in-memory favorites set.
type fakeBackend struct {
	mu        sync.Mutex
	favorites map[string]api.Product
	getCalls  int
	getErr    error
	addErr    error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{favorites: make(map[string]api.Product)}
}

func (f *fakeBackend) GetWishlist(ctx context.Context) (*api.WishlistResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	resp := &api.WishlistResponse{Status: "success", Count: len(f.favorites)}
	for _, p := range f.favorites {
		resp.Data = append(resp.Data, p)
	}
	return resp, nil
}

func (f *fakeBackend) AddWishlistItem(ctx context.Context, productID string) (*api.MutationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.favorites[productID] = api.Product{
		ID:             productID,
		Title:          "Product " + productID,
		Price:          decimal.NewFromInt(50),
		RatingsAverage: 4.5,
	}
	return &api.MutationResponse{Status: "success"}, nil
}

func (f *fakeBackend) RemoveWishlistItem(ctx context.Context, productID string) (*api.MutationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.favorites, productID)
	return &api.MutationResponse{Status: "success"}, nil
}

func TestAdd_ResyncsBeforeReturning(t *testing.T) {
	backend := newFakeBackend()
	syncer := New(backend)
	ctx := context.Background()

	require.False(t, syncer.Contains(testProduct))
	require.NoError(t, syncer.Add(ctx, testProduct))

	// Membership reflects the authoritative set as soon as Add returns.
	assert.True(t, syncer.Contains(testProduct))
	assert.Equal(t, 1, backend.getCalls, "add must resynchronize exactly once")

	entries := syncer.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, testProduct, entries[0].ProductID)
	assert.True(t, entries[0].Price.Equal(decimal.NewFromInt(50)))
}

func TestRemove_Resyncs(t *testing.T) {
	backend := newFakeBackend()
	syncer := New(backend)
	ctx := context.Background()

	require.NoError(t, syncer.Add(ctx, testProduct))
	require.NoError(t, syncer.Add(ctx, "prod-2"))

	require.NoError(t, syncer.Remove(ctx, testProduct))
	assert.False(t, syncer.Contains(testProduct))
	assert.True(t, syncer.Contains("prod-2"))
}

func TestRefresh_FailurePropagatesAndKeepsMirror(t *testing.T) {
	backend := newFakeBackend()
	syncer := New(backend)
	ctx := context.Background()

	require.NoError(t, syncer.Add(ctx, testProduct))

	backend.mu.Lock()
	backend.getErr = errors.New("connection reset")
	backend.mu.Unlock()

	_, err := syncer.Refresh(ctx)
	require.Error(t, err)
	assert.True(t, syncer.Contains(testProduct), "failed refresh keeps the previous set")
}

func TestAdd_WriteFailurePropagates(t *testing.T) {
	backend := newFakeBackend()
	backend.addErr = errors.New("boom")
	syncer := New(backend)

	err := syncer.Add(context.Background(), testProduct)
	require.Error(t, err)
	assert.False(t, syncer.Contains(testProduct))
}

func TestSubscribe_PublishesOrderedEntries(t *testing.T) {
	backend := newFakeBackend()
	syncer := New(backend)
	ctx := context.Background()

	var last []Entry
	unsubscribe := syncer.Subscribe(func(entries []Entry) {
		last = entries
	})
	defer unsubscribe()

	require.NoError(t, syncer.Add(ctx, "prod-2"))
	require.NoError(t, syncer.Add(ctx, "prod-1"))

	require.Len(t, last, 2)
	assert.Equal(t, "prod-1", last[0].ProductID)
	assert.Equal(t, "prod-2", last[1].ProductID)
}
