package wishlist

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/creastat/storefront/api"
)

// API is the slice of the backend the synchronizer depends on.
// *api.Client satisfies it.
type API interface {
	GetWishlist(ctx context.Context) (*api.WishlistResponse, error)
	AddWishlistItem(ctx context.Context, productID string) (*api.MutationResponse, error)
	RemoveWishlistItem(ctx context.Context, productID string) (*api.MutationResponse, error)
}

// Entry is one favorited product. There is no quantity concept.
type Entry struct {
	ProductID      string
	Title          string
	ImageURL       string
	Price          decimal.Decimal
	RatingsAverage float64
}
