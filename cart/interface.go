package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/creastat/storefront/api"
)

// API is the slice of the backend the synchronizer depends on.
// *api.Client satisfies it.
type API interface {
	GetCart(ctx context.Context) (*api.CartResponse, error)
	AddCartItem(ctx context.Context, productID string) (*api.MutationResponse, error)
	UpdateCartItem(ctx context.Context, productID string, count int) (*api.MutationResponse, error)
	RemoveCartItem(ctx context.Context, productID string) (*api.MutationResponse, error)
	ClearCart(ctx context.Context) (*api.MutationResponse, error)
	CreateCashOrder(ctx context.Context, cartID string, addr api.ShippingAddress) (*api.OrderResponse, error)
	CreateCheckoutSession(ctx context.Context, cartID, returnURL string, addr api.ShippingAddress) (*api.CheckoutSessionResponse, error)
}

// LineItem is one product line in the local cart mirror.
type LineItem struct {
	ProductID string
	Title     string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal is the line's price times quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is the local mirror of the server cart at a point in time.
//
// NumItems is the server-reported aggregate count. Between an optimistic
// patch and the next refresh it may diverge from the sum of line quantities;
// Total is always derived from the lines, never from NumItems.
type Snapshot struct {
	CartID   string
	OwnerID  string
	NumItems int
	Items    []LineItem
}

// Total sums the line subtotals.
func (s Snapshot) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Empty reports whether the mirror holds no active cart.
func (s Snapshot) Empty() bool {
	return s.NumItems == 0 || s.CartID == ""
}

// Result is a server-reported outcome of a cart write. Business failures
// such as out-of-stock arrive here, not on the error path.
type Result struct {
	Status  string
	Message string
}

// Success reports whether the backend accepted the write.
func (r Result) Success() bool {
	return r.Status == "success"
}

// PaymentMethod selects how a checkout is settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// CheckoutRequest carries the checkout form values.
type CheckoutRequest struct {
	Method    PaymentMethod
	ReturnURL string // where the payment host redirects; online only
	Shipping  api.ShippingAddress
}

// CheckoutResult is the raw outcome of a checkout attempt for the view
// layer to branch on.
type CheckoutResult struct {
	Status     string
	Message    string
	PaymentURL string // hosted payment page; set for online payment
	OrderID    string // placed order; set for cash payment
}
