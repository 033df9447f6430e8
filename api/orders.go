package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// orderBody wraps the shipping details for the order endpoints.
type orderBody struct {
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}

// CreateCashOrder places a cash-on-delivery order for the given cart.
// A successful order ends the cart's life cycle server-side.
func (c *Client) CreateCashOrder(ctx context.Context, cartID string, addr ShippingAddress) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(cartID), nil, orderBody{ShippingAddress: addr}, &out, true); err != nil {
		return nil, fmt.Errorf("create cash order: %w", err)
	}
	return &out, nil
}

// CreateCheckoutSession starts a hosted online payment session for the given
// cart. returnURL is where the payment host redirects after completion.
func (c *Client) CreateCheckoutSession(ctx context.Context, cartID, returnURL string, addr ShippingAddress) (*CheckoutSessionResponse, error) {
	query := url.Values{}
	if returnURL != "" {
		query.Set("url", returnURL)
	}
	var out CheckoutSessionResponse
	if err := c.do(ctx, http.MethodPost, "/orders/checkout-session/"+url.PathEscape(cartID), query, orderBody{ShippingAddress: addr}, &out, true); err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &out, nil
}

// UserOrders retrieves all orders placed by a user. The backend returns a
// bare array for this endpoint rather than the usual envelope.
func (c *Client) UserOrders(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/orders/user/"+url.PathEscape(userID), nil, nil, &out, true); err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}
	return out, nil
}
