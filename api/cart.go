package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// addItemBody is the create-line request body.
type addItemBody struct {
	ProductID string `json:"productId"`
}

// updateItemBody is the set-quantity request body.
type updateItemBody struct {
	Count int `json:"count"`
}

// GetCart retrieves the authenticated user's cart.
func (c *Client) GetCart(ctx context.Context) (*CartResponse, error) {
	var out CartResponse
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &out, true); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return &out, nil
}

// AddCartItem adds one unit of a product to the cart. The response is not
// authoritative for counts; callers re-fetch via GetCart.
func (c *Client) AddCartItem(ctx context.Context, productID string) (*MutationResponse, error) {
	var out MutationResponse
	if err := c.do(ctx, http.MethodPost, "/cart", nil, addItemBody{ProductID: productID}, &out, true); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return &out, nil
}

// UpdateCartItem sets the quantity of the cart line holding productID.
func (c *Client) UpdateCartItem(ctx context.Context, productID string, count int) (*MutationResponse, error) {
	var out MutationResponse
	if err := c.do(ctx, http.MethodPut, "/cart/"+url.PathEscape(productID), nil, updateItemBody{Count: count}, &out, true); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return &out, nil
}

// RemoveCartItem removes the cart line holding productID.
func (c *Client) RemoveCartItem(ctx context.Context, productID string) (*MutationResponse, error) {
	var out MutationResponse
	if err := c.do(ctx, http.MethodDelete, "/cart/"+url.PathEscape(productID), nil, nil, &out, true); err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return &out, nil
}

// ClearCart removes every line from the cart.
func (c *Client) ClearCart(ctx context.Context) (*MutationResponse, error) {
	var out MutationResponse
	if err := c.do(ctx, http.MethodDelete, "/cart", nil, nil, &out, true); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return &out, nil
}
