package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetWishlist retrieves the authenticated user's wishlist.
func (c *Client) GetWishlist(ctx context.Context) (*WishlistResponse, error) {
	var out WishlistResponse
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, nil, &out, true); err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	return &out, nil
}

// AddWishlistItem adds a product to the wishlist.
func (c *Client) AddWishlistItem(ctx context.Context, productID string) (*MutationResponse, error) {
	var out MutationResponse
	if err := c.do(ctx, http.MethodPost, "/wishlist", nil, addItemBody{ProductID: productID}, &out, true); err != nil {
		return nil, fmt.Errorf("add wishlist item: %w", err)
	}
	return &out, nil
}

// RemoveWishlistItem removes a product from the wishlist.
func (c *Client) RemoveWishlistItem(ctx context.Context, productID string) (*MutationResponse, error) {
	var out MutationResponse
	if err := c.do(ctx, http.MethodDelete, "/wishlist/"+url.PathEscape(productID), nil, nil, &out, true); err != nil {
		return nil, fmt.Errorf("remove wishlist item: %w", err)
	}
	return &out, nil
}
