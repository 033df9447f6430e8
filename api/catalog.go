package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// listEnvelope is the backend's paginated listing body.
type listEnvelope[T any] struct {
	Results int `json:"results"`
	Data    []T `json:"data"`
}

// itemEnvelope wraps a single-document read.
type itemEnvelope[T any] struct {
	Data T `json:"data"`
}

// Products retrieves the product listing.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out listEnvelope[Product]
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &out, false); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return out.Data, nil
}

// ProductByID retrieves a single product.
func (c *Client) ProductByID(ctx context.Context, productID string) (*Product, error) {
	var out itemEnvelope[Product]
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, nil, &out, false); err != nil {
		return nil, fmt.Errorf("get product %s: %w", productID, err)
	}
	return &out.Data, nil
}

// Categories retrieves all categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out listEnvelope[Category]
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out, false); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return out.Data, nil
}

// Subcategories retrieves the subcategories belonging to a category.
func (c *Client) Subcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	query := url.Values{}
	if categoryID != "" {
		query.Set("category", categoryID)
	}
	var out listEnvelope[Subcategory]
	if err := c.do(ctx, http.MethodGet, "/subcategories", query, nil, &out, false); err != nil {
		return nil, fmt.Errorf("get subcategories: %w", err)
	}
	return out.Data, nil
}

// Brands retrieves all brands.
func (c *Client) Brands(ctx context.Context) ([]Brand, error) {
	var out listEnvelope[Brand]
	if err := c.do(ctx, http.MethodGet, "/brands", nil, nil, &out, false); err != nil {
		return nil, fmt.Errorf("get brands: %w", err)
	}
	return out.Data, nil
}
