package api

import (
	"context"
	"fmt"
	"net/http"
)

// SignIn authenticates with email and password. Bad credentials come back as
// an *Error with the backend's message, not as an AuthResponse.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", nil, creds, &out, false); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return &out, nil
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, reg, &out, false); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return &out, nil
}
