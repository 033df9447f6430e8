package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/creastat/storefront"
)

// DefaultBaseURL is the production address of the e-commerce backend.
const DefaultBaseURL = "https://ecommerce.routemisr.com/api/v1"

// tokenHeader is the bespoke header the backend reads the bearer credential
// from. It is not a standard Authorization scheme and must stay as-is.
const tokenHeader = "token"

// TokenSource supplies the current bearer credential for authenticated calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to a TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken is a fixed bearer credential.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token(context.Context) (string, error) { return string(t), nil }

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend address. Defaults to DefaultBaseURL.
	BaseURL string

	// Tokens supplies the bearer credential for authenticated endpoints.
	// Optional for catalog-only use.
	Tokens TokenSource

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client

	// Timeout applies when HTTPClient is nil. Defaults to 15 seconds.
	Timeout time.Duration

	// Logger is optional; a no-op logger is used when nil.
	Logger *zap.Logger
}

// Client is a stateless wrapper around the backend's REST endpoints.
// It holds no response data; every read re-fetches.
type Client struct {
	baseURL string
	tokens  TokenSource
	httpc   *http.Client
	log     *zap.Logger
}

// New creates a backend client.
func New(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpc = &http.Client{Timeout: timeout}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		baseURL: baseURL,
		tokens:  cfg.Tokens,
		httpc:   httpc,
		log:     log,
	}, nil
}

// Error is a failure reported by the backend: either a non-2xx status or a
// transport-level problem mapped onto the backend's error envelope.
type Error struct {
	StatusCode int
	Status     string // backend statusMsg, e.g. "fail"
	Message    string
}

// Error implements error.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error (%d)", e.StatusCode)
}

// errorEnvelope is the backend's failure body.
type errorEnvelope struct {
	StatusMsg string `json:"statusMsg"`
	Message   string `json:"message"`
}

// do issues one request and decodes the response into out (when non-nil).
// Authenticated requests carry the bearer credential in the token header.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if c.tokens == nil {
			return storefront.ErrNotAuthenticated
		}
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read bearer token: %w", err)
		}
		if token == "" {
			return storefront.ErrNotAuthenticated
		}
		req.Header.Set(tokenHeader, token)
	}

	c.log.Debug("backend request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		_ = json.Unmarshal(raw, &env)
		c.log.Debug("backend failure",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message))
		return &Error{
			StatusCode: resp.StatusCode,
			Status:     env.StatusMsg,
			Message:    env.Message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Compile-time check that Client implements Service.
var _ Service = (*Client)(nil)
