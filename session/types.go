package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated state of the storefront client.
// The bearer token is the only durable local state the storefront keeps;
// everything else is re-fetched from the backend.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a session for a freshly issued bearer token.
func New(token, email string) *Session {
	return &Session{
		ID:    uuid.NewString(),
		Token: token,
		Email: email,
	}
}
