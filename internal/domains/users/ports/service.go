package ports

import (
	"context"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/domain"
)

// Service exposes the auth use cases to adapters.
type Service interface {
	Register(ctx context.Context, username, displayName, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a fresh session token.
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string)
	// IdentityForToken resolves a session token to the normalized identity.
	IdentityForToken(ctx context.Context, token string) (domain.Identity, error)
}
