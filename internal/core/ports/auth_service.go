package ports

import (
	"context"

	"github.com/precify/pricing-api/internal/core/domain"
)

// AuthService authenticates credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenVerifier validates a raw bearer token and returns the identity it
// encodes. Implementations must not trust any claim before the signature
// checks out.
type TokenVerifier interface {
	Verify(raw string) (domain.Identity, error)
}
