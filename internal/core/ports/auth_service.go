package ports

import (
	"context"

	"github.com/modublog/blog-api/internal/core/domain"
)

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// TokenService issues and verifies signed bearer tokens bound to a user id.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the user id the token was issued for, or
	// domain.ErrTokenExpired / domain.ErrTokenInvalid.
	Verify(token string) (string, error)
}
