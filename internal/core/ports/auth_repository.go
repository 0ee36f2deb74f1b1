package ports

import (
	"context"

	"github.com/modublog/blog-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
// Implementations store emails lowercased so lookups are case-insensitive.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
