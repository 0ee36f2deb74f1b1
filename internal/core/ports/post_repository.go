package ports

import (
	"context"

	"github.com/modublog/blog-api/internal/core/domain"
)

// FindPostsFilter carries all query parameters for listing posts.
type FindPostsFilter struct {
	Search string // optional: case-insensitive substring match on title or content
	Page   int    // 1-based
	Limit  int    // rows per page (capped by the service)
}

// PostRepository defines persistence operations for posts.
// Posts are returned without the author joined; the service resolves
// author names through AuthRepository.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// Find returns a page of posts matching filter, newest first, and the
	// total match count.
	Find(ctx context.Context, filter FindPostsFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
