package ports

import (
	"context"

	"github.com/modublog/blog-api/internal/core/domain"
)

// ListPostsInput carries all parameters for the list endpoint.
// Page and Limit are clamped by the service; zero values mean defaults.
type ListPostsInput struct {
	Search string
	Page   int
	Limit  int
}

// ListPostsResult is returned by ListPosts. TotalPages is ceil(Total/Limit).
type ListPostsResult struct {
	Posts      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreatePostInput carries the data needed to create a post. AuthorID is the
// authenticated user, never client-supplied.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
}

// UpdatePostInput carries the data for an ownership-checked update.
type UpdatePostInput struct {
	ID      string
	Title   string
	Content string
	UserID  string
}

// PostService defines use-case operations for posts.
type PostService interface {
	ListPosts(ctx context.Context, input ListPostsInput) (*ListPostsResult, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, input UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, id, userID string) error
}
