package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/modublog/blog-api/internal/core/domain"
	"github.com/modublog/blog-api/internal/core/ports"
)

const (
	defaultPageLimit = 6
	maxPageLimit     = 100
)

// PostService implements post CRUD with ownership enforcement.
type PostService struct {
	posts  ports.PostRepository
	users  ports.AuthRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.AuthRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// ListPosts returns one page of posts, newest first, with authors resolved.
// Out-of-range pages yield an empty page, not an error.
func (s *PostService) ListPosts(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	posts, total, err := s.posts.Find(ctx, ports.FindPostsFilter{
		Search: strings.TrimSpace(input.Search),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	if err := s.resolveAuthors(ctx, posts); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListPostsResult{
		Posts:      posts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetPost returns a single post with its author resolved.
func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveAuthors(ctx, []*domain.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost stores a new post owned by the authenticated user.
func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", input.AuthorID).Msg("post created")

	if err := s.resolveAuthors(ctx, []*domain.Post{created}); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdatePost rewrites title/content after verifying the caller owns the post.
func (s *PostService) UpdatePost(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != input.UserID {
		return nil, domain.ErrForbidden
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Content = input.Content
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	if err := s.resolveAuthors(ctx, []*domain.Post{updated}); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePost removes a post after verifying ownership.
func (s *PostService) DeletePost(ctx context.Context, id, userID string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Str("author_id", userID).Msg("post deleted")
	return nil
}

// resolveAuthors fills in Author on each post. A dangling author reference
// leaves Author nil rather than failing the request.
func (s *PostService) resolveAuthors(ctx context.Context, posts []*domain.Post) error {
	authors := make(map[string]*domain.PostAuthor)
	for _, p := range posts {
		if _, seen := authors[p.AuthorID]; seen {
			p.Author = authors[p.AuthorID]
			continue
		}
		user, err := s.users.FindByID(ctx, p.AuthorID)
		if err != nil {
			if err == domain.ErrUserNotFound {
				authors[p.AuthorID] = nil
				continue
			}
			return err
		}
		authors[p.AuthorID] = &domain.PostAuthor{ID: user.ID, Name: user.Name}
		p.Author = authors[p.AuthorID]
	}
	return nil
}
