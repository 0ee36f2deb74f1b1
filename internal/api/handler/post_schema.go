package handler

import "github.com/modublog/blog-api/internal/core/domain"

// errorResponse documents the standard error envelope returned on all
// 4xx/5xx responses (rendered by the central error handler).
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Request / Response types ---

// postRequest is shared by create and update; the field rules are the same.
type postRequest struct {
	Title   string `json:"title"   validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

type postResponse struct {
	Success bool         `json:"success"`
	Post    *domain.Post `json:"post"`
}

// paginationResponse carries the paging metadata the client's pager reads.
type paginationResponse struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	TotalCount int64 `json:"totalCount"`
}

type listPostsResponse struct {
	Success    bool               `json:"success"`
	Posts      []*domain.Post     `json:"posts"`
	Pagination paginationResponse `json:"pagination"`
}

type deletePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
