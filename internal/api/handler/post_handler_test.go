package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/modublog/blog-api/internal/core/domain"
	"github.com/modublog/blog-api/internal/core/ports"
)

type stubPostService struct {
	listFn   func(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Post, error)
	createFn func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error)
	updateFn func(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (s *stubPostService) ListPosts(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubPostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, input)
}

func (s *stubPostService) UpdatePost(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	return s.updateFn(ctx, input)
}

func (s *stubPostService) DeletePost(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

func TestPostHandler_List_QueryParams(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		listFn: func(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
			if input.Search != "go" || input.Page != 2 || input.Limit != 6 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListPostsResult{
				Posts:      []*domain.Post{{ID: "p1", Title: "A"}},
				Total:      13,
				Page:       2,
				Limit:      6,
				TotalPages: 3,
			}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/posts?search=go&page=2&limit=6", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true")
	}
	pagination, ok := resp["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("expected pagination in response")
	}
	if pagination["page"] != float64(2) || pagination["totalPages"] != float64(3) || pagination["totalCount"] != float64(13) {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestPostHandler_List_NonNumericParamsFallThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		listFn: func(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
			// strconv failures leave zero values; the service clamps them
			if input.Page != 0 || input.Limit != 0 {
				t.Fatalf("expected zero page/limit, got %+v", input)
			}
			return &ports.ListPostsResult{Posts: []*domain.Post{}, Page: 1, Limit: 6}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/posts?page=abc&limit=xyz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		getFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound to propagate, got %v", err)
	}
}

func TestPostHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			if input.AuthorID != "u1" {
				t.Fatalf("author must come from context, got %s", input.AuthorID)
			}
			return &domain.Post{ID: "p1", Title: input.Title, Content: input.Content}, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"T","content":"C"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	post, ok := resp["post"].(map[string]any)
	if !ok || post["_id"] != "p1" || post["title"] != "T" {
		t.Fatalf("unexpected post payload: %+v", post)
	}
}

func TestPostHandler_Create_TitleTooLong(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	long := strings.Repeat("x", 101)
	body := strings.NewReader(`{"title":"` + long + `","content":"C"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPostHandler_Create_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewPostHandler(&stubPostService{})

	body := strings.NewReader(`{"title":"T","content":"C"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPostHandler_Update_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		updateFn: func(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"T","content":"C"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/posts/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("user_id", "u2")

	if err := handler.Update(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestPostHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		deleteFn: func(ctx context.Context, id, userID string) error {
			if id != "p1" || userID != "u1" {
				t.Fatalf("unexpected args: %s %s", id, userID)
			}
			return nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("user_id", "u1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true, got %+v", resp)
	}
}
