package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("you are not the author of this post")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")

// PostAuthor is the author reference embedded in a post for display.
// The field names mirror the document ids the browser client reads.
type PostAuthor struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Post is the core aggregate. Author is nil when the referenced user no
// longer exists; the author id itself is never exposed raw.
type Post struct {
	ID        string      `json:"_id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	AuthorID  string      `json:"-"`
	Author    *PostAuthor `json:"author"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
