package blog

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("post not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

// Post is a back-office blog entry shown on the hotel site.
type Post struct {
	ID         string
	AuthorID   string
	AuthorName string // joined for display
	Title      string
	Content    string
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing posts.
type Filter struct {
	Keyword       string
	PublishedOnly bool
	Page          int
	PageSize      int
}
