package domain

import (
	"context"
	"time"
)

// Comment domain model. Comments are append-only; there is no edit or delete.
type Comment struct {
	ID        int64     `json:"id"`
	BlogID    int64     `json:"blog_id"`
	UserEmail string    `json:"user_email"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// User carries the comment author's profile when filled by the usecase
	User *User `json:"user,omitempty"`
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error

	// FetchByBlog returns every comment of a blog, newest first.
	FetchByBlog(ctx context.Context, blogID int64) ([]Comment, error)
}

type CommentUsecase interface {
	// Create appends a comment to an existing blog.
	// Returns ErrNotFound if the blog does not exist.
	Create(ctx context.Context, c *Comment) error
	FetchByBlog(ctx context.Context, blogID int64) ([]Comment, error)
}
