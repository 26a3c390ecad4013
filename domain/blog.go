package domain

import (
	"context"
	"time"
)

// Blog is representing a travel blog post about a visited country
type Blog struct {
	ID          int64      // Unique identifier for the blog
	Title       string     // Blog title
	Content     string     // Blog body content
	Country     string     // Visited country the post is about
	Image       string     // Relative path to the cover image, resolved by the static-file layer
	Author      User       // Author information, keyed by email
	VisitedDate *time.Time // Date of the visit, optional
	UpdatedAt   time.Time  // Last update timestamp
	CreatedAt   time.Time  // Creation timestamp
}

// BlogFilter is a closed set of filtering criteria for blog listings.
// It replaces ad hoc predicates so the query surface stays enumerable.
type BlogFilter struct {
	// AuthorPattern matches author emails by case-insensitive substring.
	AuthorPattern string
	// Country matches exactly when non-empty.
	Country string
	// VisitedFrom / VisitedTo bound the visited date when non-nil.
	VisitedFrom *time.Time
	VisitedTo   *time.Time
}

// IsZero reports whether no criteria are set.
func (f BlogFilter) IsZero() bool {
	return f.AuthorPattern == "" && f.Country == "" && f.VisitedFrom == nil && f.VisitedTo == nil
}

// BlogRepository defines the contract for blog data persistence.
// Implemented by the mysql layer and by the caching coordination layer on top of it.
type BlogRepository interface {
	// FetchAll retrieves blogs ordered by creation time descending.
	FetchAll(ctx context.Context, limit, offset int64) ([]Blog, error)

	// GetByID retrieves a single blog by its ID.
	// Returns ErrNotFound if the blog doesn't exist.
	GetByID(ctx context.Context, id int64) (Blog, error)

	// Store creates a new blog.
	// Backfills the generated ID and timestamps in the provided Blog.
	Store(ctx context.Context, b *Blog) error

	// Update modifies title, content, country and image of the blog matching
	// both id and author email.
	// Returns ErrNotFound if no blog has this id, ErrForbidden if the blog
	// exists but belongs to another author.
	Update(ctx context.Context, b *Blog) error

	// Delete removes the blog matching both id and author email.
	// Same ErrNotFound / ErrForbidden contract as Update.
	Delete(ctx context.Context, id int64, authorEmail string) error

	// Filter retrieves blogs matching the given criteria, newest first.
	Filter(ctx context.Context, f BlogFilter, limit, offset int64) ([]Blog, error)

	// FollowingFeed retrieves blogs authored by anyone the given user follows,
	// newest first.
	FollowingFeed(ctx context.Context, userEmail string, limit, offset int64) ([]Blog, error)
}

// BlogCache caches the hot read paths: the first page of the public listing
// and per-blog reaction counts.
type BlogCache interface {
	GetHome(ctx context.Context) ([]Blog, error)
	SetHome(ctx context.Context, blogs []Blog) error
	DeleteHome(ctx context.Context) error

	GetReactionCounts(ctx context.Context, blogID int64) (ReactionCounts, error)
	SetReactionCounts(ctx context.Context, blogID int64, counts ReactionCounts) error
	DeleteReactionCounts(ctx context.Context, blogID int64) error
}

type BlogUsecase interface {
	FetchAll(ctx context.Context, page, size int64) ([]Blog, error)
	GetByID(ctx context.Context, id int64) (Blog, error)
	Store(ctx context.Context, b *Blog) error
	Update(ctx context.Context, b *Blog) error
	Delete(ctx context.Context, id int64, authorEmail string) error
	Filter(ctx context.Context, f BlogFilter, page, size int64) ([]Blog, error)
	FollowingFeed(ctx context.Context, userEmail string, page, size int64) ([]Blog, error)
}
