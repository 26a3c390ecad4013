package domain

import "context"

// ReactionKind is a user's like/dislike signal on a blog post.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
	// ReactionNone means the user has not reacted to the blog.
	ReactionNone ReactionKind = ""
)

// Valid reports whether the kind is one of the two storable values.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Reaction is representing one user's reaction to one blog.
// At most one row exists per (blog, user) pair; re-reacting overwrites the kind.
type Reaction struct {
	BlogID    int64
	UserEmail string
	Kind      ReactionKind
}

// ReactionCounts are the aggregated like/dislike totals of a blog.
// Both counts are zero, not absent, when nobody has reacted.
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// ReactionRepository defines the contract for reaction persistence.
type ReactionRepository interface {
	// Upsert inserts the reaction, or overwrites the kind if the (blog, user)
	// pair already has one. This is where the at-most-one invariant lives.
	Upsert(ctx context.Context, r Reaction) error

	// Counts aggregates like/dislike totals for the blog.
	Counts(ctx context.Context, blogID int64) (ReactionCounts, error)

	// UserReaction returns the user's current kind, or ReactionNone if absent.
	UserReaction(ctx context.Context, blogID int64, userEmail string) (ReactionKind, error)
}

type ReactionUsecase interface {
	// React stores the reaction. Returns ErrBadParamInput for kinds outside
	// {like, dislike} and ErrNotFound if the blog does not exist.
	React(ctx context.Context, r Reaction) error
	Counts(ctx context.Context, blogID int64) (ReactionCounts, error)
	UserReaction(ctx context.Context, blogID int64, userEmail string) (ReactionKind, error)
}
