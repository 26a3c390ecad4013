package domain

import (
	"context"
	"time"
)

// FollowEdge is a directed "follower follows following" relationship.
// The feed of the follower includes every post of the followed author.
type FollowEdge struct {
	FollowerEmail  string
	FollowingEmail string
	CreatedAt      time.Time
}

// FollowRepository defines the contract for the follow graph.
// The (follower, following) pair is unique at the store level, so Follow is
// idempotent and there is no check-then-insert race.
type FollowRepository interface {
	// Follow inserts a directed edge. Returns true if a new edge was created,
	// false if it already existed.
	Follow(ctx context.Context, followerEmail, followingEmail string) (bool, error)

	// Unfollow deletes the matching edge. Deleting an absent edge is a no-op.
	Unfollow(ctx context.Context, followerEmail, followingEmail string) error

	// ListFollowing returns the emails the given user follows.
	ListFollowing(ctx context.Context, followerEmail string) ([]string, error)

	// ListFollowers returns the emails following the given user.
	ListFollowers(ctx context.Context, followingEmail string) ([]string, error)

	// IsFollowing reports whether the edge exists.
	IsFollowing(ctx context.Context, followerEmail, followingEmail string) (bool, error)
}

type FollowUsecase interface {
	// Follow creates the edge. Returns ErrBadParamInput on self-follow and
	// ErrNotFound if the followed user does not exist; a duplicate follow is
	// a no-change success.
	Follow(ctx context.Context, followerEmail, followingEmail string) (bool, error)
	Unfollow(ctx context.Context, followerEmail, followingEmail string) error
	ListFollowing(ctx context.Context, followerEmail string) ([]string, error)
	ListFollowers(ctx context.Context, followingEmail string) ([]string, error)
	IsFollowing(ctx context.Context, followerEmail, followingEmail string) (bool, error)
}
