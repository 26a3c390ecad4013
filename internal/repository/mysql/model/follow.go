package model

import (
	"time"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

// Follow rows are unique per (follower, following) pair; the composite index
// is what makes FollowRepository.Follow idempotent.
type Follow struct {
	FollowerEmail  string    `gorm:"column:follower_email;type:varchar(255);not null;uniqueIndex:idx_follower_following"`
	FollowingEmail string    `gorm:"column:following_email;type:varchar(255);not null;uniqueIndex:idx_follower_following;index"`
	CreatedAt      time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "followers"
}

func (m *Follow) ToDomain() domain.FollowEdge {
	return domain.FollowEdge{
		FollowerEmail:  m.FollowerEmail,
		FollowingEmail: m.FollowingEmail,
		CreatedAt:      m.CreatedAt,
	}
}

func NewFollowFromDomain(e domain.FollowEdge) Follow {
	return Follow{
		FollowerEmail:  e.FollowerEmail,
		FollowingEmail: e.FollowingEmail,
		CreatedAt:      e.CreatedAt,
	}
}
