package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

// NewFollowRepository will create an implementation of domain.FollowRepository
func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

// Follow relies on the unique (follower_email, following_email) index:
// inserting an existing edge is swallowed by ON CONFLICT DO NOTHING, so
// there is no check-then-insert race.
func (m *followRepository) Follow(ctx context.Context, followerEmail, followingEmail string) (bool, error) {
	edge := model.Follow{
		FollowerEmail:  followerEmail,
		FollowingEmail: followingEmail,
	}
	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Unfollow on an absent edge is a no-op, not an error.
func (m *followRepository) Unfollow(ctx context.Context, followerEmail, followingEmail string) error {
	return m.DB.WithContext(ctx).
		Where("follower_email = ? AND following_email = ?", followerEmail, followingEmail).
		Delete(&model.Follow{}).
		Error
}

func (m *followRepository) ListFollowing(ctx context.Context, followerEmail string) ([]string, error) {
	var res []string
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_email = ?", followerEmail).
		Pluck("following_email", &res).
		Error
	return res, err
}

func (m *followRepository) ListFollowers(ctx context.Context, followingEmail string) ([]string, error) {
	var res []string
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("following_email = ?", followingEmail).
		Pluck("follower_email", &res).
		Error
	return res, err
}

func (m *followRepository) IsFollowing(ctx context.Context, followerEmail, followingEmail string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_email = ? AND following_email = ?", followerEmail, followingEmail).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
