package follow

import (
	"context"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type Service struct {
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
}

var _ domain.FollowUsecase = (*Service)(nil)

// NewService will create a new follow service object
func NewService(f domain.FollowRepository, u domain.UserRepository) *Service {
	return &Service{
		followRepo: f,
		userRepo:   u,
	}
}

// Follow creates the edge towards an existing user. Following yourself is
// rejected; following someone twice reports false without erroring, the
// unique index underneath makes the insert idempotent.
func (s *Service) Follow(ctx context.Context, followerEmail, followingEmail string) (bool, error) {
	if followerEmail == followingEmail {
		return false, domain.ErrBadParamInput
	}

	exists, err := s.userRepo.EmailExists(ctx, followingEmail)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrNotFound
	}

	return s.followRepo.Follow(ctx, followerEmail, followingEmail)
}

func (s *Service) Unfollow(ctx context.Context, followerEmail, followingEmail string) error {
	return s.followRepo.Unfollow(ctx, followerEmail, followingEmail)
}

func (s *Service) ListFollowing(ctx context.Context, followerEmail string) ([]string, error) {
	return s.followRepo.ListFollowing(ctx, followerEmail)
}

func (s *Service) ListFollowers(ctx context.Context, followingEmail string) ([]string, error) {
	return s.followRepo.ListFollowers(ctx, followingEmail)
}

func (s *Service) IsFollowing(ctx context.Context, followerEmail, followingEmail string) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerEmail, followingEmail)
}
