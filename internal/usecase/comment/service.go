package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	blogRepo    domain.BlogRepository
	userRepo    domain.UserRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, blogRepo domain.BlogRepository, userRepo domain.UserRepository) *service {
	return &service{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		userRepo:    userRepo,
	}
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if _, err := s.blogRepo.GetByID(ctx, c.BlogID); err != nil {
		return err
	}
	return s.commentRepo.Store(ctx, c)
}

// FetchByBlog returns the blog's comments newest first, with author profiles
// resolved in one batched lookup.
func (s *service) FetchByBlog(ctx context.Context, blogID int64) ([]domain.Comment, error) {
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	res, err := s.commentRepo.FetchByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return []domain.Comment{}, nil
	}

	emails := make([]string, 0, len(res))
	seen := make(map[string]bool)
	for _, c := range res {
		if !seen[c.UserEmail] {
			emails = append(emails, c.UserEmail)
			seen[c.UserEmail] = true
		}
	}

	users, err := s.userRepo.GetByEmails(ctx, emails)
	if err != nil {
		// comments are still useful without profile rows
		logrus.Warnf("failed to resolve comment authors: %v", err)
		return res, nil
	}

	userMap := make(map[string]domain.User, len(users))
	for _, u := range users {
		u.Password = ""
		userMap[u.Email] = u
	}

	for i := range res {
		if u, ok := userMap[res[i].UserEmail]; ok {
			user := u
			res[i].User = &user
		}
	}

	return res, nil
}
