package blog

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/repository"
)

type Service struct {
	blogRepo domain.BlogRepository
	userRepo domain.UserRepository
}

var _ domain.BlogUsecase = (*Service)(nil)

// NewService will create a new blog service object
func NewService(b domain.BlogRepository, u domain.UserRepository) *Service {
	return &Service{
		blogRepo: b,
		userRepo: u,
	}
}

/*
* fillAuthorDetails resolves author rows for a page of blogs with a bounded
* errgroup fan-out, one lookup per distinct email.
* See the pipeline example in godoc: https://godoc.org/golang.org/x/sync/errgroup#ex-Group--Pipeline
 */
func (s *Service) fillAuthorDetails(ctx context.Context, data []domain.Blog) ([]domain.Blog, error) {
	g, ctx := errgroup.WithContext(ctx)

	mapAuthors := map[string]domain.User{}
	for _, blog := range data { //nolint
		mapAuthors[blog.Author.Email] = domain.User{}
	}

	chanAuthor := make(chan domain.User)
	for email := range mapAuthors {
		email := email
		g.Go(func() error {
			res, err := s.userRepo.GetByEmail(ctx, email)
			if err != nil {
				if err == domain.ErrNotFound {
					// author rows are a soft invariant; a dangling email
					// degrades to the bare address instead of failing the page
					logrus.Warnf("no user row for author %s", email)
					return nil
				}
				return err
			}
			chanAuthor <- res
			return nil
		})
	}

	go func() {
		defer close(chanAuthor)
		if err := g.Wait(); err != nil {
			logrus.Error(err)
		}
	}()

	for author := range chanAuthor {
		if author != (domain.User{}) {
			mapAuthors[author.Email] = author
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for index, item := range data { //nolint
		if a, ok := mapAuthors[item.Author.Email]; ok && a != (domain.User{}) {
			a.Password = ""
			data[index].Author = a
		}
	}
	return data, nil
}

func (s *Service) FetchAll(ctx context.Context, page, size int64) ([]domain.Blog, error) {
	repository.PageVerify(&page, &size)
	res, err := s.blogRepo.FetchAll(ctx, size, repository.PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	return s.fillAuthorDetails(ctx, res)
}

func (s *Service) GetByID(ctx context.Context, id int64) (res domain.Blog, err error) {
	res, err = s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Blog{}, err
	}

	author, err := s.userRepo.GetByEmail(ctx, res.Author.Email)
	if err == nil {
		author.Password = ""
		res.Author = author
	} else if err != domain.ErrNotFound {
		return domain.Blog{}, err
	}

	return res, nil
}

func (s *Service) Store(ctx context.Context, b *domain.Blog) error {
	author, err := s.userRepo.GetByEmail(ctx, b.Author.Email)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Store(ctx, b); err != nil {
		return err
	}

	author.Password = ""
	b.Author = author
	return nil
}

func (s *Service) Update(ctx context.Context, b *domain.Blog) error {
	return s.blogRepo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64, authorEmail string) error {
	return s.blogRepo.Delete(ctx, id, authorEmail)
}

func (s *Service) Filter(ctx context.Context, f domain.BlogFilter, page, size int64) ([]domain.Blog, error) {
	repository.PageVerify(&page, &size)

	if f.IsZero() {
		return s.FetchAll(ctx, page, size)
	}
	if f.VisitedFrom != nil && f.VisitedTo != nil && f.VisitedTo.Before(*f.VisitedFrom) {
		return nil, domain.ErrBadParamInput
	}

	res, err := s.blogRepo.Filter(ctx, f, size, repository.PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	return s.fillAuthorDetails(ctx, res)
}

func (s *Service) FollowingFeed(ctx context.Context, userEmail string, page, size int64) ([]domain.Blog, error) {
	repository.PageVerify(&page, &size)
	res, err := s.blogRepo.FollowingFeed(ctx, userEmail, size, repository.PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	return s.fillAuthorDetails(ctx, res)
}
