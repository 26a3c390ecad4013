package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

// blogRepository coordinates the mysql repository and the redis cache.
// Only the first page of the public listing is cached; everything else is a
// straight delegation, with writes invalidating what they touched.
type blogRepository struct {
	db    domain.BlogRepository
	cache domain.BlogCache

	homeGroup singleflight.Group
}

var _ domain.BlogRepository = (*blogRepository)(nil)

// NewBlogRepository creates the coordination layer over db and cache.
func NewBlogRepository(db domain.BlogRepository, cache domain.BlogCache) *blogRepository {
	return &blogRepository{
		db:    db,
		cache: cache,
	}
}

func (r *blogRepository) FetchAll(ctx context.Context, limit, offset int64) ([]domain.Blog, error) {
	if offset != 0 {
		return r.db.FetchAll(ctx, limit, offset)
	}

	blogs, err := r.cache.GetHome(ctx)
	if err == nil && int64(len(blogs)) >= limit {
		return blogs[:limit], nil
	}
	if err != nil && err != domain.ErrCacheMiss {
		logrus.Warnf("home cache read failed: %v", err)
	}

	// singleflight keeps concurrent first-page misses from stampeding mysql
	res, err, _ := r.homeGroup.Do(KeyHomeRebuild, func() (any, error) {
		blogs, err := r.db.FetchAll(ctx, MaxPageSize, 0)
		if err != nil {
			return nil, err
		}

		go func(data []domain.Blog) {
			if err := r.cache.SetHome(context.Background(), data); err != nil {
				logrus.Warnf("failed to set home cache: %v", err)
			}
		}(blogs)

		return blogs, nil
	})
	if err != nil {
		return nil, err
	}

	blogs = res.([]domain.Blog)
	if int64(len(blogs)) > limit {
		blogs = blogs[:limit]
	}
	return blogs, nil
}

const KeyHomeRebuild = "home"

func (r *blogRepository) GetByID(ctx context.Context, id int64) (domain.Blog, error) {
	return r.db.GetByID(ctx, id)
}

func (r *blogRepository) Store(ctx context.Context, b *domain.Blog) error {
	if err := r.db.Store(ctx, b); err != nil {
		return err
	}
	r.invalidateHome()
	return nil
}

func (r *blogRepository) Update(ctx context.Context, b *domain.Blog) error {
	if err := r.db.Update(ctx, b); err != nil {
		return err
	}
	r.invalidateHome()
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64, authorEmail string) error {
	if err := r.db.Delete(ctx, id, authorEmail); err != nil {
		return err
	}
	r.invalidateHome()

	go func(id int64) {
		if err := r.cache.DeleteReactionCounts(context.Background(), id); err != nil {
			logrus.Warnf("failed to drop reaction counts for blog %d: %v", id, err)
		}
	}(id)

	return nil
}

func (r *blogRepository) Filter(ctx context.Context, f domain.BlogFilter, limit, offset int64) ([]domain.Blog, error) {
	return r.db.Filter(ctx, f, limit, offset)
}

func (r *blogRepository) FollowingFeed(ctx context.Context, userEmail string, limit, offset int64) ([]domain.Blog, error) {
	return r.db.FollowingFeed(ctx, userEmail, limit, offset)
}

func (r *blogRepository) invalidateHome() {
	go func() {
		if err := r.cache.DeleteHome(context.Background()); err != nil {
			logrus.Warnf("failed to drop home cache: %v", err)
		}
	}()
}
