package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/repository/mysql/model"
)

type blogRepository struct {
	DB *gorm.DB
}

var _ domain.BlogRepository = (*blogRepository)(nil)

// NewBlogRepository will create an implementation of domain.BlogRepository
func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db}
}

func (m *blogRepository) FetchAll(ctx context.Context, limit, offset int64) (res []domain.Blog, err error) {
	var blogs []model.Blog
	err = m.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&blogs).
		Error
	if err != nil {
		return
	}

	for _, blog := range blogs {
		res = append(res, blog.ToDomain())
	}

	return
}

func (m *blogRepository) GetByID(ctx context.Context, id int64) (res domain.Blog, err error) {
	var blog model.Blog
	err = m.DB.WithContext(ctx).First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res = blog.ToDomain()
	return
}

func (m *blogRepository) Store(ctx context.Context, b *domain.Blog) error {
	blogModel := model.NewBlogFromDomain(b)
	result := m.DB.WithContext(ctx).Create(blogModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	b.ID = blogModel.ID
	b.CreatedAt = blogModel.CreatedAt
	b.UpdatedAt = blogModel.UpdatedAt
	return nil
}

// Update only touches rows matching both id and author email. A zero-row
// result is disambiguated with a lookup so the caller can tell "not found"
// from "not owner".
func (m *blogRepository) Update(ctx context.Context, b *domain.Blog) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Blog{}).
		Where("id = ? AND author_email = ?", b.ID, b.Author.Email).
		Updates(map[string]any{
			"title":   b.Title,
			"content": b.Content,
			"country": b.Country,
			"image":   b.Image,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return m.ownershipError(ctx, b.ID)
	}

	return nil
}

func (m *blogRepository) Delete(ctx context.Context, id int64, authorEmail string) error {
	result := m.DB.WithContext(ctx).
		Where("id = ? AND author_email = ?", id, authorEmail).
		Delete(&model.Blog{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return m.ownershipError(ctx, id)
	}

	return nil
}

// ownershipError maps a zero-row conditional write to the right sentinel:
// ErrNotFound when the blog is gone, ErrForbidden when someone else owns it.
func (m *blogRepository) ownershipError(ctx context.Context, id int64) error {
	var count int64
	if err := m.DB.WithContext(ctx).Model(&model.Blog{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrForbidden
}

func (m *blogRepository) Filter(ctx context.Context, f domain.BlogFilter, limit, offset int64) ([]domain.Blog, error) {
	query := m.DB.WithContext(ctx).Model(&model.Blog{})

	if f.AuthorPattern != "" {
		query = query.Where("author_email LIKE ?", "%"+f.AuthorPattern+"%")
	}
	if f.Country != "" {
		query = query.Where("country = ?", f.Country)
	}
	if f.VisitedFrom != nil {
		query = query.Where("visited_date >= ?", f.VisitedFrom)
	}
	if f.VisitedTo != nil {
		query = query.Where("visited_date <= ?", f.VisitedTo)
	}

	var blogs []model.Blog
	err := query.
		Order("created_at DESC").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&blogs).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Blog, len(blogs))
	for i := range blogs {
		res[i] = blogs[i].ToDomain()
	}
	return res, nil
}

// FollowingFeed joins blogs against the follow edges of the given user.
func (m *blogRepository) FollowingFeed(ctx context.Context, userEmail string, limit, offset int64) ([]domain.Blog, error) {
	var blogs []model.Blog
	err := m.DB.WithContext(ctx).
		Model(&model.Blog{}).
		Joins("JOIN followers ON blogs.author_email = followers.following_email").
		Where("followers.follower_email = ?", userEmail).
		Order("blogs.created_at DESC").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&blogs).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Blog, len(blogs))
	for i := range blogs {
		res[i] = blogs[i].ToDomain()
	}
	return res, nil
}
