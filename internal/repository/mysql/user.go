package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByEmails(ctx context.Context, emails []string) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("email IN ?", emails).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}

func (m *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}

	u.CreatedAt = userModel.CreatedAt

	return nil
}
