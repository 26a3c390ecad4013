package model

import (
	"time"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type User struct {
	Email     string    `gorm:"type:varchar(255);primaryKey"`
	Name      string    `gorm:"type:varchar(90);not null"`
	Password  string    `gorm:"type:varchar(90);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		Email:     m.Email,
		Name:      m.Name,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		Email:     u.Email,
		Name:      u.Name,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}
