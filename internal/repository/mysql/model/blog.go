package model

import (
	"time"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type Blog struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(120);not null"`
	Content     string     `gorm:"type:longtext;not null"`
	Country     string     `gorm:"type:varchar(90);not null;index"`
	Image       string     `gorm:"type:varchar(255)"`
	AuthorEmail string     `gorm:"column:author_email;type:varchar(255);not null;index"`
	VisitedDate *time.Time `gorm:"column:visited_date;type:date"`
	UpdatedAt   time.Time  `gorm:"type:datetime"`
	CreatedAt   time.Time  `gorm:"type:datetime;index"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (m *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Country: m.Country,
		Image:   m.Image,
		Author: domain.User{
			Email: m.AuthorEmail,
		},
		VisitedDate: m.VisitedDate,
		UpdatedAt:   m.UpdatedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func NewBlogFromDomain(b *domain.Blog) *Blog {
	return &Blog{
		ID:          b.ID,
		Title:       b.Title,
		Content:     b.Content,
		Country:     b.Country,
		Image:       b.Image,
		AuthorEmail: b.Author.Email,
		VisitedDate: b.VisitedDate,
		UpdatedAt:   b.UpdatedAt,
		CreatedAt:   b.CreatedAt,
	}
}
