package model

import (
	"time"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type Comment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	BlogID      int64     `gorm:"column:blog_id;not null;index"`
	UserEmail   string    `gorm:"column:user_email;type:varchar(255);not null"`
	CommentText string    `gorm:"column:comment_text;type:text;not null"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "blog_comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:          c.ID,
		BlogID:      c.BlogID,
		UserEmail:   c.UserEmail,
		CommentText: c.Text,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		BlogID:    m.BlogID,
		UserEmail: m.UserEmail,
		Text:      m.CommentText,
		CreatedAt: m.CreatedAt,
	}
}
