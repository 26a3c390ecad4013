package model

import (
	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

// Reaction has a composite primary key on (blog_id, user_email); the upsert
// target the at-most-one-reaction invariant rests on.
type Reaction struct {
	BlogID    int64  `gorm:"column:blog_id;primaryKey;autoIncrement:false"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);primaryKey"`
	Reaction  string `gorm:"type:enum('like','dislike');not null"`
}

func (Reaction) TableName() string {
	return "blog_reactions"
}

func (m *Reaction) ToDomain() domain.Reaction {
	return domain.Reaction{
		BlogID:    m.BlogID,
		UserEmail: m.UserEmail,
		Kind:      domain.ReactionKind(m.Reaction),
	}
}

func NewReactionFromDomain(r domain.Reaction) Reaction {
	return Reaction{
		BlogID:    r.BlogID,
		UserEmail: r.UserEmail,
		Reaction:  string(r.Kind),
	}
}
