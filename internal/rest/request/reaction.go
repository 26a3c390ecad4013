package request

import "github.com/Deshan005/AdvancedServerSideCW2/domain"

type Reaction struct {
	Reaction string `json:"reaction" binding:"required,oneof=like dislike"`
}

// ToDomain: Request -> Domain
func (r *Reaction) ToDomain() domain.Reaction {
	return domain.Reaction{
		Kind: domain.ReactionKind(r.Reaction),
	}
}
