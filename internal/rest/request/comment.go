package request

import "github.com/Deshan005/AdvancedServerSideCW2/domain"

type Comment struct {
	Text string `json:"text" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		Text: r.Text,
	}
}
