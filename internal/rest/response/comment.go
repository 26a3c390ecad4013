package response

import "github.com/Deshan005/AdvancedServerSideCW2/domain"

type Comment struct {
	ID        int64  `json:"id"`
	BlogID    int64  `json:"blog_id"`
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	res := Comment{
		ID:        c.ID,
		BlogID:    c.BlogID,
		UserEmail: c.UserEmail,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
	}
	if c.User != nil {
		res.UserName = c.User.Name
	}
	return res
}
