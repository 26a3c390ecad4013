package response

import (
	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

type Blog struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Country     string `json:"country"`
	Image       string `json:"image"`
	AuthorEmail string `json:"author_email"`
	AuthorName  string `json:"author_name"`
	VisitedDate string `json:"visited_date,omitempty"`
	UpdatedAt   string `json:"updated_at"`
	CreatedAt   string `json:"created_at"`
}

// NewBlogFromDomain: Domain -> Response
func NewBlogFromDomain(b *domain.Blog) Blog {
	res := Blog{
		ID:          b.ID,
		Title:       b.Title,
		Content:     b.Content,
		Country:     b.Country,
		Image:       b.Image,
		AuthorEmail: b.Author.Email,
		AuthorName:  b.Author.Name,
		UpdatedAt:   b.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:   b.CreatedAt.Format(DateTimeFormat),
	}
	if b.VisitedDate != nil {
		res.VisitedDate = b.VisitedDate.Format(DateFormat)
	}
	return res
}
