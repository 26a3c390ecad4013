package request

import (
	"time"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

const visitedDateFormat = "2006-01-02"

// Blog carries the writable blog fields. The image path is filled by the
// handler after staging the upload, never taken from the client directly.
type Blog struct {
	Title       string `form:"title" json:"title" binding:"required,max=120"`
	Content     string `form:"content" json:"content" binding:"required"`
	Country     string `form:"country" json:"country" binding:"required,max=90"`
	VisitedDate string `form:"visited_date" json:"visited_date" binding:"omitempty,datetime=2006-01-02,notfuture"`
}

// ToDomain: Request -> Domain
func (r *Blog) ToDomain() domain.Blog {
	b := domain.Blog{
		Title:   r.Title,
		Content: r.Content,
		Country: r.Country,
	}
	if r.VisitedDate != "" {
		if t, err := time.Parse(visitedDateFormat, r.VisitedDate); err == nil {
			b.VisitedDate = &t
		}
	}
	return b
}
