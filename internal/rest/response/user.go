package response

import "github.com/Deshan005/AdvancedServerSideCW2/domain"

type User struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// NewUserFromDomain: Domain -> Response. The password hash never leaves
// the service layer.
func NewUserFromDomain(u *domain.User) User {
	return User{
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(DateTimeFormat),
	}
}
