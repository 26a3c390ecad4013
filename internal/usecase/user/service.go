package user

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, jwtSecret []byte, jwtTTL time.Duration) *Service {
	return &Service{
		userRepo:  u,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Register hashes the password and creates the account. The email uniqueness
// is backed by the primary key, so a racing duplicate still comes back as
// ErrConflict from the insert itself.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.Insert(ctx, &domain.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	})
}

// Login verifies credentials and issues an HS256 token carrying the email.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrBadParamInput
	}

	claims := jwt.MapClaims{
		"sub":  u.Email,
		"name": u.Name,
		"exp":  time.Now().Add(s.jwtTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}
