package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, publish blogs and follow other users.
// The email is the identifier every other table references.
type User struct {
	Email     string    // Unique identifier
	Name      string    // Display name
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByEmail retrieves a user by email.
	// Returns ErrNotFound if the user doesn't exist.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByEmails retrieves users for the given emails in one round trip.
	GetByEmails(ctx context.Context, emails []string) ([]User, error)

	// EmailExists reports whether a user with this email is registered.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Insert creates a new user account. The password must already be hashed.
	Insert(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for user operations.
// Handles authentication and registration.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the email is already registered.
	Register(ctx context.Context, name, email, password string) error

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, email, password string) (string, error)

	// GetByEmail returns the public profile of a user.
	GetByEmail(ctx context.Context, email string) (User, error)
}
