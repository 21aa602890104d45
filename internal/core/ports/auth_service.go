package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // defaults to worker when empty
}

// AuthService implements registration, login, and token verification.
type AuthService interface {
	// Register creates an account and returns a signed token plus the new
	// user. Duplicate emails fail with domain.ErrEmailTaken.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	// Suspended accounts fail with domain.ErrUserSuspended even when the
	// credentials are correct.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken validates a bearer token and returns the subject user id.
	// Fails with domain.ErrInvalidToken on bad signature, malformed input,
	// or expiry.
	VerifyToken(token string) (string, error)
}
