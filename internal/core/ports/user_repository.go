package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users, capped at the global result limit.
	List(ctx context.Context) ([]*domain.User, error)
	// SetActive flips the active flag. Unknown ids are a silent no-op.
	SetActive(ctx context.Context, id string, active bool) error
	Count(ctx context.Context) (int64, error)
}
