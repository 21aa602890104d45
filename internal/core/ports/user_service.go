package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// DashboardStats is the role-dependent aggregate payload. Keys differ by
// role: admins see fleet-wide counts, everyone else sees their own.
type DashboardStats map[string]int64

// UserService defines admin user management and the dashboard aggregates.
// Admin-only enforcement for List and SetActive happens at the route.
type UserService interface {
	// List returns all user accounts.
	List(ctx context.Context) ([]*domain.User, error)
	// SetActive suspends or reactivates an account. Unknown ids succeed
	// silently.
	SetActive(ctx context.Context, id string, active bool) error
	// Stats computes fresh aggregate counts for the actor's role. Nothing
	// is cached.
	Stats(ctx context.Context, actor *domain.User) (DashboardStats, error)
}
