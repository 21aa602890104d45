package ports

import (
	"context"
	"time"

	"github.com/fencewise/field-service/internal/core/domain"
)

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	// Create inserts a new job and returns it with its assigned ID.
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// FindByID retrieves a job. Unknown or unparseable ids return
	// domain.ErrJobNotFound.
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns jobs sorted by created_at descending, capped at the
	// global result limit. A non-empty createdBy scopes the result to that
	// creator.
	List(ctx context.Context, createdBy string) ([]*domain.Job, error)
	// Update applies the non-nil fields of patch to the stored document and
	// returns the updated job. When completedAt is non-nil it is stamped
	// alongside the patch. Absent fields are left untouched.
	Update(ctx context.Context, id string, patch domain.JobUpdate, completedAt *time.Time) (*domain.Job, error)
	// Delete removes a job. Unknown ids return domain.ErrJobNotFound.
	Delete(ctx context.Context, id string) error
	// Count returns the number of jobs matching the given scope. Empty
	// createdBy or status means "any".
	Count(ctx context.Context, createdBy string, status string) (int64, error)
}
