package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// CreateJobInput carries the data needed to create a job.
type CreateJobInput struct {
	ClientName string
	Address    string
	Contact    string
	JobType    string
	Notes      string
}

// JobService defines use-case operations for jobs.
type JobService interface {
	// Create records a new pending job attributed to the actor.
	Create(ctx context.Context, actor *domain.User, input CreateJobInput) (*domain.Job, error)
	// List returns all jobs for elevated actors and only the actor's own
	// jobs otherwise, newest first.
	List(ctx context.Context, actor *domain.User) ([]*domain.Job, error)
	// Get fetches a single job by id. Deliberately unfiltered by ownership:
	// any authenticated user may fetch any job.
	Get(ctx context.Context, id string) (*domain.Job, error)
	// Update applies a partial update. Permitted to the creator and to
	// elevated roles; others fail with domain.ErrForbidden. The first
	// transition to completed stamps the completion time exactly once.
	Update(ctx context.Context, actor *domain.User, id string, patch domain.JobUpdate) (*domain.Job, error)
	// Delete removes a job. Admin only.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
