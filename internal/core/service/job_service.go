package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/api/metrics"
	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// JobService implements job CRUD with role and ownership rules.
type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

func (s *JobService) Create(ctx context.Context, actor *domain.User, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		ClientName:    input.ClientName,
		Address:       input.Address,
		Contact:       input.Contact,
		JobType:       input.JobType,
		Notes:         input.Notes,
		Status:        domain.JobPending,
		CreatedBy:     actor.ID,
		CreatedByName: actor.Name,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.WithLabelValues(input.JobType).Inc()
	s.log.Info().Str("job_id", created.ID).Str("created_by", actor.ID).Msg("job created")
	return created, nil
}

// List returns all jobs for elevated actors; workers only see their own.
func (s *JobService) List(ctx context.Context, actor *domain.User) ([]*domain.Job, error) {
	createdBy := ""
	if !actor.IsElevated() {
		createdBy = actor.ID
	}
	return s.repo.List(ctx, createdBy)
}

// Get fetches a job by id with no ownership filter: any authenticated user
// may fetch any job, even when List would hide it from them.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) Update(ctx context.Context, actor *domain.User, id string, patch domain.JobUpdate) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsElevated() && job.CreatedBy != actor.ID {
		return nil, domain.ErrForbidden
	}

	// The completion timestamp is stamped exactly once, on the first
	// transition to completed, and never restamped or cleared.
	var completedAt *time.Time
	if patch.Status != nil && *patch.Status == string(domain.JobCompleted) && job.CompletedAt == nil {
		now := time.Now().UTC()
		completedAt = &now
		metrics.JobsCompletedTotal.Inc()
	}

	updated, err := s.repo.Update(ctx, id, patch, completedAt)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("job_id", id).Str("updated_by", actor.ID).Msg("job updated")
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("job_id", id).Str("deleted_by", actor.ID).Msg("job deleted")
	return nil
}
