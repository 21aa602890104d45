package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// UserService implements admin user management and the dashboard aggregates.
type UserService struct {
	users      ports.UserRepository
	jobs       ports.JobRepository
	timesheets ports.TimesheetRepository
	log        zerolog.Logger
}

func NewUserService(users ports.UserRepository, jobs ports.JobRepository, timesheets ports.TimesheetRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, jobs: jobs, timesheets: timesheets, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// SetActive suspends or reactivates an account. An unknown id is a silent
// no-op; outstanding tokens of a suspended user keep working until expiry.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.users.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Bool("active", active).Msg("user active flag set")
	return nil
}

// Stats computes aggregate counts fresh per request from live data.
func (s *UserService) Stats(ctx context.Context, actor *domain.User) (ports.DashboardStats, error) {
	if actor.IsAdmin() {
		return s.adminStats(ctx)
	}
	return s.ownStats(ctx, actor.ID)
}

func (s *UserService) adminStats(ctx context.Context) (ports.DashboardStats, error) {
	stats := ports.DashboardStats{}

	var err error
	if stats["total_jobs"], err = s.jobs.Count(ctx, "", ""); err != nil {
		return nil, err
	}
	if stats["pending_jobs"], err = s.jobs.Count(ctx, "", string(domain.JobPending)); err != nil {
		return nil, err
	}
	if stats["active_jobs"], err = s.jobs.Count(ctx, "", string(domain.JobActive)); err != nil {
		return nil, err
	}
	if stats["completed_jobs"], err = s.jobs.Count(ctx, "", string(domain.JobCompleted)); err != nil {
		return nil, err
	}
	if stats["total_users"], err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats["pending_timesheets"], err = s.timesheets.Count(ctx, "", true); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *UserService) ownStats(ctx context.Context, userID string) (ports.DashboardStats, error) {
	stats := ports.DashboardStats{}

	var err error
	if stats["my_jobs"], err = s.jobs.Count(ctx, userID, ""); err != nil {
		return nil, err
	}
	if stats["my_pending_jobs"], err = s.jobs.Count(ctx, userID, string(domain.JobPending)); err != nil {
		return nil, err
	}
	if stats["my_timesheets"], err = s.timesheets.Count(ctx, userID, false); err != nil {
		return nil, err
	}
	return stats, nil
}
