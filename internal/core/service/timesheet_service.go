package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/api/metrics"
	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// TimesheetService implements timesheet creation, listing, and approval.
type TimesheetService struct {
	repo ports.TimesheetRepository
	log  zerolog.Logger
}

func NewTimesheetService(repo ports.TimesheetRepository, log zerolog.Logger) *TimesheetService {
	return &TimesheetService{repo: repo, log: log}
}

// Create records a timesheet attributed to the actor. Total hours are
// computed here, synchronously, and never recomputed afterwards.
func (s *TimesheetService) Create(ctx context.Context, actor *domain.User, input ports.CreateTimesheetInput) (*domain.Timesheet, error) {
	ts := &domain.Timesheet{
		UserID:     actor.ID,
		UserName:   actor.Name,
		Date:       input.Date,
		StartTime:  input.StartTime,
		FinishTime: input.FinishTime,
		BreakTime:  input.BreakTime,
		Notes:      input.Notes,
		JobID:      input.JobID,
		TotalHours: CalculateHours(input.StartTime, input.FinishTime, input.BreakTime),
		Approved:   false,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, ts)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create timesheet")
		return nil, err
	}

	metrics.TimesheetsCreatedTotal.Inc()
	s.log.Info().Str("timesheet_id", created.ID).Str("user_id", actor.ID).Float64("total_hours", created.TotalHours).Msg("timesheet created")
	return created, nil
}

// List returns all timesheets for elevated actors; workers only see their own.
func (s *TimesheetService) List(ctx context.Context, actor *domain.User) ([]*domain.Timesheet, error) {
	userID := ""
	if !actor.IsElevated() {
		userID = actor.ID
	}
	return s.repo.List(ctx, userID)
}

// Approve marks a timesheet approved. Approving twice is not an error.
func (s *TimesheetService) Approve(ctx context.Context, id string) error {
	if err := s.repo.Approve(ctx, id); err != nil {
		return err
	}
	metrics.TimesheetsApprovedTotal.Inc()
	s.log.Info().Str("timesheet_id", id).Msg("timesheet approved")
	return nil
}
