package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// CreateTimesheetInput carries the data needed to record a timesheet.
// Clock fields are HH:MM strings; Date is a YYYY-MM-DD calendar date.
type CreateTimesheetInput struct {
	Date       string
	StartTime  string
	FinishTime string
	BreakTime  string
	Notes      string
	JobID      *string
}

// TimesheetService defines use-case operations for timesheets.
type TimesheetService interface {
	// Create records a timesheet attributed to the actor. Total hours are
	// computed at creation time and never recomputed.
	Create(ctx context.Context, actor *domain.User, input CreateTimesheetInput) (*domain.Timesheet, error)
	// List returns all timesheets for elevated actors and only the actor's
	// own otherwise, most recent work date first.
	List(ctx context.Context, actor *domain.User) ([]*domain.Timesheet, error)
	// Approve marks a timesheet approved. Idempotent; unknown ids fail with
	// domain.ErrTimesheetNotFound. Role enforcement happens at the route.
	Approve(ctx context.Context, id string) error
}
