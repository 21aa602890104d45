package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// TimesheetRepository defines persistence operations for timesheets.
type TimesheetRepository interface {
	Create(ctx context.Context, ts *domain.Timesheet) (*domain.Timesheet, error)
	// List returns timesheets sorted by work date descending, capped at the
	// global result limit. A non-empty userID scopes the result to that owner.
	List(ctx context.Context, userID string) ([]*domain.Timesheet, error)
	// Approve sets the approval flag. Approving an already-approved sheet
	// succeeds; unknown ids return domain.ErrTimesheetNotFound.
	Approve(ctx context.Context, id string) error
	// Count returns the number of timesheets in scope. Empty userID means
	// "any owner"; unapprovedOnly restricts to approved=false.
	Count(ctx context.Context, userID string, unapprovedOnly bool) (int64, error)
}
