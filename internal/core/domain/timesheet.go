package domain

import "time"

// Timesheet records a day's work for a single user. UserName is a snapshot of
// the owner's display name at creation time. TotalHours is computed once when
// the sheet is created and never recomputed; the sheet itself is not editable
// after creation, only its approval flag moves.
type Timesheet struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	FinishTime string    `json:"finish_time"`
	BreakTime  string    `json:"break_time"`
	Notes      string    `json:"notes"`
	TotalHours float64   `json:"total_hours"`
	JobID      *string   `json:"job_id"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}
