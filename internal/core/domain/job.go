package domain

import "time"

// JobStatus represents the lifecycle state of a job. The set is extensible:
// unknown statuses are stored as-is, only "completed" carries extra semantics.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobActive    JobStatus = "active"
	JobCompleted JobStatus = "completed"
)

// JobTypes are the fence configurations a job can be quoted for.
var JobTypes = []string{"Standard", "Channel", "Corner", "Raked"}

// Job is a unit of client work. CreatedByName is a snapshot of the creator's
// display name taken at creation time and never refreshed.
type Job struct {
	ID            string     `json:"id"`
	ClientName    string     `json:"client_name"`
	Address       string     `json:"address"`
	Contact       string     `json:"contact"`
	JobType       string     `json:"job_type"`
	Notes         string     `json:"notes"`
	Status        JobStatus  `json:"status"`
	CreatedBy     string     `json:"created_by"`
	CreatedByName string     `json:"created_by_name"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	SignatureURL  *string    `json:"signature_url"`
}

// JobUpdate carries a partial update. Nil fields are left untouched on the
// stored document; they are never nulled out.
type JobUpdate struct {
	ClientName   *string
	Address      *string
	Contact      *string
	JobType      *string
	Notes        *string
	Status       *string
	SignatureURL *string
}

// Empty reports whether the update carries no fields at all.
func (u JobUpdate) Empty() bool {
	return u.ClientName == nil && u.Address == nil && u.Contact == nil &&
		u.JobType == nil && u.Notes == nil && u.Status == nil && u.SignatureURL == nil
}
