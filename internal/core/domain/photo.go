package domain

import "time"

// Photo is an append-only image attached to a job. The referenced job must
// exist at upload time; it is not re-validated afterwards. The payload is an
// embedded base64 blob, not a file-store reference.
type Photo struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	ImageBase64 string    `json:"image_base64"`
	Caption     string    `json:"caption"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
