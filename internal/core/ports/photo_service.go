package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// UploadPhotoInput carries the data needed to attach a photo to a job.
type UploadPhotoInput struct {
	JobID       string
	ImageBase64 string
	Caption     string
}

// PhotoService defines use-case operations for job photos.
type PhotoService interface {
	// Upload attaches a photo to an existing job. Fails with
	// domain.ErrJobNotFound when the job does not exist at upload time.
	Upload(ctx context.Context, actor *domain.User, input UploadPhotoInput) (*domain.Photo, error)
	// ListByJob returns all photos for a job, newest first. No ownership
	// filter is applied.
	ListByJob(ctx context.Context, jobID string) ([]*domain.Photo, error)
}
