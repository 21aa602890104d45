package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// PhotoRepository defines persistence operations for job photos.
// Photos are append-only.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) (*domain.Photo, error)
	// ListByJob returns all photos for a job sorted by upload time
	// descending, capped at the global result limit.
	ListByJob(ctx context.Context, jobID string) ([]*domain.Photo, error)
}
