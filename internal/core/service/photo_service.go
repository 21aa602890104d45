package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/api/metrics"
	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// PhotoService implements photo uploads and per-job listings.
type PhotoService struct {
	repo ports.PhotoRepository
	jobs ports.JobRepository
	log  zerolog.Logger
}

func NewPhotoService(repo ports.PhotoRepository, jobs ports.JobRepository, log zerolog.Logger) *PhotoService {
	return &PhotoService{repo: repo, jobs: jobs, log: log}
}

// Upload attaches a photo to a job. The job must exist at upload time; the
// reference is not re-validated afterwards, so a later job deletion leaves
// the photo orphaned.
func (s *PhotoService) Upload(ctx context.Context, actor *domain.User, input ports.UploadPhotoInput) (*domain.Photo, error) {
	if _, err := s.jobs.FindByID(ctx, input.JobID); err != nil {
		return nil, err
	}

	photo := &domain.Photo{
		JobID:       input.JobID,
		UserID:      actor.ID,
		UserName:    actor.Name,
		ImageBase64: input.ImageBase64,
		Caption:     input.Caption,
		UploadedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, photo)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to upload photo")
		return nil, err
	}

	metrics.PhotosUploadedTotal.Inc()
	s.log.Info().Str("photo_id", created.ID).Str("job_id", input.JobID).Msg("photo uploaded")
	return created, nil
}

func (s *PhotoService) ListByJob(ctx context.Context, jobID string) ([]*domain.Photo, error) {
	return s.repo.ListByJob(ctx, jobID)
}
