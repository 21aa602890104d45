package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

type stubPhotoRepo struct {
	photos []*domain.Photo
	nextID int
}

func newStubPhotoRepo() *stubPhotoRepo {
	return &stubPhotoRepo{}
}

func clonePhoto(p *domain.Photo) *domain.Photo {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPhotoRepo) Create(_ context.Context, photo *domain.Photo) (*domain.Photo, error) {
	copy := clonePhoto(photo)
	r.nextID++
	copy.ID = "photo-" + strconv.Itoa(r.nextID)
	r.photos = append(r.photos, clonePhoto(copy))
	return copy, nil
}

func (r *stubPhotoRepo) ListByJob(_ context.Context, jobID string) ([]*domain.Photo, error) {
	var out []*domain.Photo
	for _, p := range r.photos {
		if p.JobID == jobID {
			out = append(out, clonePhoto(p))
		}
	}
	return out, nil
}

func TestPhotoService_Upload(t *testing.T) {
	jobs := newStubJobRepo()
	photos := newStubPhotoRepo()
	jobSvc := NewJobService(jobs, zerolog.Nop())
	svc := NewPhotoService(photos, jobs, zerolog.Nop())
	actor := worker("w1")

	job := createTestJob(t, jobSvc, actor)

	photo, err := svc.Upload(context.Background(), actor, ports.UploadPhotoInput{
		JobID:       job.ID,
		ImageBase64: "aGVsbG8=",
		Caption:     "post holes done",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if photo.UserID != "w1" || photo.UserName != actor.Name {
		t.Fatalf("uploader not attributed: %+v", photo)
	}
	if photo.JobID != job.ID {
		t.Fatalf("job_id = %s, want %s", photo.JobID, job.ID)
	}
	if photo.UploadedAt.IsZero() {
		t.Fatalf("expected an upload timestamp")
	}
}

func TestPhotoService_Upload_UnknownJob(t *testing.T) {
	svc := NewPhotoService(newStubPhotoRepo(), newStubJobRepo(), zerolog.Nop())

	_, err := svc.Upload(context.Background(), worker("w1"), ports.UploadPhotoInput{
		JobID:       "missing",
		ImageBase64: "aGVsbG8=",
	})
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestPhotoService_UploadSurvivesJobDeletion(t *testing.T) {
	jobs := newStubJobRepo()
	photos := newStubPhotoRepo()
	jobSvc := NewJobService(jobs, zerolog.Nop())
	svc := NewPhotoService(photos, jobs, zerolog.Nop())

	job := createTestJob(t, jobSvc, worker("w1"))
	if _, err := svc.Upload(context.Background(), worker("w1"), ports.UploadPhotoInput{
		JobID:       job.ID,
		ImageBase64: "aGVsbG8=",
	}); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if err := jobSvc.Delete(context.Background(), admin("a1"), job.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// The job reference is only checked at upload time; orphaned photos
	// remain listable.
	got, err := svc.ListByJob(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("ListByJob returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("orphaned photo list = %d, want 1", len(got))
	}
}

func TestPhotoService_ListByJob_Scoped(t *testing.T) {
	jobs := newStubJobRepo()
	photos := newStubPhotoRepo()
	jobSvc := NewJobService(jobs, zerolog.Nop())
	svc := NewPhotoService(photos, jobs, zerolog.Nop())
	actor := worker("w1")

	jobA := createTestJob(t, jobSvc, actor)
	jobB := createTestJob(t, jobSvc, actor)

	for _, jobID := range []string{jobA.ID, jobA.ID, jobB.ID} {
		if _, err := svc.Upload(context.Background(), actor, ports.UploadPhotoInput{JobID: jobID, ImageBase64: "aGVsbG8="}); err != nil {
			t.Fatalf("Upload returned error: %v", err)
		}
	}

	got, err := svc.ListByJob(context.Background(), jobA.ID)
	if err != nil {
		t.Fatalf("ListByJob returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("job photo list = %d, want 2", len(got))
	}
}
