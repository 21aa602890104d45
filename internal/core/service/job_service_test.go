package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[string]*domain.Job
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	copy := cloneJob(job)
	r.nextID++
	copy.ID = "job-" + strconv.Itoa(r.nextID)
	r.jobs[copy.ID] = cloneJob(copy)
	return copy, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return cloneJob(j), nil
}

func (r *stubJobRepo) List(_ context.Context, createdBy string) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if createdBy != "" && j.CreatedBy != createdBy {
			continue
		}
		out = append(out, cloneJob(j))
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, id string, patch domain.JobUpdate, completedAt *time.Time) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if patch.ClientName != nil {
		j.ClientName = *patch.ClientName
	}
	if patch.Address != nil {
		j.Address = *patch.Address
	}
	if patch.Contact != nil {
		j.Contact = *patch.Contact
	}
	if patch.JobType != nil {
		j.JobType = *patch.JobType
	}
	if patch.Notes != nil {
		j.Notes = *patch.Notes
	}
	if patch.Status != nil {
		j.Status = domain.JobStatus(*patch.Status)
	}
	if patch.SignatureURL != nil {
		j.SignatureURL = patch.SignatureURL
	}
	if completedAt != nil {
		j.CompletedAt = completedAt
	}
	return cloneJob(j), nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) Count(_ context.Context, createdBy string, status string) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if createdBy != "" && j.CreatedBy != createdBy {
			continue
		}
		if status != "" && string(j.Status) != status {
			continue
		}
		n++
	}
	return n, nil
}

func worker(id string) *domain.User {
	return &domain.User{ID: id, Name: "Worker " + id, Role: domain.RoleWorker, Active: true}
}

func supervisor(id string) *domain.User {
	return &domain.User{ID: id, Name: "Supervisor " + id, Role: domain.RoleSupervisor, Active: true}
}

func admin(id string) *domain.User {
	return &domain.User{ID: id, Name: "Admin " + id, Role: domain.RoleAdmin, Active: true}
}

func strPtr(s string) *string { return &s }

func createTestJob(t *testing.T, svc *JobService, actor *domain.User) *domain.Job {
	t.Helper()
	job, err := svc.Create(context.Background(), actor, ports.CreateJobInput{
		ClientName: "Smith Residence",
		Address:    "12 Boundary Rd",
		Contact:    "0400 000 000",
		JobType:    "Standard",
		Notes:      "rear fence",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return job
}

func TestJobService_Create(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())
	actor := worker("w1")

	job := createTestJob(t, svc, actor)
	if job.Status != domain.JobPending {
		t.Fatalf("new job status = %s, want pending", job.Status)
	}
	if job.CreatedBy != "w1" {
		t.Fatalf("created_by = %s, want w1", job.CreatedBy)
	}
	if job.CreatedByName != actor.Name {
		t.Fatalf("created_by_name = %q, want creator's name snapshot", job.CreatedByName)
	}
	if job.CompletedAt != nil {
		t.Fatalf("new job should not carry a completion time")
	}
}

func TestJobService_List_WorkerSeesOwnOnly(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	createTestJob(t, svc, worker("w1"))
	createTestJob(t, svc, worker("w1"))
	createTestJob(t, svc, worker("w2"))

	jobs, err := svc.List(context.Background(), worker("w1"))
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("worker list length = %d, want 2", len(jobs))
	}
	for _, j := range jobs {
		if j.CreatedBy != "w1" {
			t.Fatalf("worker list leaked job created by %s", j.CreatedBy)
		}
	}
}

func TestJobService_List_ElevatedSeesAll(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	createTestJob(t, svc, worker("w1"))
	createTestJob(t, svc, worker("w2"))

	for _, actor := range []*domain.User{supervisor("s1"), admin("a1")} {
		jobs, err := svc.List(context.Background(), actor)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(jobs) != 2 {
			t.Fatalf("%s list length = %d, want 2", actor.Role, len(jobs))
		}
	}
}

func TestJobService_Get_IgnoresOwnership(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	job := createTestJob(t, svc, worker("w1"))

	got, err := svc.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.ID != job.ID {
		t.Fatalf("unexpected job id: %s", got.ID)
	}
}

func TestJobService_Get_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Update_OwnerAndElevatedAllowed(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	job := createTestJob(t, svc, worker("w1"))

	for _, actor := range []*domain.User{worker("w1"), supervisor("s1"), admin("a1")} {
		updated, err := svc.Update(context.Background(), actor, job.ID, domain.JobUpdate{Notes: strPtr("updated by " + actor.ID)})
		if err != nil {
			t.Fatalf("%s update returned error: %v", actor.Role, err)
		}
		if updated.Notes != "updated by "+actor.ID {
			t.Fatalf("notes not applied for %s", actor.Role)
		}
	}
}

func TestJobService_Update_ForeignWorkerForbidden(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	job := createTestJob(t, svc, worker("w1"))

	_, err := svc.Update(context.Background(), worker("w2"), job.ID, domain.JobUpdate{Notes: strPtr("hijack")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if got, _ := repo.FindByID(context.Background(), job.ID); got.Notes != "rear fence" {
		t.Fatalf("forbidden update leaked through: %q", got.Notes)
	}
}

func TestJobService_Update_PartialLeavesOtherFields(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	job := createTestJob(t, svc, worker("w1"))

	updated, err := svc.Update(context.Background(), worker("w1"), job.ID, domain.JobUpdate{Address: strPtr("14 Boundary Rd")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Address != "14 Boundary Rd" {
		t.Fatalf("address not applied: %q", updated.Address)
	}
	if updated.ClientName != job.ClientName || updated.Notes != job.Notes || updated.Status != job.Status {
		t.Fatalf("partial update touched unrelated fields: %+v", updated)
	}
}

func TestJobService_Update_CompletionStampedOnce(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())
	actor := worker("w1")

	job := createTestJob(t, svc, actor)

	first, err := svc.Update(context.Background(), actor, job.ID, domain.JobUpdate{Status: strPtr(string(domain.JobCompleted))})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if first.CompletedAt == nil {
		t.Fatalf("expected completion time on first transition to completed")
	}
	stamp := *first.CompletedAt

	// Re-sending completed must not move the stamp.
	second, err := svc.Update(context.Background(), actor, job.ID, domain.JobUpdate{Status: strPtr(string(domain.JobCompleted))})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if second.CompletedAt == nil || !second.CompletedAt.Equal(stamp) {
		t.Fatalf("completion time was restamped: %v != %v", second.CompletedAt, stamp)
	}

	// Leaving completed does not clear it either.
	reopened, err := svc.Update(context.Background(), actor, job.ID, domain.JobUpdate{Status: strPtr(string(domain.JobActive))})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if reopened.CompletedAt == nil || !reopened.CompletedAt.Equal(stamp) {
		t.Fatalf("completion time cleared on reopen: %v", reopened.CompletedAt)
	}
}

func TestJobService_Update_NonCompletionStatusNoStamp(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())
	actor := worker("w1")

	job := createTestJob(t, svc, actor)
	updated, err := svc.Update(context.Background(), actor, job.ID, domain.JobUpdate{Status: strPtr(string(domain.JobActive))})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.CompletedAt != nil {
		t.Fatalf("active transition must not stamp completion time")
	}
}

func TestJobService_Delete_AdminOnly(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	job := createTestJob(t, svc, worker("w1"))

	for _, actor := range []*domain.User{worker("w1"), supervisor("s1")} {
		if err := svc.Delete(context.Background(), actor, job.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s delete: expected ErrForbidden, got %v", actor.Role, err)
		}
	}

	if err := svc.Delete(context.Background(), admin("a1"), job.ID); err != nil {
		t.Fatalf("admin delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), job.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("job survived delete")
	}
}

func TestJobService_Delete_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())
	if err := svc.Delete(context.Background(), admin("a1"), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
