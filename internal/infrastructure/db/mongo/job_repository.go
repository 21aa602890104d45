package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fencewise/field-service/internal/core/domain"
)

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type jobDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ClientName    string             `bson:"client_name"`
	Address       string             `bson:"address"`
	Contact       string             `bson:"contact"`
	JobType       string             `bson:"job_type"`
	Notes         string             `bson:"notes"`
	Status        string             `bson:"status"`
	CreatedBy     string             `bson:"created_by"`
	CreatedByName string             `bson:"created_by_name"`
	CreatedAt     time.Time          `bson:"created_at"`
	CompletedAt   *time.Time         `bson:"completed_at"`
	SignatureURL  *string            `bson:"signature_url"`
}

func (d jobDoc) toDomain() *domain.Job {
	job := &domain.Job{
		ID:            d.ID.Hex(),
		ClientName:    d.ClientName,
		Address:       d.Address,
		Contact:       d.Contact,
		JobType:       d.JobType,
		Notes:         d.Notes,
		Status:        domain.JobStatus(d.Status),
		CreatedBy:     d.CreatedBy,
		CreatedByName: d.CreatedByName,
		CreatedAt:     d.CreatedAt.UTC(),
		SignatureURL:  d.SignatureURL,
	}
	if d.CompletedAt != nil {
		t := d.CompletedAt.UTC()
		job.CompletedAt = &t
	}
	return job
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDoc{
		ClientName:    job.ClientName,
		Address:       job.Address,
		Contact:       job.Contact,
		JobType:       job.JobType,
		Notes:         job.Notes,
		Status:        string(job.Status),
		CreatedBy:     job.CreatedBy,
		CreatedByName: job.CreatedByName,
		CreatedAt:     job.CreatedAt,
		CompletedAt:   job.CompletedAt,
		SignatureURL:  job.SignatureURL,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) List(ctx context.Context, createdBy string) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if createdBy != "" {
		filter["created_by"] = createdBy
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(resultLimit)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	return jobs, cur.Err()
}

// Update applies the non-nil fields of patch via a single $set, so concurrent
// partial updates to disjoint fields both land (last write wins per field).
func (r *JobRepository) Update(ctx context.Context, id string, patch domain.JobUpdate, completedAt *time.Time) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	set := bson.M{}
	if patch.ClientName != nil {
		set["client_name"] = *patch.ClientName
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Contact != nil {
		set["contact"] = *patch.Contact
	}
	if patch.JobType != nil {
		set["job_type"] = *patch.JobType
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.SignatureURL != nil {
		set["signature_url"] = *patch.SignatureURL
	}
	if completedAt != nil {
		set["completed_at"] = *completedAt
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if len(set) == 0 {
		// Nothing to apply; return the current document.
		var doc jobDoc
		if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrJobNotFound
			}
			return nil, fmt.Errorf("find job: %w", err)
		}
		return doc.toDomain(), nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc jobDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Count(ctx context.Context, createdBy string, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if createdBy != "" {
		filter["created_by"] = createdBy
	}
	if status != "" {
		filter["status"] = status
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes backing list and stats queries.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
