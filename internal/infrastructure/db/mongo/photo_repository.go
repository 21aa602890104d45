package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fencewise/field-service/internal/core/domain"
)

const photosCollection = "photos"

type PhotoRepository struct {
	coll *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *PhotoRepository {
	return &PhotoRepository{coll: db.Collection(photosCollection)}
}

type photoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       string             `bson:"job_id"`
	UserID      string             `bson:"user_id"`
	UserName    string             `bson:"user_name"`
	ImageBase64 string             `bson:"image_base64"`
	Caption     string             `bson:"caption"`
	UploadedAt  time.Time          `bson:"uploaded_at"`
}

func (d photoDoc) toDomain() *domain.Photo {
	return &domain.Photo{
		ID:          d.ID.Hex(),
		JobID:       d.JobID,
		UserID:      d.UserID,
		UserName:    d.UserName,
		ImageBase64: d.ImageBase64,
		Caption:     d.Caption,
		UploadedAt:  d.UploadedAt.UTC(),
	}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := photoDoc{
		JobID:       photo.JobID,
		UserID:      photo.UserID,
		UserName:    photo.UserName,
		ImageBase64: photo.ImageBase64,
		Caption:     photo.Caption,
		UploadedAt:  photo.UploadedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PhotoRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).
		SetLimit(resultLimit)

	cur, err := r.coll.Find(ctx, bson.M{"job_id": jobID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer cur.Close(ctx)

	var photos []*domain.Photo
	for cur.Next(ctx) {
		var doc photoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode photo: %w", err)
		}
		photos = append(photos, doc.toDomain())
	}
	return photos, cur.Err()
}

// EnsureIndexes creates the index backing per-job photo listings.
func (r *PhotoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "uploaded_at", Value: -1}},
	})
	return err
}
