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

const timesheetsCollection = "timesheets"

type TimesheetRepository struct {
	coll *mongo.Collection
}

func NewTimesheetRepository(db *mongo.Database) *TimesheetRepository {
	return &TimesheetRepository{coll: db.Collection(timesheetsCollection)}
}

type timesheetDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	UserName   string             `bson:"user_name"`
	Date       string             `bson:"date"`
	StartTime  string             `bson:"start_time"`
	FinishTime string             `bson:"finish_time"`
	BreakTime  string             `bson:"break_time"`
	Notes      string             `bson:"notes"`
	TotalHours float64            `bson:"total_hours"`
	JobID      *string            `bson:"job_id"`
	Approved   bool               `bson:"approved"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d timesheetDoc) toDomain() *domain.Timesheet {
	return &domain.Timesheet{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		UserName:   d.UserName,
		Date:       d.Date,
		StartTime:  d.StartTime,
		FinishTime: d.FinishTime,
		BreakTime:  d.BreakTime,
		Notes:      d.Notes,
		TotalHours: d.TotalHours,
		JobID:      d.JobID,
		Approved:   d.Approved,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func (r *TimesheetRepository) Create(ctx context.Context, ts *domain.Timesheet) (*domain.Timesheet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := timesheetDoc{
		UserID:     ts.UserID,
		UserName:   ts.UserName,
		Date:       ts.Date,
		StartTime:  ts.StartTime,
		FinishTime: ts.FinishTime,
		BreakTime:  ts.BreakTime,
		Notes:      ts.Notes,
		TotalHours: ts.TotalHours,
		JobID:      ts.JobID,
		Approved:   ts.Approved,
		CreatedAt:  ts.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert timesheet: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *TimesheetRepository) List(ctx context.Context, userID string) ([]*domain.Timesheet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(resultLimit)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	defer cur.Close(ctx)

	var sheets []*domain.Timesheet
	for cur.Next(ctx) {
		var doc timesheetDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode timesheet: %w", err)
		}
		sheets = append(sheets, doc.toDomain())
	}
	return sheets, cur.Err()
}

// Approve sets the approval flag. Existence is judged by MatchedCount, not
// ModifiedCount, so re-approving an already-approved sheet succeeds.
func (r *TimesheetRepository) Approve(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTimesheetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return fmt.Errorf("approve timesheet: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTimesheetNotFound
	}
	return nil
}

func (r *TimesheetRepository) Count(ctx context.Context, userID string, unapprovedOnly bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	if unapprovedOnly {
		filter["approved"] = false
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count timesheets: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes backing list and stats queries.
func (r *TimesheetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "approved", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
