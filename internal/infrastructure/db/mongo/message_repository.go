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

const messagesCollection = "messages"

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(messagesCollection)}
}

type messageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FromID    string             `bson:"from_id"`
	FromName  string             `bson:"from_name"`
	To        string             `bson:"to"`
	Message   string             `bson:"message"`
	ImageURL  *string            `bson:"image_url"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (d messageDoc) toDomain() *domain.Message {
	return &domain.Message{
		ID:        d.ID.Hex(),
		FromID:    d.FromID,
		FromName:  d.FromName,
		To:        d.To,
		Message:   d.Message,
		ImageURL:  d.ImageURL,
		Timestamp: d.Timestamp.UTC(),
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := messageDoc{
		FromID:    msg.FromID,
		FromName:  msg.FromName,
		To:        msg.To,
		Message:   msg.Message,
		ImageURL:  msg.ImageURL,
		Timestamp: msg.Timestamp,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MessageRepository) ListBroadcast(ctx context.Context) ([]*domain.Message, error) {
	return r.list(ctx, bson.M{"to": domain.BroadcastTarget})
}

func (r *MessageRepository) ListConversation(ctx context.Context, userA, userB string) ([]*domain.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"from_id": userA, "to": userB},
		bson.M{"from_id": userB, "to": userA},
	}}
	return r.list(ctx, filter)
}

func (r *MessageRepository) list(ctx context.Context, filter bson.M) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(resultLimit)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer cur.Close(ctx)

	var msgs []*domain.Message
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		msgs = append(msgs, doc.toDomain())
	}
	return msgs, cur.Err()
}

// EnsureIndexes creates the indexes backing channel queries.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "to", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "from_id", Value: 1}, {Key: "timestamp", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
