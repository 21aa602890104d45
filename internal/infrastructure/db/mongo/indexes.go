package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every collection index the API relies on. Called once
// at startup; CreateMany is idempotent on existing indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := NewJobRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("jobs indexes: %w", err)
	}
	if err := NewTimesheetRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("timesheets indexes: %w", err)
	}
	if err := NewMessageRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("messages indexes: %w", err)
	}
	if err := NewPhotoRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("photos indexes: %w", err)
	}
	return nil
}
