package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// MessageRepository defines persistence operations for messages.
// Messages are append-only; there is no update or delete.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	// ListBroadcast returns all team-broadcast messages ascending by time,
	// capped at the global result limit.
	ListBroadcast(ctx context.Context) ([]*domain.Message, error)
	// ListConversation returns the bidirectional conversation between two
	// users ascending by time, capped at the global result limit.
	ListConversation(ctx context.Context, userA, userB string) ([]*domain.Message, error)
}
