package ports

import (
	"context"

	"github.com/fencewise/field-service/internal/core/domain"
)

// SendMessageInput carries the data needed to send a message. To is either
// domain.BroadcastTarget or a specific user id.
type SendMessageInput struct {
	To       string
	Message  string
	ImageURL *string
}

// MessageService defines use-case operations for messages.
type MessageService interface {
	// Send appends a message from the actor. The recipient is not validated
	// to exist.
	Send(ctx context.Context, actor *domain.User, input SendMessageInput) (*domain.Message, error)
	// ListChannel returns the broadcast feed when channel equals the
	// broadcast target, otherwise the bidirectional conversation between the
	// actor and channel. Ascending by time.
	ListChannel(ctx context.Context, actor *domain.User, channel string) ([]*domain.Message, error)
}
