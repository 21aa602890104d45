package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/api/metrics"
	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

// MessageService implements team and direct messaging. Messages are
// append-only and delivered by polling, not pushed.
type MessageService struct {
	repo ports.MessageRepository
	log  zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, log: log}
}

// Send appends a message from the actor. A direct recipient is taken at face
// value; there is no check that the user id exists.
func (s *MessageService) Send(ctx context.Context, actor *domain.User, input ports.SendMessageInput) (*domain.Message, error) {
	msg := &domain.Message{
		FromID:    actor.ID,
		FromName:  actor.Name,
		To:        input.To,
		Message:   input.Message,
		ImageURL:  input.ImageURL,
		Timestamp: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to send message")
		return nil, err
	}

	metrics.MessagesSentTotal.WithLabelValues(channelType(input.To)).Inc()
	return created, nil
}

// ListChannel returns the broadcast feed for the team channel, otherwise the
// bidirectional conversation between the actor and the named user.
func (s *MessageService) ListChannel(ctx context.Context, actor *domain.User, channel string) ([]*domain.Message, error) {
	if channel == domain.BroadcastTarget {
		return s.repo.ListBroadcast(ctx)
	}
	return s.repo.ListConversation(ctx, actor.ID, channel)
}

func channelType(to string) string {
	if to == domain.BroadcastTarget {
		return "broadcast"
	}
	return "direct"
}
