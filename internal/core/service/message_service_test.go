package service

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

type stubMessageRepo struct {
	messages []*domain.Message
	nextID   int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func cloneMessage(m *domain.Message) *domain.Message {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMessageRepo) Create(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	copy := cloneMessage(msg)
	r.nextID++
	copy.ID = "msg-" + strconv.Itoa(r.nextID)
	r.messages = append(r.messages, cloneMessage(copy))
	return copy, nil
}

func (r *stubMessageRepo) ListBroadcast(_ context.Context) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.To == domain.BroadcastTarget {
			out = append(out, cloneMessage(m))
		}
	}
	sortMessages(out)
	return out, nil
}

func (r *stubMessageRepo) ListConversation(_ context.Context, userA, userB string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if (m.FromID == userA && m.To == userB) || (m.FromID == userB && m.To == userA) {
			out = append(out, cloneMessage(m))
		}
	}
	sortMessages(out)
	return out, nil
}

func sortMessages(msgs []*domain.Message) {
	sort.Slice(msgs, func(i, k int) bool { return msgs[i].Timestamp.Before(msgs[k].Timestamp) })
}

func sendAt(t *testing.T, repo *stubMessageRepo, from, to, text string, at time.Time) {
	t.Helper()
	if _, err := repo.Create(context.Background(), &domain.Message{
		FromID: from, FromName: "User " + from, To: to, Message: text, Timestamp: at,
	}); err != nil {
		t.Fatalf("seed message: %v", err)
	}
}

func TestMessageService_Send(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewMessageService(repo, zerolog.Nop())
	actor := worker("w1")

	msg, err := svc.Send(context.Background(), actor, ports.SendMessageInput{
		To:      domain.BroadcastTarget,
		Message: "smoko at ten",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if msg.FromID != "w1" || msg.FromName != actor.Name {
		t.Fatalf("sender not attributed: %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Fatalf("expected a timestamp")
	}
}

func TestMessageService_Send_UnknownRecipientAccepted(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewMessageService(repo, zerolog.Nop())

	// Recipient ids are taken at face value.
	if _, err := svc.Send(context.Background(), worker("w1"), ports.SendMessageInput{
		To:      "nobody-here",
		Message: "hello?",
	}); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
}

func TestMessageService_ListChannel_Broadcast(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewMessageService(repo, zerolog.Nop())

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	sendAt(t, repo, "w1", domain.BroadcastTarget, "first", base)
	sendAt(t, repo, "w2", "w1", "private", base.Add(time.Minute))
	sendAt(t, repo, "w2", domain.BroadcastTarget, "second", base.Add(2*time.Minute))

	msgs, err := svc.ListChannel(context.Background(), worker("w1"), domain.BroadcastTarget)
	if err != nil {
		t.Fatalf("ListChannel returned error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("broadcast feed = %d messages, want 2", len(msgs))
	}
	if msgs[0].Message != "first" || msgs[1].Message != "second" {
		t.Fatalf("broadcast feed out of order: %q then %q", msgs[0].Message, msgs[1].Message)
	}
}

func TestMessageService_ListChannel_ConversationIsBidirectional(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewMessageService(repo, zerolog.Nop())

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	sendAt(t, repo, "w1", "w2", "hey", base)
	sendAt(t, repo, "w2", "w1", "yeah?", base.Add(time.Minute))
	sendAt(t, repo, "w1", "w3", "other thread", base.Add(2*time.Minute))
	sendAt(t, repo, "w1", domain.BroadcastTarget, "all hands", base.Add(3*time.Minute))

	msgs, err := svc.ListChannel(context.Background(), worker("w1"), "w2")
	if err != nil {
		t.Fatalf("ListChannel returned error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("conversation = %d messages, want both directions and nothing else", len(msgs))
	}
	if msgs[0].Message != "hey" || msgs[1].Message != "yeah?" {
		t.Fatalf("conversation out of order: %q then %q", msgs[0].Message, msgs[1].Message)
	}
}
