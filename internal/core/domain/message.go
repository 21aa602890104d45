package domain

import "time"

// BroadcastTarget is the reserved recipient meaning "visible to the whole
// team" rather than a specific user.
const BroadcastTarget = "team"

// Message is an append-only chat entry. FromName is a snapshot of the
// sender's display name. To is either BroadcastTarget or a user id; recipient
// existence is not validated.
type Message struct {
	ID        string    `json:"id"`
	FromID    string    `json:"from_id"`
	FromName  string    `json:"from_name"`
	To        string    `json:"to"`
	Message   string    `json:"message"`
	ImageURL  *string   `json:"image_url"`
	Timestamp time.Time `json:"timestamp"`
}
