package ports

import "context"

// Message is a chat message. Header and Body render as a titled block;
// Text is sent as plain text when Header and Body are empty.
type Message struct {
	Channel  string
	ThreadID string

	Header  string
	Body    string
	Text    string
	Divider bool
}

// Messenger posts messages to a chat system.
type Messenger interface {
	// Send posts m and returns the ID replies should use to join its thread.
	Send(ctx context.Context, m Message) (string, error)
}
