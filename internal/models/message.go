package models

import "time"

// Sender identifies who wrote a message.
type Sender string

const (
	User      Sender = "user"
	Assistant Sender = "assistant"
)

// Message is one entry of the chat transcript. Messages are never mutated
// after they are appended.
type Message struct {
	ID        int       // Sequence number, strictly increasing within a session
	Content   string    // Raw text as submitted or received
	Sender    Sender    // User or Assistant
	Timestamp time.Time // Creation time
}

// FromUser reports whether the message was typed by the user.
func (m Message) FromUser() bool {
	return m.Sender == User
}
