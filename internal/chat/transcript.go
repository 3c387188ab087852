package chat

import (
	"time"

	"github.com/Rorical/niveshak/internal/models"
)

// Transcript is the ordered message list of one chat session. It only
// grows: messages are appended with the next sequence number and never
// changed or removed.
type Transcript struct {
	messages []models.Message
	lastID   int
	now      func() time.Time
}

// NewTranscript seeds the transcript with the assistant greeting.
func NewTranscript(greeting string, now func() time.Time) *Transcript {
	if now == nil {
		now = time.Now
	}
	t := &Transcript{now: now}
	t.Append(models.Assistant, greeting)
	return t
}

func (t *Transcript) Append(sender models.Sender, content string) models.Message {
	t.lastID++
	msg := models.Message{
		ID:        t.lastID,
		Content:   content,
		Sender:    sender,
		Timestamp: t.now(),
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns a copy in display order.
func (t *Transcript) Messages() []models.Message {
	result := make([]models.Message, len(t.messages))
	copy(result, t.messages)
	return result
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

func (t *Transcript) Last() models.Message {
	return t.messages[len(t.messages)-1]
}
