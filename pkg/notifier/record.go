package notifier

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies a delivery channel.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Channels lists every valid delivery channel.
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS}
}

// Valid reports whether c is a known delivery channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS:
		return true
	}
	return false
}

// Mode describes how a delivery attempt was executed.
type Mode string

const (
	// ModeLogOnly means no live transport was configured; the notification
	// was logged and counts as not delivered.
	ModeLogOnly Mode = "log-only"

	// ModeWebhook means the notification was POSTed to a configured endpoint.
	ModeWebhook Mode = "webhook"

	// ModePostmark means the notification went through Postmark's
	// transactional email API.
	ModePostmark Mode = "postmark"
)

// Record is the immutable account of one dispatch attempt. Delivered reports
// the outcome; Result carries the human-readable reason or confirmation.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Channel   Channel   `json:"channel"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Delivered bool      `json:"delivered"`
	Mode      Mode      `json:"mode"`
	Result    string    `json:"result,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
