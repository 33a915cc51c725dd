package broadcast

import "time"

// Event types published by the service.
const (
	EventProductCreated   = "product_created"
	EventProductUpdated   = "product_updated"
	EventProductDeleted   = "product_deleted"
	EventProductRestocked = "product_restocked"
	EventNotificationSent = "notification_sent"

	// EventKeepalive marks heartbeat frames. Heartbeats carry no payload and
	// never advance the revision counter.
	EventKeepalive = "keepalive"
)

// Event is the envelope delivered to every subscriber. Revision is zero only
// for keepalive frames.
type Event struct {
	Type      string         `json:"type"`
	Revision  uint64         `json:"revision,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// IsKeepalive reports whether the event is a heartbeat frame.
func (e Event) IsKeepalive() bool {
	return e.Type == EventKeepalive
}
