package broadcast

import (
	"sync"

	"github.com/google/uuid"
)

// Subscriber is one registered event consumer, bound to a single stream
// connection. All methods are safe for concurrent use.
type Subscriber struct {
	id     uuid.UUID
	events chan Event
	mu     sync.RWMutex
	closed bool
}

func newSubscriber(bufferSize int) *Subscriber {
	return &Subscriber{
		id:     uuid.New(),
		events: make(chan Event, bufferSize),
	}
}

// ID returns the subscriber's unique identifier.
func (s *Subscriber) ID() uuid.UUID {
	return s.id
}

// Events returns the channel events are delivered on. The channel is closed
// when the subscriber is evicted or the hub shuts down.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// send delivers the event without blocking. It reports false when the buffer
// is full or the subscriber is already closed.
func (s *Subscriber) send(event Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.events <- event:
		return true
	default:
		return false
	}
}

// close is idempotent. The lock excludes in-flight sends so the channel is
// never closed mid-send.
func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.events)
		s.closed = true
	}
}
