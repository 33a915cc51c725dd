package broadcast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ponabinanth/inventory-service/pkg/logger"
	"github.com/ponabinanth/inventory-service/pkg/revision"
)

const (
	// DefaultBufferSize is the per-subscriber event buffer.
	DefaultBufferSize = 16

	// DefaultKeepaliveInterval is how often idle subscribers receive a
	// heartbeat frame.
	DefaultKeepaliveInterval = 20 * time.Second
)

// Option configures hub creation.
type Option func(*Hub)

// WithBufferSize sets the per-subscriber channel buffer. A minimum of 1 is
// enforced; an unbuffered channel would make every send drop.
func WithBufferSize(n int) Option {
	return func(h *Hub) { h.bufferSize = max(n, 1) }
}

// WithKeepaliveInterval sets the heartbeat interval. Non-positive values are
// ignored.
func WithKeepaliveInterval(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.keepalive = d
		}
	}
}

// WithLogger sets the hub's logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(h *Hub) {
		if log != nil {
			h.log = log
		}
	}
}

// Hub fans events out to all registered subscribers. Sends never block: a
// subscriber whose buffer is full is evicted on the spot, so one stalled
// consumer cannot delay a publisher or its peers. Publishes are serialized,
// which makes delivery order identical to revision order for every
// subscriber.
type Hub struct {
	clock      *revision.Clock
	bufferSize int
	keepalive  time.Duration
	log        *slog.Logger

	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	closed      bool

	stop      chan struct{}
	wg        sync.WaitGroup
	cleanupWg sync.WaitGroup
}

// New creates a hub stamping events with revisions from clock and starts the
// keepalive loop. A nil clock gets a fresh zero-seeded one.
func New(clock *revision.Clock, opts ...Option) *Hub {
	h := &Hub{
		clock:       clock,
		bufferSize:  DefaultBufferSize,
		keepalive:   DefaultKeepaliveInterval,
		log:         slog.Default(),
		subscribers: make(map[*Subscriber]struct{}),
		stop:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.clock == nil {
		h.clock = &revision.Clock{}
	}
	h.log = h.log.With(logger.Component("broadcast.hub"))

	h.wg.Add(1)
	go h.keepaliveLoop()

	return h
}

// Subscribe registers a new subscriber. The subscription ends when ctx is
// cancelled, the subscriber falls behind, or the hub closes. Subscribing to
// a closed hub returns an already-closed subscriber.
func (h *Hub) Subscribe(ctx context.Context) *Subscriber {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		sub := newSubscriber(h.bufferSize)
		sub.close()
		return sub
	}

	sub := newSubscriber(h.bufferSize)
	h.subscribers[sub] = struct{}{}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.log.DebugContext(ctx, "subscriber registered",
		slog.String("subscriber_id", sub.id.String()),
		logger.Subscribers(count),
	)

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			select {
			case <-ctx.Done():
				h.unsubscribe(sub)
			case <-h.stop:
				// Close already took care of the subscriber.
			}
		}()
	}

	return sub
}

// Publish stamps the event with the next revision and delivers it to every
// subscriber. Returns the assigned revision, or 0 when the hub is closed.
func (h *Hub) Publish(ctx context.Context, eventType string, details map[string]any) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0
	}

	event := Event{
		Type:      eventType,
		Revision:  h.clock.Advance(),
		Timestamp: time.Now().UTC(),
		Data:      details,
	}
	h.deliver(ctx, event)
	return event.Revision
}

// Revision returns the most recently issued revision number.
func (h *Hub) Revision() uint64 {
	return h.clock.Current()
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close evicts all subscribers and stops the keepalive loop. It is safe to
// call multiple times.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.stop)

	for sub := range h.subscribers {
		sub.close()
	}
	clear(h.subscribers)
	h.mu.Unlock()

	h.wg.Wait()
	h.cleanupWg.Wait()
}

// deliver fans one event out. Callers must hold the write lock; eviction
// mutates the subscriber map in place.
func (h *Hub) deliver(ctx context.Context, event Event) {
	for sub := range h.subscribers {
		if !sub.send(event) {
			delete(h.subscribers, sub)
			sub.close()
			h.log.WarnContext(ctx, "subscriber evicted",
				slog.String("subscriber_id", sub.id.String()),
				logger.EventType(event.Type),
				logger.Subscribers(len(h.subscribers)),
			)
		}
	}
}

func (h *Hub) unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		h.log.Debug("subscriber removed",
			slog.String("subscriber_id", sub.id.String()),
			logger.Subscribers(len(h.subscribers)),
		)
	}
	sub.close()
}

func (h *Hub) keepaliveLoop() {
	defer h.wg.Done()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			h.heartbeat()
		}
	}
}

// heartbeat sends a payload-free frame to every subscriber so stalled
// connections surface between mutations. Heartbeats skip the revision clock.
func (h *Hub) heartbeat() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.deliver(context.Background(), Event{
		Type:      EventKeepalive,
		Timestamp: time.Now().UTC(),
	})
}
