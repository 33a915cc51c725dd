// Package broadcast fans inventory events out to stream subscribers with
// automatic cleanup and buffering.
//
// Every published event is stamped with the next value of a monotonic
// revision counter, so subscribers can order events and detect gaps. Sends
// are non-blocking: a subscriber that stops draining its buffer is evicted
// instead of slowing the publisher or other subscribers.
//
// Basic usage:
//
//	hub := broadcast.New(clock, broadcast.WithBufferSize(16))
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx)
//	go func() {
//		for event := range sub.Events() {
//			fmt.Println(event.Type, event.Revision)
//		}
//	}()
//
//	hub.Publish(ctx, broadcast.EventProductCreated, map[string]any{"sku": "WIDGET-1"})
//
// The hub removes a subscriber when:
//   - the subscriber's context is cancelled
//   - the subscriber's buffer is full at delivery time
//   - the hub is closed
//
// A hub-owned keepalive loop sends periodic heartbeat frames so stalled
// connections are detected even when no mutations happen. Heartbeats do not
// advance the revision counter.
package broadcast
