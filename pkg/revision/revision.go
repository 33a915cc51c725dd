// Package revision provides the monotonic change counter stamped onto every
// broadcast event. Subscribers use it to detect gaps and order events without
// trusting wall clocks.
package revision

import "sync/atomic"

// Clock issues strictly increasing revision numbers. The zero value is ready
// to use and starts counting at 1.
type Clock struct{ n atomic.Uint64 }

// Advance increments the counter and returns the new revision.
func (c *Clock) Advance() uint64 { return c.n.Add(1) }

// Current returns the most recently issued revision, or 0 when no revision
// has been issued yet.
func (c *Clock) Current() uint64 { return c.n.Load() }
