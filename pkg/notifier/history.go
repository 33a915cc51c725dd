package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ponabinanth/inventory-service/pkg/snapshot"
)

const (
	// DefaultHistoryLimit applies when a caller does not specify a limit.
	DefaultHistoryLimit = 20

	// MaxHistoryLimit caps how many records a single listing returns.
	MaxHistoryLimit = 100
)

// History is the append-only log of dispatch attempts, mirrored to its own
// snapshot file. Records are never modified or removed once appended.
type History struct {
	mu      sync.RWMutex
	records []Record
	snap    *snapshot.Store[[]Record]
}

// NewHistory creates a history backed by the given snapshot file and loads
// any previously persisted records.
func NewHistory(snap *snapshot.Store[[]Record]) (*History, error) {
	records, err := snap.Load()
	if err != nil {
		return nil, fmt.Errorf("load notification snapshot: %w", err)
	}
	return &History{records: records, snap: snap}, nil
}

// Append persists the record. On persist failure the in-memory state is
// rolled back and the error returned.
func (h *History) Append(ctx context.Context, rec Record) error {
	if rec.ID == uuid.Nil {
		return fmt.Errorf("%w: record ID is required", ErrInvalidRecord)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, rec)
	if err := h.snap.Save(h.records); err != nil {
		h.records = h.records[:len(h.records)-1]
		return fmt.Errorf("persist notifications: %w", err)
	}
	return nil
}

// List returns up to limit records, most recent first. Non-positive limits
// fall back to DefaultHistoryLimit; limits above MaxHistoryLimit are capped.
func (h *History) List(ctx context.Context, limit int) []Record {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	n := min(limit, len(h.records))
	out := make([]Record, 0, n)
	for i := len(h.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, h.records[i])
	}
	return out
}

// Len returns the total number of recorded attempts.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}
