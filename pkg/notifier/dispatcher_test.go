package notifier_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponabinanth/inventory-service/pkg/broadcast"
	"github.com/ponabinanth/inventory-service/pkg/notifier"
	"github.com/ponabinanth/inventory-service/pkg/snapshot"
	"github.com/ponabinanth/inventory-service/pkg/validator"
)

type publishedEvent struct {
	eventType string
	details   map[string]any
}

type publishRecorder struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *publishRecorder) Publish(ctx context.Context, eventType string, details map[string]any) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{eventType: eventType, details: details})
	return uint64(len(p.events))
}

func (p *publishRecorder) all() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDispatcher(t *testing.T, senders map[notifier.Channel]notifier.ChannelSender) (*notifier.Dispatcher, *notifier.History, *publishRecorder) {
	t.Helper()

	history, _ := newTestHistory(t)
	recorder := &publishRecorder{}
	return notifier.NewDispatcher(senders, history, recorder, discardLogger()), history, recorder
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("unconfigured channel falls back to log-only", func(t *testing.T) {
		t.Parallel()

		dispatcher, history, recorder := newTestDispatcher(t, nil)

		record, err := dispatcher.Dispatch(context.Background(), notifier.ChannelSMS, "+15550100", "Low stock", "WIDGET-1 is low")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, record.ID)
		assert.Equal(t, notifier.ChannelSMS, record.Channel)
		assert.False(t, record.Delivered)
		assert.Equal(t, notifier.ModeLogOnly, record.Mode)
		assert.False(t, record.CreatedAt.IsZero())

		// Exactly one history record, and the hub heard about it.
		assert.Equal(t, 1, history.Len())
		events := recorder.all()
		require.Len(t, events, 1)
		assert.Equal(t, broadcast.EventNotificationSent, events[0].eventType)
		assert.Equal(t, record.ID.String(), events[0].details["id"])
		assert.Equal(t, "sms", events[0].details["channel"])
		assert.Equal(t, false, events[0].details["delivered"])
	})

	t.Run("unknown channel rejected before any side effect", func(t *testing.T) {
		t.Parallel()

		dispatcher, history, recorder := newTestDispatcher(t, nil)

		_, err := dispatcher.Dispatch(context.Background(), notifier.Channel("carrier-pigeon"), "x", "y", "z")
		require.ErrorIs(t, err, notifier.ErrUnknownChannel)
		assert.Equal(t, 0, history.Len())
		assert.Empty(t, recorder.all())
	})

	t.Run("missing fields rejected before any side effect", func(t *testing.T) {
		t.Parallel()

		dispatcher, history, _ := newTestDispatcher(t, nil)

		_, err := dispatcher.Dispatch(context.Background(), notifier.ChannelEmail, "", "", "")
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		assert.True(t, errs.Has("recipient"))
		assert.True(t, errs.Has("subject"))
		assert.True(t, errs.Has("message"))
		assert.Equal(t, 0, history.Len())
	})

	t.Run("webhook delivery outcome recorded", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		sender, err := notifier.NewWebhookSender(srv.URL, time.Second, nil)
		require.NoError(t, err)

		dispatcher, history, recorder := newTestDispatcher(t, map[notifier.Channel]notifier.ChannelSender{
			notifier.ChannelEmail: sender,
		})

		record, err := dispatcher.Dispatch(context.Background(), notifier.ChannelEmail, "ops@example.com", "Low stock", "restock soon")
		require.NoError(t, err)

		assert.True(t, record.Delivered)
		assert.Equal(t, notifier.ModeWebhook, record.Mode)
		assert.Equal(t, 1, history.Len())

		events := recorder.all()
		require.Len(t, events, 1)
		assert.Equal(t, true, events[0].details["delivered"])
	})

	t.Run("failed delivery is data not error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		sender, err := notifier.NewWebhookSender(srv.URL, time.Second, nil)
		require.NoError(t, err)

		dispatcher, history, _ := newTestDispatcher(t, map[notifier.Channel]notifier.ChannelSender{
			notifier.ChannelSMS: sender,
		})

		record, err := dispatcher.Dispatch(context.Background(), notifier.ChannelSMS, "+15550100", "Low stock", "restock soon")
		require.NoError(t, err)

		assert.False(t, record.Delivered)
		assert.Contains(t, record.Result, "500")
		assert.Equal(t, 1, history.Len())
	})

	t.Run("history persist failure fails the dispatch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "notifications.json")
		snap, err := snapshot.New[[]notifier.Record](path)
		require.NoError(t, err)
		history, err := notifier.NewHistory(snap)
		require.NoError(t, err)

		dispatcher := notifier.NewDispatcher(nil, history, nil, discardLogger())

		require.NoError(t, os.Mkdir(path, 0755))

		_, err = dispatcher.Dispatch(context.Background(), notifier.ChannelEmail, "ops@example.com", "s", "m")
		require.Error(t, err)
		assert.Equal(t, 0, history.Len())
	})
}
