package notifier_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponabinanth/inventory-service/pkg/notifier"
	"github.com/ponabinanth/inventory-service/pkg/snapshot"
)

func newTestHistory(t *testing.T) (*notifier.History, *snapshot.Store[[]notifier.Record]) {
	t.Helper()

	snap, err := snapshot.New[[]notifier.Record](filepath.Join(t.TempDir(), "notifications.json"))
	require.NoError(t, err)

	history, err := notifier.NewHistory(snap)
	require.NoError(t, err)
	return history, snap
}

func testRecord(subject string) notifier.Record {
	return notifier.Record{
		ID:        uuid.New(),
		Channel:   notifier.ChannelEmail,
		Recipient: "ops@example.com",
		Subject:   subject,
		Message:   "stock is low",
		Mode:      notifier.ModeLogOnly,
		Result:    "no delivery endpoint configured",
	}
}

func TestHistory_AppendAndList(t *testing.T) {
	t.Parallel()

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()

		history, _ := newTestHistory(t)
		ctx := context.Background()

		for i := range 3 {
			require.NoError(t, history.Append(ctx, testRecord(fmt.Sprintf("alert %d", i))))
		}

		records := history.List(ctx, 10)
		require.Len(t, records, 3)
		assert.Equal(t, "alert 2", records[0].Subject)
		assert.Equal(t, "alert 1", records[1].Subject)
		assert.Equal(t, "alert 0", records[2].Subject)
		assert.Equal(t, 3, history.Len())
	})

	t.Run("sets created at when zero", func(t *testing.T) {
		t.Parallel()

		history, _ := newTestHistory(t)

		require.NoError(t, history.Append(context.Background(), testRecord("alert")))
		records := history.List(context.Background(), 1)
		require.Len(t, records, 1)
		assert.False(t, records[0].CreatedAt.IsZero())
	})

	t.Run("rejects missing id", func(t *testing.T) {
		t.Parallel()

		history, _ := newTestHistory(t)

		rec := testRecord("alert")
		rec.ID = uuid.Nil
		err := history.Append(context.Background(), rec)
		require.ErrorIs(t, err, notifier.ErrInvalidRecord)
		assert.Equal(t, 0, history.Len())
	})
}

func TestHistory_LimitClamping(t *testing.T) {
	t.Parallel()

	history, _ := newTestHistory(t)
	ctx := context.Background()

	for i := range 120 {
		require.NoError(t, history.Append(ctx, testRecord(fmt.Sprintf("alert %d", i))))
	}

	assert.Len(t, history.List(ctx, 0), notifier.DefaultHistoryLimit)
	assert.Len(t, history.List(ctx, -7), notifier.DefaultHistoryLimit)
	assert.Len(t, history.List(ctx, 1), 1)
	assert.Len(t, history.List(ctx, 50), 50)
	assert.Len(t, history.List(ctx, 150), notifier.MaxHistoryLimit)

	// Most recent record always comes first regardless of limit.
	assert.Equal(t, "alert 119", history.List(ctx, 1)[0].Subject)
}

func TestHistory_PersistsAcrossRestarts(t *testing.T) {
	t.Parallel()

	snap, err := snapshot.New[[]notifier.Record](filepath.Join(t.TempDir(), "notifications.json"))
	require.NoError(t, err)

	history, err := notifier.NewHistory(snap)
	require.NoError(t, err)

	rec := testRecord("persisted alert")
	require.NoError(t, history.Append(context.Background(), rec))

	reloaded, err := notifier.NewHistory(snap)
	require.NoError(t, err)

	records := reloaded.List(context.Background(), 10)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, "persisted alert", records[0].Subject)
}

func TestHistory_AppendRollsBackOnPersistFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notifications.json")
	snap, err := snapshot.New[[]notifier.Record](path)
	require.NoError(t, err)

	history, err := notifier.NewHistory(snap)
	require.NoError(t, err)

	// A directory at the snapshot path makes the final rename fail.
	require.NoError(t, os.Mkdir(path, 0755))

	err = history.Append(context.Background(), testRecord("alert"))
	require.Error(t, err)
	assert.Equal(t, 0, history.Len())
}
