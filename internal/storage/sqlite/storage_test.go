package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlink/watchsync/internal/models"
	"github.com/liftlink/watchsync/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestChannelStateUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreWorkoutSession(ctx, &models.WorkoutSessionSnapshot{ID: "s1", Title: "pull day"}))
	require.NoError(t, s.StoreWorkoutSession(ctx, &models.WorkoutSessionSnapshot{ID: "s1", Title: "leg day"}))

	got, err := s.GetWorkoutSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "leg day", got.Title, "a second store overwrites, never appends")
}

func TestGetMissingSnapshotReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetWorkoutProgress(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClearRemovesSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreTimerState(ctx, &models.TimerSnapshot{Running: true}))
	require.NoError(t, s.ClearTimerState(ctx))

	_, err := s.GetTimerState(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPendingSetCompletions_OrderedAndIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, s.AddPendingSetCompletion(ctx, models.PendingSetCompletion{ID: "c2", Timestamp: base.Add(time.Second)}))
	require.NoError(t, s.AddPendingSetCompletion(ctx, models.PendingSetCompletion{ID: "c1", Timestamp: base}))
	require.NoError(t, s.AddPendingSetCompletion(ctx, models.PendingSetCompletion{ID: "c1", Timestamp: base}))

	got, err := s.GetPendingSetCompletions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)

	require.NoError(t, s.RemovePendingSetCompletion(ctx, "c1"))
	got, err = s.GetPendingSetCompletions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)
}

func TestLastSyncTimestampAdvancesOnWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ts, err := s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	before := time.Now()
	require.NoError(t, s.StoreWorkoutProgress(ctx, &models.WorkoutProgressSnapshot{SessionID: "s1"}))

	ts, err = s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Millisecond)))
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())

	err := s.StoreTimerState(context.Background(), &models.TimerSnapshot{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
