package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlink/watchsync/internal/models"
	"github.com/liftlink/watchsync/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestChannelSnapshotRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	session := &models.WorkoutSessionSnapshot{
		ID:            "s1",
		Title:         "push day",
		StartedAt:     time.Now(),
		ExerciseCount: 5,
	}
	require.NoError(t, s.StoreWorkoutSession(ctx, session))

	got, err := s.GetWorkoutSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.Title, got.Title)
	assert.True(t, got.StartedAt.Equal(session.StartedAt))

	timer := &models.TimerSnapshot{Running: true, Duration: 90 * time.Second, Remaining: 45 * time.Second}
	require.NoError(t, s.StoreTimerState(ctx, timer))

	gotTimer, err := s.GetTimerState(ctx)
	require.NoError(t, err)
	assert.True(t, gotTimer.Running)
	assert.Equal(t, 45*time.Second, gotTimer.Remaining)

	progress := &models.WorkoutProgressSnapshot{SessionID: "s1", CompletedSets: 3, TotalSets: 12}
	require.NoError(t, s.StoreWorkoutProgress(ctx, progress))

	gotProgress, err := s.GetWorkoutProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, gotProgress.CompletedSets)
}

func TestGetMissingSnapshotReturnsNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetWorkoutSession(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetTimerState(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClearRemovesSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreWorkoutSession(ctx, &models.WorkoutSessionSnapshot{ID: "s1"}))
	require.NoError(t, s.ClearWorkoutSession(ctx))

	_, err := s.GetWorkoutSession(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRetrieveValue_DecodeFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreValue(ctx, "k", "just a string"))

	var out models.WorkoutSessionSnapshot
	err := s.RetrieveValue(ctx, "k", &out)
	assert.ErrorIs(t, err, storage.ErrDecodeFailed)
}

func TestPendingSetCompletions_OrderedAndIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now()

	recs := []models.PendingSetCompletion{
		{ID: "c2", SetID: "set-2", Timestamp: base.Add(2 * time.Second)},
		{ID: "c1", SetID: "set-1", Timestamp: base},
		{ID: "c3", SetID: "set-3", Timestamp: base.Add(4 * time.Second)},
	}
	for _, rec := range recs {
		require.NoError(t, s.AddPendingSetCompletion(ctx, rec))
	}

	// Re-adding an existing ID must not duplicate the record.
	require.NoError(t, s.AddPendingSetCompletion(ctx, recs[0]))

	got, err := s.GetPendingSetCompletions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
	assert.Equal(t, "c3", got[2].ID)

	require.NoError(t, s.RemovePendingSetCompletion(ctx, "c2"))
	got, err = s.GetPendingSetCompletions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)
}

func TestLastSyncTimestampAdvancesOnWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ts, err := s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero(), "fresh store has no sync timestamp")

	before := time.Now()
	require.NoError(t, s.StoreWorkoutSession(ctx, &models.WorkoutSessionSnapshot{ID: "s1"}))

	ts, err = s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Millisecond)))
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Close())

	err := s.StoreWorkoutSession(ctx, &models.WorkoutSessionSnapshot{ID: "s1"})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = s.GetPendingSetCompletions(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
