package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlink/watchsync/internal/models"
)

func pendingOp(kind models.EventKind, at time.Time) models.PendingOperation {
	return models.PendingOperation{
		Event: models.SyncEvent{
			Type:      kind,
			Timestamp: at,
			Source:    models.SourcePrimary,
		},
		EnqueuedAt: at,
	}
}

func TestEnqueue_DedupWithinWindow(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	base := time.Now()

	require.True(t, q.enqueue(pendingOp(models.EventWorkoutStarted, base)))
	require.False(t, q.enqueue(pendingOp(models.EventWorkoutStarted, base.Add(300*time.Millisecond))),
		"same kind and source 0.3s apart must be absorbed")

	assert.Equal(t, 1, q.len())

	// The later of the two survives.
	assert.Equal(t, base.Add(300*time.Millisecond), q.ops[0].Event.Timestamp)
}

func TestEnqueue_OutsideWindowKeepsBoth(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	base := time.Now()

	require.True(t, q.enqueue(pendingOp(models.EventWorkoutStarted, base)))
	require.True(t, q.enqueue(pendingOp(models.EventWorkoutStarted, base.Add(2*time.Second))))

	assert.Equal(t, 2, q.len())
}

func TestEnqueue_SetCompletionsNeverDeduped(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	base := time.Now()

	require.True(t, q.enqueue(pendingOp(models.EventSetCompleted, base)))
	require.True(t, q.enqueue(pendingOp(models.EventSetCompleted, base.Add(2*time.Second))))

	assert.Equal(t, 2, q.len())
}

func TestDrain_TTLPruning(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	now := time.Now()

	q.enqueue(pendingOp(models.EventWorkoutStarted, now.Add(-6*time.Minute)))
	q.enqueue(pendingOp(models.EventProgressUpdated, now.Add(-time.Minute)))

	replay, dropped := q.drain(now)

	assert.Equal(t, 1, dropped)
	require.Len(t, replay, 1)
	assert.Equal(t, models.EventProgressUpdated, replay[0].Event.Type)
}

func TestDrain_LastWriterWinsForTimerGroup(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	now := time.Now()

	q.enqueue(pendingOp(models.EventTimerStarted, now.Add(-30*time.Second)))
	q.enqueue(pendingOp(models.EventTimerStopped, now.Add(-10*time.Second)))

	replay, _ := q.drain(now)

	require.Len(t, replay, 1)
	assert.Equal(t, models.EventTimerStopped, replay[0].Event.Type,
		"only the most recent timer event survives")
}

func TestDrain_LastWriterWinsForSessionGroup(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	now := time.Now()

	q.enqueue(pendingOp(models.EventWorkoutStarted, now.Add(-40*time.Second)))
	q.enqueue(pendingOp(models.EventWorkoutCompleted, now.Add(-5*time.Second)))

	replay, _ := q.drain(now)

	require.Len(t, replay, 1)
	assert.Equal(t, models.EventWorkoutCompleted, replay[0].Event.Type)
}

func TestDrain_SetCompletionsReplayAllInOrder(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	now := time.Now()

	q.enqueue(pendingOp(models.EventSetCompleted, now.Add(-3*time.Second)))
	q.enqueue(pendingOp(models.EventSetCompleted, now.Add(-9*time.Second)))
	q.enqueue(pendingOp(models.EventSetCompleted, now.Add(-6*time.Second)))

	replay, _ := q.drain(now)

	require.Len(t, replay, 3, "set completions never collapse")
	assert.True(t, replay[0].Event.Timestamp.Before(replay[1].Event.Timestamp))
	assert.True(t, replay[1].Event.Timestamp.Before(replay[2].Event.Timestamp))
}

func TestDrain_EqualTimestampsKeepEnqueueOrder(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	now := time.Now()
	at := now.Add(-time.Second)

	// Three non-collapsible kinds sharing one wall-clock timestamp, as a
	// same-millisecond burst produces.
	q.enqueue(pendingOp(models.EventSetCompleted, at))
	q.enqueue(pendingOp(models.EventProgressUpdated, at))
	q.enqueue(pendingOp(models.EventFullSyncRequested, at))

	replay, _ := q.drain(now)

	require.Len(t, replay, 3)
	assert.Equal(t, models.EventSetCompleted, replay[0].Event.Type)
	assert.Equal(t, models.EventProgressUpdated, replay[1].Event.Type)
	assert.Equal(t, models.EventFullSyncRequested, replay[2].Event.Type)
}

func TestDrain_MixedKindsChronological(t *testing.T) {
	q := newOfflineQueue(time.Second, 5*time.Minute)
	now := time.Now()

	q.enqueue(pendingOp(models.EventSetCompleted, now.Add(-20*time.Second)))
	q.enqueue(pendingOp(models.EventTimerStarted, now.Add(-15*time.Second)))
	q.enqueue(pendingOp(models.EventSetCompleted, now.Add(-10*time.Second)))
	q.enqueue(pendingOp(models.EventWorkoutStarted, now.Add(-5*time.Second)))

	replay, _ := q.drain(now)

	require.Len(t, replay, 4)
	for i := 1; i < len(replay); i++ {
		assert.True(t, replay[i-1].Event.Timestamp.Before(replay[i].Event.Timestamp),
			"replay must be chronological")
	}

	assert.Equal(t, 0, q.len(), "drain empties the queue")
}
