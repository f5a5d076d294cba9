package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	payload, err := json.Marshal(WorkoutSessionSnapshot{ID: "s1", Title: "Push Day"})
	require.NoError(t, err)

	env := NewEnvelope(MessageSessionUpdate, payload)
	data, err := EncodeEnvelope(env)
	require.NoError(t, err)

	decoded, err := DecodeEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, MessageSessionUpdate, decoded.Type)
	assert.JSONEq(t, string(payload), string(decoded.Payload))
	assert.WithinDuration(t, time.Now(), decoded.Time(), time.Second)
}

func TestDecodeEnvelope_UnknownKind(t *testing.T) {
	data := []byte(`{"type":"photo-upload","timestamp":1}`)

	_, err := DecodeEnvelope(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown message kind")
}

func TestDecodeEnvelope_Malformed(t *testing.T) {
	_, err := DecodeEnvelope([]byte(`{not json`))
	require.Error(t, err)
}

func TestPendingOperation_Matches(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	op := func(kind EventKind, source DeviceSource, at time.Time) PendingOperation {
		return PendingOperation{Event: SyncEvent{Type: kind, Source: source, Timestamp: at}}
	}

	window := time.Second

	a := op(EventWorkoutStarted, SourcePrimary, base)

	assert.True(t, a.Matches(op(EventWorkoutStarted, SourcePrimary, base.Add(300*time.Millisecond)), window))
	assert.False(t, a.Matches(op(EventWorkoutStarted, SourcePrimary, base.Add(2*time.Second)), window),
		"outside the window is not a duplicate")
	assert.False(t, a.Matches(op(EventWorkoutStarted, SourcePeer, base), window),
		"different source is not a duplicate")
	assert.False(t, a.Matches(op(EventWorkoutCompleted, SourcePrimary, base), window),
		"different kind is not a duplicate")
}

func TestPendingOperation_Stale(t *testing.T) {
	now := time.Now()
	op := PendingOperation{EnqueuedAt: now.Add(-6 * time.Minute)}

	assert.True(t, op.Stale(now, 5*time.Minute))
	assert.False(t, op.Stale(now, 10*time.Minute))
}

func TestNewPendingSetCompletion_UniqueIDs(t *testing.T) {
	a := NewPendingSetCompletion("set-1", "bench", 8, 80)
	b := NewPendingSetCompletion("set-1", "bench", 8, 80)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
