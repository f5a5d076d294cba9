package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlink/watchsync/internal/models"
)

func TestNotify_InvokesInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()

	var order []string
	d.AddHandler(func(models.SyncEvent) { order = append(order, "first") })
	d.AddHandler(func(models.SyncEvent) { order = append(order, "second") })
	d.AddHandler(func(models.SyncEvent) { order = append(order, "third") })

	d.Notify(models.NewSyncEvent(models.EventWorkoutStarted, models.SourcePrimary))

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestNotify_EachHandlerOncePerCall(t *testing.T) {
	d := NewDispatcher()

	count := 0
	d.AddHandler(func(models.SyncEvent) { count++ })

	event := models.NewSyncEvent(models.EventSetCompleted, models.SourcePeer)
	d.Notify(event)
	d.Notify(event)

	assert.Equal(t, 2, count)
}

func TestNotify_HandlerAddedDuringNotifyNotInvoked(t *testing.T) {
	d := NewDispatcher()

	lateCalls := 0
	d.AddHandler(func(models.SyncEvent) {
		d.AddHandler(func(models.SyncEvent) { lateCalls++ })
	})

	d.Notify(models.NewSyncEvent(models.EventTimerStarted, models.SourcePrimary))
	assert.Equal(t, 0, lateCalls, "handler added mid-notify must not fire for that call")

	d.Notify(models.NewSyncEvent(models.EventTimerStarted, models.SourcePrimary))
	assert.Equal(t, 1, lateCalls)
}

func TestRemoveHandler(t *testing.T) {
	d := NewDispatcher()

	var got []string
	keep := func(models.SyncEvent) { got = append(got, "keep") }
	drop := func(models.SyncEvent) { got = append(got, "drop") }

	d.AddHandler(keep)
	sub := d.AddHandler(drop)
	require.Equal(t, 2, d.Len())

	d.RemoveHandler(sub)
	require.Equal(t, 1, d.Len())

	// Removing twice is harmless.
	d.RemoveHandler(sub)

	d.Notify(models.NewSyncEvent(models.EventWorkoutCompleted, models.SourcePrimary))
	assert.Equal(t, []string{"keep"}, got)
}

func TestRemoveAllHandlers(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	d.AddHandler(func(models.SyncEvent) { calls++ })
	d.AddHandler(func(models.SyncEvent) { calls++ })

	d.RemoveAllHandlers()
	require.Equal(t, 0, d.Len())

	d.Notify(models.NewSyncEvent(models.EventWorkoutStarted, models.SourcePrimary))
	assert.Equal(t, 0, calls)
}
