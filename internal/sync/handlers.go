package sync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/liftlink/watchsync/internal/models"
)

// maxSeenCompletions bounds the inbound dedup set. Delivery is at-least-once,
// so duplicate set-completed frames are expected; application is idempotent
// by record ID.
const maxSeenCompletions = 1024

// registerHandlers installs the inbound dispatch table on the adapter. Decode
// failures are logged and the message dropped without retry: a malformed
// payload will not become well-formed by retrying.
func (c *Coordinator) registerHandlers() {
	c.adapter.RegisterHandler(models.MessageSessionUpdate, c.handleSessionUpdate)
	c.adapter.RegisterHandler(models.MessageSetCompleted, c.handleSetCompleted)
	c.adapter.RegisterHandler(models.MessageTimerStarted, c.handleTimerUpdate)
	c.adapter.RegisterHandler(models.MessageTimerStopped, c.handleTimerUpdate)
	c.adapter.RegisterHandler(models.MessageExerciseUpdate, c.handleProgressUpdate)
	c.adapter.RegisterHandler(models.MessageSyncRequest, c.handleSyncRequest)
	c.adapter.RegisterHandler(models.MessageHeartbeat, c.handleHeartbeat)
	c.adapter.RegisterHandler(models.MessageTest, c.handleTest)
}

func (c *Coordinator) handleSessionUpdate(kind models.MessageKind, payload []byte, sentAt time.Time) {
	var snap models.WorkoutSessionSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		c.logger.Warn("dropping undecodable session update", "error", err)
		return
	}
	ctx := context.Background()

	eventKind := models.EventWorkoutStarted
	switch {
	case snap.Cancelled:
		eventKind = models.EventWorkoutCancelled
	case snap.Completed:
		eventKind = models.EventWorkoutCompleted
	}

	var err error
	if snap.Completed || snap.Cancelled {
		err = c.clearSessionState(ctx)
	} else {
		err = c.store.StoreWorkoutSession(ctx, &snap)
	}
	if err != nil {
		c.logger.Error("failed to apply remote session update", "error", err)
		return
	}

	c.recordInbound()
	c.dispatcher.Notify(models.SyncEvent{
		Type:      eventKind,
		Timestamp: sentAt,
		Source:    models.SourcePeer,
	})
}

func (c *Coordinator) handleSetCompleted(kind models.MessageKind, payload []byte, sentAt time.Time) {
	var rec models.PendingSetCompletion
	if err := json.Unmarshal(payload, &rec); err != nil {
		c.logger.Warn("dropping undecodable set completion", "error", err)
		return
	}

	if c.seenCompletion(rec.ID) {
		c.logger.Debug("duplicate set completion ignored", "id", rec.ID)
		return
	}

	c.recordInbound()
	c.dispatcher.Notify(models.SyncEvent{
		Type:      models.EventSetCompleted,
		Timestamp: sentAt,
		Source:    models.SourcePeer,
	})
}

func (c *Coordinator) handleTimerUpdate(kind models.MessageKind, payload []byte, sentAt time.Time) {
	var snap models.TimerSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		c.logger.Warn("dropping undecodable timer update", "error", err)
		return
	}
	if err := c.store.StoreTimerState(context.Background(), &snap); err != nil {
		c.logger.Error("failed to apply remote timer state", "error", err)
		return
	}

	eventKind := models.EventTimerStopped
	if snap.Running {
		eventKind = models.EventTimerStarted
	}

	c.recordInbound()
	c.dispatcher.Notify(models.SyncEvent{
		Type:      eventKind,
		Timestamp: sentAt,
		Source:    models.SourcePeer,
	})
}

func (c *Coordinator) handleProgressUpdate(kind models.MessageKind, payload []byte, sentAt time.Time) {
	var snap models.WorkoutProgressSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		c.logger.Warn("dropping undecodable progress update", "error", err)
		return
	}
	ctx := context.Background()

	// A change of exercise is surfaced as its own event kind so consumers
	// can advance screens rather than just refresh counters.
	eventKind := models.EventProgressUpdated
	if prev, err := c.store.GetWorkoutProgress(ctx); err == nil &&
		prev.CurrentExerciseIndex != snap.CurrentExerciseIndex {
		eventKind = models.EventExerciseUpdated
	}

	if err := c.store.StoreWorkoutProgress(ctx, &snap); err != nil {
		c.logger.Error("failed to apply remote progress", "error", err)
		return
	}

	c.recordInbound()
	c.dispatcher.Notify(models.SyncEvent{
		Type:      eventKind,
		Timestamp: sentAt,
		Source:    models.SourcePeer,
	})
}

// handleSyncRequest re-sends every channel snapshot currently in the store;
// the requester applies them through its normal inbound path.
func (c *Coordinator) handleSyncRequest(kind models.MessageKind, payload []byte, sentAt time.Time) {
	ctx := context.Background()
	c.recordInbound()

	if snap, err := c.store.GetWorkoutSession(ctx); err == nil {
		c.resend(models.MessageSessionUpdate, snap)
	}
	if snap, err := c.store.GetTimerState(ctx); err == nil {
		msg := models.MessageTimerStopped
		if snap.Running {
			msg = models.MessageTimerStarted
		}
		c.resend(msg, snap)
	}
	if snap, err := c.store.GetWorkoutProgress(ctx); err == nil {
		c.resend(models.MessageExerciseUpdate, snap)
	}

	c.dispatcher.Notify(models.SyncEvent{
		Type:      models.EventFullSyncRequested,
		Timestamp: sentAt,
		Source:    models.SourcePeer,
	})
}

// handleHeartbeat triggers reconciliation: a heartbeat proves the peer is
// reachable even if a reachability notification was missed.
func (c *Coordinator) handleHeartbeat(kind models.MessageKind, payload []byte, sentAt time.Time) {
	c.recordInbound()
	c.dispatcher.Notify(models.SyncEvent{
		Type:      models.EventHeartbeatReceived,
		Timestamp: sentAt,
		Source:    models.SourcePeer,
	})
	c.ProcessPendingOperations(context.Background())
}

func (c *Coordinator) handleTest(kind models.MessageKind, payload []byte, sentAt time.Time) {
	c.logger.Info("test message received", "payload_bytes", len(payload))
}

func (c *Coordinator) resend(msg models.MessageKind, snap any) {
	payload, err := json.Marshal(snap)
	if err != nil {
		c.logger.Error("failed to encode snapshot for full sync", "kind", msg, "error", err)
		return
	}
	c.adapter.Send(models.NewEnvelope(msg, payload), nil, func(err error) {
		c.logger.Info("full sync snapshot undelivered", "kind", msg, "error", err)
	})
}

func (c *Coordinator) recordInbound() {
	c.mu.Lock()
	c.stats.Received++
	c.mu.Unlock()
}

// seenCompletion records a completion ID and reports whether it was already
// seen. The set is cleared wholesale when it grows past its bound; a cleared
// duplicate re-notifies, which at-least-once consumers must tolerate anyway.
func (c *Coordinator) seenCompletion(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seenIDs == nil {
		c.seenIDs = make(map[string]struct{})
	}
	if _, ok := c.seenIDs[id]; ok {
		return true
	}
	if len(c.seenIDs) >= maxSeenCompletions {
		c.seenIDs = make(map[string]struct{})
	}
	c.seenIDs[id] = struct{}{}
	return false
}
