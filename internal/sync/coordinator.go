// Package sync implements the coordinator that keeps the phone and watch
// behaviorally consistent. It converts domain-level state changes into wire
// messages, queues them while the peer is unreachable, resolves conflicts
// among queued operations, and re-injects them once connectivity returns.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/liftlink/watchsync/internal/events"
	"github.com/liftlink/watchsync/internal/models"
	"github.com/liftlink/watchsync/internal/storage"
	"github.com/liftlink/watchsync/internal/transport"
)

// State is the coordinator's visible sync state. A send in flight shows as
// StateSyncing; a confirmed delivery holds StateCompleted briefly for UI
// feedback before settling back to StateIdle.
type State string

const (
	StateIdle      State = "idle"
	StateSyncing   State = "syncing"
	StateCompleted State = "completed"
)

// Config holds the coordinator tunables. The dedup window and queue TTL are
// implementation constants, not load-bearing invariants.
type Config struct {
	// DedupWindow collapses pending operations with the same kind and
	// source whose timestamps fall within this span.
	DedupWindow time.Duration
	// QueueTTL drops pending operations older than this on drain.
	QueueTTL time.Duration
	// HeartbeatInterval paces the liveness message to the peer.
	HeartbeatInterval time.Duration
	// CompletedHold is how long StateCompleted stays visible.
	CompletedHold time.Duration
}

// DefaultConfig returns the coordinator defaults.
func DefaultConfig() Config {
	return Config{
		DedupWindow:       time.Second,
		QueueTTL:          5 * time.Minute,
		HeartbeatInterval: 30 * time.Second,
		CompletedHold:     500 * time.Millisecond,
	}
}

// Stats counts coordinator activity since startup.
type Stats struct {
	Sent         int // envelopes confirmed delivered
	Queued       int // operations deferred for later replay
	Deduped      int // operations absorbed by the dedup rule
	Replayed     int // queued operations re-sent after reconnect
	DroppedStale int // queued operations dropped past the TTL
	Received     int // inbound messages applied
}

// Coordinator orchestrates synchronization between the two peers. All of its
// state is guarded by one mutex, so no two sync calls or drain operations
// interleave their mutations; transport callbacks re-enter through the same
// lock. Network I/O itself happens on the transport's workers and never
// blocks a sync call.
type Coordinator struct {
	adapter    *transport.Adapter
	store      storage.StateStore
	dispatcher *events.Dispatcher
	cfg        Config
	logger     *slog.Logger

	mu        sync.Mutex
	state     State
	queue     *offlineQueue
	stats     Stats
	seenIDs   map[string]struct{}
	idleTimer *time.Timer
	heartbeat *cron.Cron
	started   bool
	closed    bool
}

// NewCoordinator wires a coordinator onto its collaborators and registers the
// inbound message handlers. Call Start to activate the transport and the
// heartbeat.
func NewCoordinator(adapter *transport.Adapter, store storage.StateStore, dispatcher *events.Dispatcher, cfg Config, logger *slog.Logger) *Coordinator {
	c := &Coordinator{
		adapter:    adapter,
		store:      store,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
		state:      StateIdle,
		queue:      newOfflineQueue(cfg.DedupWindow, cfg.QueueTTL),
	}

	c.registerHandlers()

	adapter.OnStateChange(func(s transport.State) {
		if s == transport.StateConnected {
			c.logger.Info("peer reachable, draining pending operations")
			c.ProcessPendingOperations(context.Background())
		}
	})

	return c
}

// Start activates the transport session and the heartbeat. Idempotent.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return nil
	}
	c.started = true
	hb := cron.New()
	spec := fmt.Sprintf("@every %s", c.cfg.HeartbeatInterval)
	if _, err := hb.AddFunc(spec, func() { c.sendHeartbeat() }); err != nil {
		c.started = false
		c.mu.Unlock()
		return fmt.Errorf("failed to schedule heartbeat: %w", err)
	}
	c.heartbeat = hb
	c.mu.Unlock()

	if err := c.adapter.Activate(ctx); err != nil {
		// Not fatal: the adapter sits in its error state and the owner
		// (or OnForeground) re-activates later.
		c.logger.Warn("transport activation failed, will retry", "error", err)
	}

	hb.Start()
	return nil
}

// Close tears the coordinator down: handlers are removed, the heartbeat stops
// and the transport deactivates. In-flight sends complete or fail naturally.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	hb := c.heartbeat
	c.heartbeat = nil
	if c.idleTimer != nil {
		c.idleTimer.Stop()
		c.idleTimer = nil
	}
	c.mu.Unlock()

	if hb != nil {
		hb.Stop()
	}
	c.dispatcher.RemoveAllHandlers()
	c.adapter.Deactivate()
}

// State returns the visible sync state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ConnectionState returns the transport's visible connection state.
func (c *Coordinator) ConnectionState() transport.State {
	return c.adapter.State()
}

// Stats returns a copy of the activity counters.
func (c *Coordinator) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// PendingOperationCount returns the offline queue length.
func (c *Coordinator) PendingOperationCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.len()
}

// OnForeground is the host-process lifecycle hook for returning to the
// foreground: it re-activates the transport and reconciles.
func (c *Coordinator) OnForeground(ctx context.Context) {
	if err := c.adapter.Activate(ctx); err != nil {
		c.logger.Warn("transport re-activation failed", "error", err)
	}
	c.ProcessPendingOperations(ctx)
}

// OnBackground is the host-process lifecycle hook for leaving the
// foreground: the current session snapshot is pushed into the application
// context so the peer wakes with fresh state.
func (c *Coordinator) OnBackground(ctx context.Context) {
	snap, err := c.store.GetWorkoutSession(ctx)
	if err != nil {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		c.logger.Error("failed to encode session for application context", "error", err)
		return
	}
	env := models.NewEnvelope(models.MessageSessionUpdate, payload)
	if err := c.adapter.UpdateApplicationContext(env); err != nil {
		c.logger.Warn("failed to update application context", "error", err)
	}
}

// SyncWorkoutSession propagates the session channel snapshot. Like every
// sync call it never fails from the caller's point of view: unreachable or
// failing transports defer the operation to the offline queue, and local
// state is updated optimistically either way.
func (c *Coordinator) SyncWorkoutSession(ctx context.Context, snap *models.WorkoutSessionSnapshot) {
	kind := models.EventWorkoutStarted
	switch {
	case snap.Cancelled:
		kind = models.EventWorkoutCancelled
	case snap.Completed:
		kind = models.EventWorkoutCompleted
	}

	c.dispatch(ctx, models.MessageSessionUpdate, kind, snap, func(ctx context.Context) error {
		if snap.Completed || snap.Cancelled {
			return c.clearSessionState(ctx)
		}
		return c.store.StoreWorkoutSession(ctx, snap)
	})
}

// SyncTimerState propagates the timer channel snapshot.
func (c *Coordinator) SyncTimerState(ctx context.Context, snap *models.TimerSnapshot) {
	kind := models.EventTimerStopped
	msg := models.MessageTimerStopped
	if snap.Running {
		kind = models.EventTimerStarted
		msg = models.MessageTimerStarted
	}

	c.dispatch(ctx, msg, kind, snap, func(ctx context.Context) error {
		return c.store.StoreTimerState(ctx, snap)
	})
}

// SyncWorkoutProgress propagates the progress channel snapshot, which also
// carries the current exercise.
func (c *Coordinator) SyncWorkoutProgress(ctx context.Context, snap *models.WorkoutProgressSnapshot) {
	c.dispatch(ctx, models.MessageExerciseUpdate, models.EventProgressUpdated, snap, func(ctx context.Context) error {
		return c.store.StoreWorkoutProgress(ctx, snap)
	})
}

// SyncSetCompletion propagates a completed set. The record lands in the
// durable pending list first and is only removed once the peer acknowledges
// it, so the fact survives process restarts.
func (c *Coordinator) SyncSetCompletion(ctx context.Context, rec models.PendingSetCompletion) {
	if err := c.store.AddPendingSetCompletion(ctx, rec); err != nil {
		c.logger.Error("failed to persist set completion", "id", rec.ID, "error", err)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		c.logger.Error("failed to encode set completion", "id", rec.ID, "error", err)
		return
	}
	env := models.NewEnvelope(models.MessageSetCompleted, payload)
	event := models.NewSyncEvent(models.EventSetCompleted, models.SourcePrimary)

	// Deferred completions never join the in-memory queue: the durable
	// list written above is their replay queue, drained on reconnect.
	if !c.adapter.Reachable() {
		c.recordDeferred()
		c.logger.Debug("set completion deferred", "id", rec.ID)
		return
	}

	c.setState(StateSyncing)
	c.adapter.Send(env,
		func(models.Ack) {
			if err := c.store.RemovePendingSetCompletion(context.Background(), rec.ID); err != nil {
				c.logger.Warn("failed to clear acknowledged set completion", "id", rec.ID, "error", err)
			}
			c.confirmDelivery(event)
		},
		func(err error) {
			c.logger.Info("set completion deferred", "id", rec.ID, "error", err)
			c.recordDeferred()
			c.setState(StateIdle)
		})
}

// RequestFullSync asks the peer to re-send its current channel snapshots.
func (c *Coordinator) RequestFullSync(ctx context.Context) {
	env := models.NewEnvelope(models.MessageSyncRequest, nil)
	event := models.NewSyncEvent(models.EventFullSyncRequested, models.SourcePrimary)

	if !c.adapter.Reachable() {
		c.HandleOfflineOperation(models.PendingOperation{
			Event:       event,
			MessageKind: env.Type,
			EnqueuedAt:  time.Now(),
		})
		return
	}

	c.setState(StateSyncing)
	c.adapter.Send(env,
		func(models.Ack) { c.confirmDelivery(event) },
		func(err error) {
			c.logger.Info("full sync request deferred", "error", err)
			c.deferOperation(event, env.Type, nil)
		})
}

// HandleOfflineOperation enqueues a deferred sync intent, applying the dedup
// rule: a new event whose (type, source) matches an existing pending entry
// within the dedup window is absorbed, keeping the later of the two.
func (c *Coordinator) HandleOfflineOperation(op models.PendingOperation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.queue.enqueue(op) {
		c.stats.Queued++
		c.logger.Debug("operation queued", "kind", op.Event.Type, "pending", c.queue.len())
		return
	}
	c.stats.Deduped++
	c.logger.Debug("duplicate operation absorbed", "kind", op.Event.Type)
}

// ProcessPendingOperations drains the offline queue with conflict resolution
// (last-writer-wins per ephemeral channel group, full chronological replay
// for everything else) and then re-sends any set completions still awaiting
// acknowledgment in the shared store. Invoked on reconnect and on heartbeat
// receipt.
func (c *Coordinator) ProcessPendingOperations(ctx context.Context) {
	c.mu.Lock()
	replay, dropped := c.queue.drain(time.Now())
	c.stats.DroppedStale += dropped
	c.mu.Unlock()

	if dropped > 0 {
		c.logger.Info("dropped stale pending operations", "count", dropped)
	}

	for _, op := range replay {
		op := op
		env := models.Envelope{
			Type:      op.MessageKind,
			Payload:   op.Payload,
			Timestamp: op.Event.Timestamp.UnixMilli(),
		}
		c.adapter.Send(env,
			func(models.Ack) {
				c.mu.Lock()
				c.stats.Replayed++
				c.mu.Unlock()
				c.dispatcher.Notify(op.Event)
			},
			func(err error) {
				c.logger.Info("replay deferred", "kind", op.Event.Type, "error", err)
				c.HandleOfflineOperation(op)
			})
	}

	c.drainPendingCompletions(ctx)
}

// drainPendingCompletions re-sends the durable not-yet-acknowledged set
// completions. These are independent of the in-memory queue so they survive
// process restarts; each is removed only on confirmed delivery.
func (c *Coordinator) drainPendingCompletions(ctx context.Context) {
	recs, err := c.store.GetPendingSetCompletions(ctx)
	if err != nil {
		c.logger.Error("failed to load pending set completions", "error", err)
		return
	}

	for _, rec := range recs {
		rec := rec
		payload, err := json.Marshal(rec)
		if err != nil {
			c.logger.Error("failed to encode set completion", "id", rec.ID, "error", err)
			continue
		}
		env := models.Envelope{
			Type:      models.MessageSetCompleted,
			Payload:   payload,
			Timestamp: rec.Timestamp.UnixMilli(),
		}
		c.adapter.Send(env,
			func(models.Ack) {
				if err := c.store.RemovePendingSetCompletion(context.Background(), rec.ID); err != nil {
					c.logger.Warn("failed to clear acknowledged set completion", "id", rec.ID, "error", err)
				}
				c.mu.Lock()
				c.stats.Replayed++
				c.mu.Unlock()
			},
			func(err error) {
				// Still in the store; the next drain picks it up.
				c.logger.Info("set completion still pending", "id", rec.ID, "error", err)
			})
	}
}

// dispatch is the shared path for snapshot channels: build the envelope,
// apply the value locally first so the caller never waits on the network,
// then either send or defer.
func (c *Coordinator) dispatch(ctx context.Context, msg models.MessageKind, kind models.EventKind, snap any, apply func(context.Context) error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		c.logger.Error("failed to encode snapshot", "kind", msg, "error", err)
		return
	}

	if err := apply(ctx); err != nil {
		c.logger.Error("failed to apply local state", "kind", msg, "error", err)
	}

	env := models.NewEnvelope(msg, payload)
	event := models.NewSyncEvent(kind, models.SourcePrimary)

	if !c.adapter.Reachable() {
		c.HandleOfflineOperation(models.PendingOperation{
			Event:       event,
			MessageKind: msg,
			Payload:     payload,
			EnqueuedAt:  time.Now(),
		})
		return
	}

	c.setState(StateSyncing)
	c.adapter.Send(env,
		func(models.Ack) { c.confirmDelivery(event) },
		func(err error) {
			c.logger.Info("sync deferred", "kind", msg, "error", err)
			c.deferOperation(event, msg, payload)
		})
}

// confirmDelivery runs on a successful send acknowledgment: the event fans
// out to consumers and the visible state passes through completed.
func (c *Coordinator) confirmDelivery(event models.SyncEvent) {
	c.mu.Lock()
	c.stats.Sent++
	c.mu.Unlock()

	c.dispatcher.Notify(event)
	c.setState(StateCompleted)
	c.scheduleIdle()
}

// deferOperation runs on a failed send: the operation joins the offline
// queue and the visible state returns to idle.
func (c *Coordinator) deferOperation(event models.SyncEvent, msg models.MessageKind, payload []byte) {
	c.HandleOfflineOperation(models.PendingOperation{
		Event:       event,
		MessageKind: msg,
		Payload:     payload,
		EnqueuedAt:  time.Now(),
	})
	c.setState(StateIdle)
}

func (c *Coordinator) recordDeferred() {
	c.mu.Lock()
	c.stats.Queued++
	c.mu.Unlock()
}

func (c *Coordinator) clearSessionState(ctx context.Context) error {
	if err := c.store.ClearWorkoutSession(ctx); err != nil {
		return err
	}
	if err := c.store.ClearTimerState(ctx); err != nil {
		return err
	}
	return c.store.ClearWorkoutProgress(ctx)
}

func (c *Coordinator) sendHeartbeat() {
	if !c.adapter.Reachable() {
		return
	}
	env := models.NewEnvelope(models.MessageHeartbeat, nil)
	c.adapter.Send(env, nil, func(err error) {
		c.logger.Debug("heartbeat undelivered", "error", err)
	})
}

func (c *Coordinator) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

// scheduleIdle holds StateCompleted briefly for UI feedback, then settles
// back to idle unless another sync started in the meantime.
func (c *Coordinator) scheduleIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idleTimer != nil {
		c.idleTimer.Stop()
	}
	c.idleTimer = time.AfterFunc(c.cfg.CompletedHold, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state == StateCompleted {
			c.state = StateIdle
		}
	})
}
