package sync

import (
	"sort"
	"time"

	"github.com/liftlink/watchsync/internal/models"
)

// replayGroup maps an event kind to its conflict-resolution group. Kinds in
// the same group describe the same ephemeral channel, so only the most recent
// queued operation survives a drain. Kinds outside any group (set completions
// above all) are replayed in full.
func replayGroup(k models.EventKind) (string, bool) {
	switch k {
	case models.EventWorkoutStarted, models.EventWorkoutCompleted, models.EventWorkoutCancelled:
		return "session", true
	case models.EventTimerStarted, models.EventTimerStopped:
		return "timer", true
	}
	return "", false
}

// offlineQueue holds sync intents deferred because the peer was unreachable.
// Not safe for concurrent use; the coordinator serializes access.
type offlineQueue struct {
	ops    []models.PendingOperation
	window time.Duration
	ttl    time.Duration
}

func newOfflineQueue(window, ttl time.Duration) *offlineQueue {
	return &offlineQueue{window: window, ttl: ttl}
}

func (q *offlineQueue) len() int { return len(q.ops) }

// enqueue applies the dedup rule at insert time: if an existing entry has the
// same (type, source) and a timestamp within the window, the later of the two
// survives. Returns false when the new operation was absorbed as a duplicate.
func (q *offlineQueue) enqueue(op models.PendingOperation) bool {
	for i, existing := range q.ops {
		if !existing.Matches(op, q.window) {
			continue
		}
		if op.Event.Timestamp.After(existing.Event.Timestamp) {
			q.ops[i] = op
		}
		return false
	}
	q.ops = append(q.ops, op)
	return true
}

// prune drops operations older than the queue TTL and returns how many went.
func (q *offlineQueue) prune(now time.Time) int {
	kept := q.ops[:0]
	dropped := 0
	for _, op := range q.ops {
		if op.Stale(now, q.ttl) {
			dropped++
			continue
		}
		kept = append(kept, op)
	}
	q.ops = kept
	return dropped
}

// drain empties the queue and returns the operations to replay, in
// chronological order. Grouped kinds collapse to the most recent operation
// per group (last-writer-wins); everything else replays in full. Stale
// operations are pruned first; the second return value is how many were
// dropped.
func (q *offlineQueue) drain(now time.Time) ([]models.PendingOperation, int) {
	dropped := q.prune(now)
	if len(q.ops) == 0 {
		return nil, dropped
	}

	winners := make(map[string]models.PendingOperation)
	var replay []models.PendingOperation

	for _, op := range q.ops {
		group, collapsible := replayGroup(op.Event.Type)
		if !collapsible {
			replay = append(replay, op)
			continue
		}
		if best, ok := winners[group]; !ok || op.Event.Timestamp.After(best.Event.Timestamp) {
			winners[group] = op
		}
	}
	for _, op := range winners {
		replay = append(replay, op)
	}

	// Stable so operations sharing a timestamp keep their enqueue order.
	sort.SliceStable(replay, func(i, j int) bool {
		return replay[i].Event.Timestamp.Before(replay[j].Event.Timestamp)
	})

	q.ops = nil
	return replay, dropped
}
