package models

import "time"

// DeviceSource identifies which side of the pair produced an event.
type DeviceSource string

const (
	SourcePrimary DeviceSource = "primary"
	SourcePeer    DeviceSource = "peer"
)

// EventKind classifies synchronization events fanned out to consumers. It is
// coarser than MessageKind: a workout started locally and one started remotely
// are both EventWorkoutStarted, distinguished by the event's Source.
type EventKind string

const (
	EventWorkoutStarted    EventKind = "workoutStarted"
	EventWorkoutCompleted  EventKind = "workoutCompleted"
	EventWorkoutCancelled  EventKind = "workoutCancelled"
	EventSetCompleted      EventKind = "setCompleted"
	EventTimerStarted      EventKind = "timerStarted"
	EventTimerStopped      EventKind = "timerStopped"
	EventExerciseUpdated   EventKind = "exerciseUpdated"
	EventProgressUpdated   EventKind = "progressUpdated"
	EventFullSyncRequested EventKind = "fullSyncRequested"
	EventHeartbeatReceived EventKind = "heartbeatReceived"
)

// SyncEvent is produced after a successful send or a decoded inbound message
// and consumed by the event dispatcher. It is immutable once created.
type SyncEvent struct {
	Type      EventKind    `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Source    DeviceSource `json:"source"`
}

// NewSyncEvent builds an event stamped with the current time.
func NewSyncEvent(kind EventKind, source DeviceSource) SyncEvent {
	return SyncEvent{Type: kind, Timestamp: time.Now(), Source: source}
}

// PendingOperation is a queued sync intent awaiting transmission, ordered by
// enqueue time. It carries the wire kind and encoded payload so the original
// send can be replayed verbatim once the peer is reachable again.
type PendingOperation struct {
	Event       SyncEvent   `json:"event"`
	MessageKind MessageKind `json:"message_kind"`
	Payload     []byte      `json:"payload,omitempty"`
	EnqueuedAt  time.Time   `json:"enqueued_at"`
}

// Matches reports whether two operations are duplicates under the offline
// dedup rule: same event kind and device source, timestamps within the window.
func (op PendingOperation) Matches(other PendingOperation, window time.Duration) bool {
	if op.Event.Type != other.Event.Type || op.Event.Source != other.Event.Source {
		return false
	}
	delta := op.Event.Timestamp.Sub(other.Event.Timestamp)
	if delta < 0 {
		delta = -delta
	}
	return delta <= window
}

// Stale reports whether the operation has outlived the queue TTL.
func (op PendingOperation) Stale(now time.Time, ttl time.Duration) bool {
	return now.Sub(op.EnqueuedAt) > ttl
}
