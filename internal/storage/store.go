// Package storage defines the shared state store both peers read on cold
// start to resume a workout session without re-establishing a connection. It
// holds the latest known snapshot per logical channel plus the durable list of
// not-yet-acknowledged set completions.
package storage

import (
	"context"
	"time"

	"github.com/liftlink/watchsync/internal/models"
)

// Well-known channel keys.
const (
	KeyWorkoutSession  = "current_workout_session"
	KeyTimerState      = "timer_state"
	KeyWorkoutProgress = "workout_progress"
)

//go:generate moq -out store_mock.go . StateStore

// StateStore is the durable small-value key store shared between the sync
// coordinator and inbound message handling. Implementations own the lock
// around the underlying key store: every method is safe for concurrent call
// from the network-callback context and the coordinator's serialization
// context. Every mutating call also advances the last-sync timestamp.
type StateStore interface {
	// StoreValue serializes v under key, replacing any previous value.
	StoreValue(ctx context.Context, key string, v any) error

	// RetrieveValue decodes the value under key into out.
	// Returns ErrNotFound if the key is absent and ErrDecodeFailed if the
	// stored bytes cannot be decoded into out.
	RetrieveValue(ctx context.Context, key string, out any) error

	// DeleteValue removes the value under key. Absent keys are not an error.
	DeleteValue(ctx context.Context, key string) error

	// Per-channel convenience wrappers over StoreValue/RetrieveValue.

	StoreWorkoutSession(ctx context.Context, snap *models.WorkoutSessionSnapshot) error
	GetWorkoutSession(ctx context.Context) (*models.WorkoutSessionSnapshot, error)
	ClearWorkoutSession(ctx context.Context) error

	StoreTimerState(ctx context.Context, snap *models.TimerSnapshot) error
	GetTimerState(ctx context.Context) (*models.TimerSnapshot, error)
	ClearTimerState(ctx context.Context) error

	StoreWorkoutProgress(ctx context.Context, snap *models.WorkoutProgressSnapshot) error
	GetWorkoutProgress(ctx context.Context) (*models.WorkoutProgressSnapshot, error)
	ClearWorkoutProgress(ctx context.Context) error

	// AddPendingSetCompletion appends a completion record. Adding the same
	// ID twice leaves the stored list unchanged relative to adding it once.
	AddPendingSetCompletion(ctx context.Context, rec models.PendingSetCompletion) error

	// RemovePendingSetCompletion drops the record with the given ID.
	// Unknown IDs are not an error.
	RemovePendingSetCompletion(ctx context.Context, id string) error

	// GetPendingSetCompletions returns the current list ordered by timestamp.
	GetPendingSetCompletions(ctx context.Context) ([]models.PendingSetCompletion, error)

	// GetLastSyncTimestamp returns the time of the last mutating call, or
	// the zero time if the store has never been written.
	GetLastSyncTimestamp(ctx context.Context) (time.Time, error)

	// Close releases the underlying store.
	Close() error
}
