package models

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot types carry the entire current value of a channel, never a delta.
// Every sync overwrites the previous snapshot wholesale, which is what makes
// last-writer-wins safe: there is nothing to merge field-by-field.

// WorkoutSessionSnapshot is the session channel value.
type WorkoutSessionSnapshot struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	StartedAt            time.Time `json:"started_at"`
	CurrentExerciseIndex int       `json:"current_exercise_index"`
	ExerciseCount        int       `json:"exercise_count"`
	Completed            bool      `json:"completed"`
	Cancelled            bool      `json:"cancelled"`
}

// TimerSnapshot is the rest-timer channel value.
type TimerSnapshot struct {
	Running   bool          `json:"running"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Remaining time.Duration `json:"remaining"`
}

// WorkoutProgressSnapshot is the progress channel value, and also carries the
// current exercise so the exercise-update channel rides on the same snapshot.
type WorkoutProgressSnapshot struct {
	SessionID            string `json:"session_id"`
	CompletedSets        int    `json:"completed_sets"`
	TotalSets            int    `json:"total_sets"`
	CurrentExerciseIndex int    `json:"current_exercise_index"`
	CurrentExerciseName  string `json:"current_exercise_name"`
}

// PendingSetCompletion records a set that was actually performed. Unlike
// snapshots these are additive facts and must never be silently dropped;
// deduplication is by ID only, with no time window.
type PendingSetCompletion struct {
	ID                string    `json:"id"`
	SetID             string    `json:"set_id"`
	SessionExerciseID string    `json:"session_exercise_id"`
	Reps              int       `json:"reps"`
	Weight            float64   `json:"weight"`
	Timestamp         time.Time `json:"timestamp"`
}

// NewPendingSetCompletion builds a completion record with a fresh unique ID.
func NewPendingSetCompletion(setID, sessionExerciseID string, reps int, weight float64) PendingSetCompletion {
	return PendingSetCompletion{
		ID:                uuid.New().String(),
		SetID:             setID,
		SessionExerciseID: sessionExerciseID,
		Reps:              reps,
		Weight:            weight,
		Timestamp:         time.Now(),
	}
}
