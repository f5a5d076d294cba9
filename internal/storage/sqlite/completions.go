package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/liftlink/watchsync/internal/models"
	"github.com/liftlink/watchsync/internal/storage"
)

// AddPendingSetCompletion appends a completion record. INSERT OR IGNORE keeps
// the operation idempotent: re-adding an existing ID changes nothing.
func (s *Store) AddPendingSetCompletion(ctx context.Context, rec models.PendingSetCompletion) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT OR IGNORE INTO pending_set_completions (
			id, set_id, session_exercise_id, reps, weight, timestamp
		) VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.SetID,
		rec.SessionExerciseID,
		rec.Reps,
		rec.Weight,
		rec.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save set completion: %w", err)
	}

	return s.touchLastSync(ctx, time.Now().UnixMilli())
}

// RemovePendingSetCompletion drops the record with the given ID.
func (s *Store) RemovePendingSetCompletion(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM pending_set_completions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete set completion: %w", err)
	}

	return s.touchLastSync(ctx, time.Now().UnixMilli())
}

// GetPendingSetCompletions returns the current list ordered by timestamp.
func (s *Store) GetPendingSetCompletions(ctx context.Context) ([]models.PendingSetCompletion, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `
		SELECT id, set_id, session_exercise_id, reps, weight, timestamp
		FROM pending_set_completions
		ORDER BY timestamp ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query set completions: %w", err)
	}
	defer rows.Close()

	var recs []models.PendingSetCompletion
	for rows.Next() {
		var rec models.PendingSetCompletion
		var millis int64
		if err := rows.Scan(&rec.ID, &rec.SetID, &rec.SessionExerciseID,
			&rec.Reps, &rec.Weight, &millis); err != nil {
			return nil, fmt.Errorf("failed to scan set completion: %w", err)
		}
		rec.Timestamp = time.UnixMilli(millis)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate set completions: %w", err)
	}

	return recs, nil
}
