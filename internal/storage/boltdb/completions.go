package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/liftlink/watchsync/internal/models"
	"github.com/liftlink/watchsync/internal/storage"
)

// AddPendingSetCompletion appends a completion record, keyed by its ID.
// Re-adding an existing ID overwrites the same key, so the stored list is
// identical to adding it once.
func (s *Store) AddPendingSetCompletion(ctx context.Context, rec models.PendingSetCompletion) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal set completion: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketCompletions).Put([]byte(rec.ID), data); err != nil {
			return fmt.Errorf("failed to save set completion: %w", err)
		}
		return touchLastSync(tx)
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// RemovePendingSetCompletion drops the record with the given ID.
func (s *Store) RemovePendingSetCompletion(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketCompletions).Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete set completion: %w", err)
		}
		return touchLastSync(tx)
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetPendingSetCompletions returns the current list ordered by timestamp.
func (s *Store) GetPendingSetCompletions(ctx context.Context) ([]models.PendingSetCompletion, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var recs []models.PendingSetCompletion

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCompletions).ForEach(func(k, v []byte) error {
			var rec models.PendingSetCompletion
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("%w: completion %q: %v", storage.ErrDecodeFailed, k, err)
			}
			recs = append(recs, rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get set completions: %w", err)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp.Before(recs[j].Timestamp)
	})

	return recs, nil
}
