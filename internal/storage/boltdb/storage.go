// Package boltdb provides the BoltDB implementation of the shared state
// store. Values are JSON documents in buckets; the store file lives in a
// location both peer processes can reach.
package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/liftlink/watchsync/internal/storage"
)

var (
	// BoltDB bucket names
	bucketState       = []byte("state")
	bucketCompletions = []byte("pending_set_completions")
	bucketMetadata    = []byte("metadata")
)

const keyLastSyncTimestamp = "last_sync_timestamp"

// Store is the BoltDB-backed shared state store.
type Store struct {
	db *bbolt.DB
}

// New opens (creating if necessary) the store at dbPath.
func New(ctx context.Context, dbPath string) (*Store, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Store{db: db}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketState, bucketCompletions, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// StoreValue serializes v under key, replacing any previous value.
func (s *Store) StoreValue(ctx context.Context, key string, v any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketState).Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save value: %w", err)
		}
		return touchLastSync(tx)
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// RetrieveValue decodes the value under key into out.
func (s *Store) RetrieveValue(ctx context.Context, key string, out any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketState).Get([]byte(key))
		if data == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: key %q: %v", storage.ErrDecodeFailed, key, err)
		}
		return nil
	})
}

// DeleteValue removes the value under key.
func (s *Store) DeleteValue(ctx context.Context, key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketState).Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete value: %w", err)
		}
		return touchLastSync(tx)
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetLastSyncTimestamp returns the time of the last mutating call.
func (s *Store) GetLastSyncTimestamp(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var ts time.Time
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get([]byte(keyLastSyncTimestamp))
		if data == nil {
			return nil
		}
		ts = time.UnixMilli(int64(binary.BigEndian.Uint64(data)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return ts, nil
}

// touchLastSync records the current time inside an open write transaction so
// every mutation advances the last-sync timestamp atomically.
func touchLastSync(tx *bbolt.Tx) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(time.Now().UnixMilli()))
	if err := tx.Bucket(bucketMetadata).Put([]byte(keyLastSyncTimestamp), buf); err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}
	return nil
}
