package boltdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/liftlink/watchsync/internal/models"
	"github.com/liftlink/watchsync/internal/storage"
)

// StoreWorkoutSession overwrites the session channel snapshot.
func (s *Store) StoreWorkoutSession(ctx context.Context, snap *models.WorkoutSessionSnapshot) error {
	return s.StoreValue(ctx, storage.KeyWorkoutSession, snap)
}

// GetWorkoutSession returns the session channel snapshot.
func (s *Store) GetWorkoutSession(ctx context.Context) (*models.WorkoutSessionSnapshot, error) {
	var snap models.WorkoutSessionSnapshot
	if err := s.RetrieveValue(ctx, storage.KeyWorkoutSession, &snap); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workout session: %w", err)
	}
	return &snap, nil
}

// ClearWorkoutSession removes the session channel snapshot.
func (s *Store) ClearWorkoutSession(ctx context.Context) error {
	return s.DeleteValue(ctx, storage.KeyWorkoutSession)
}

// StoreTimerState overwrites the timer channel snapshot.
func (s *Store) StoreTimerState(ctx context.Context, snap *models.TimerSnapshot) error {
	return s.StoreValue(ctx, storage.KeyTimerState, snap)
}

// GetTimerState returns the timer channel snapshot.
func (s *Store) GetTimerState(ctx context.Context) (*models.TimerSnapshot, error) {
	var snap models.TimerSnapshot
	if err := s.RetrieveValue(ctx, storage.KeyTimerState, &snap); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get timer state: %w", err)
	}
	return &snap, nil
}

// ClearTimerState removes the timer channel snapshot.
func (s *Store) ClearTimerState(ctx context.Context) error {
	return s.DeleteValue(ctx, storage.KeyTimerState)
}

// StoreWorkoutProgress overwrites the progress channel snapshot.
func (s *Store) StoreWorkoutProgress(ctx context.Context, snap *models.WorkoutProgressSnapshot) error {
	return s.StoreValue(ctx, storage.KeyWorkoutProgress, snap)
}

// GetWorkoutProgress returns the progress channel snapshot.
func (s *Store) GetWorkoutProgress(ctx context.Context) (*models.WorkoutProgressSnapshot, error) {
	var snap models.WorkoutProgressSnapshot
	if err := s.RetrieveValue(ctx, storage.KeyWorkoutProgress, &snap); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workout progress: %w", err)
	}
	return &snap, nil
}

// ClearWorkoutProgress removes the progress channel snapshot.
func (s *Store) ClearWorkoutProgress(ctx context.Context) error {
	return s.DeleteValue(ctx, storage.KeyWorkoutProgress)
}
