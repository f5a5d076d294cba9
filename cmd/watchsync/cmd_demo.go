package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/liftlink/watchsync/internal/config"
	"github.com/liftlink/watchsync/internal/events"
	"github.com/liftlink/watchsync/internal/models"
	"github.com/liftlink/watchsync/internal/storage"
	"github.com/liftlink/watchsync/internal/storage/boltdb"
	"github.com/liftlink/watchsync/internal/storage/sqlite"
	syncer "github.com/liftlink/watchsync/internal/sync"
	"github.com/liftlink/watchsync/internal/transport"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run two in-process peers through a disconnect/reconnect workout",
	Long: `demo wires a phone and a watch peer over an in-memory loopback link and
replays a workout with a connectivity outage in the middle, printing the
sync events each side observes and the final converged state.`,
	RunE: runDemo,
}

// peer bundles one side of the demo pair.
type peer struct {
	name        string
	store       storage.StateStore
	coordinator *syncer.Coordinator
	session     *transport.LoopbackSession
	events      chan models.SyncEvent
}

func newPeer(ctx context.Context, cfg *config.Config, name, dir string, session *transport.LoopbackSession) (*peer, error) {
	logger := slog.Default().With("peer", name)

	var store storage.StateStore
	var err error
	switch cfg.Store.Driver {
	case "boltdb":
		store, err = boltdb.New(ctx, filepath.Join(dir, name+".db"))
	default:
		store, err = sqlite.New(ctx, filepath.Join(dir, name+".db"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", name, err)
	}

	adapter := transport.NewAdapter(session, transport.Config{
		BufferTTL:         cfg.Transport.BufferTTL.Std(),
		SweepInterval:     cfg.Transport.SweepInterval.Std(),
		ActivationRetries: cfg.Transport.ActivationRetries,
	}, logger)

	dispatcher := events.NewDispatcher()
	coord := syncer.NewCoordinator(adapter, store, dispatcher, syncer.Config{
		DedupWindow:       cfg.Sync.DedupWindow.Std(),
		QueueTTL:          cfg.Sync.QueueTTL.Std(),
		HeartbeatInterval: cfg.Sync.HeartbeatInterval.Std(),
		CompletedHold:     cfg.Sync.CompletedHold.Std(),
	}, logger)

	p := &peer{
		name:        name,
		store:       store,
		coordinator: coord,
		session:     session,
		events:      make(chan models.SyncEvent, 64),
	}
	dispatcher.AddHandler(func(e models.SyncEvent) {
		select {
		case p.events <- e:
		default:
		}
	})

	if err := coord.Start(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to start %s coordinator: %w", name, err)
	}

	return p, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	dir, err := os.MkdirTemp("", "watchsync-demo-")
	if err != nil {
		return fmt.Errorf("failed to create demo dir: %w", err)
	}
	defer os.RemoveAll(dir)

	phoneSession, watchSession := transport.NewLoopbackPair()

	phone, err := newPeer(ctx, cfg, "phone", dir, phoneSession)
	if err != nil {
		return err
	}
	defer phone.coordinator.Close()
	defer phone.store.Close()

	watch, err := newPeer(ctx, cfg, "watch", dir, watchSession)
	if err != nil {
		return err
	}
	defer watch.coordinator.Close()
	defer watch.store.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	for _, p := range []*peer{phone, watch} {
		p := p
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case e := <-p.events:
					fmt.Printf("[%s] %-18s from=%s\n", p.name, e.Type, e.Source)
				}
			}
		})
	}

	g.Go(func() error {
		defer cancel()
		return runScenario(gctx, phone, watch)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	printFinalState(ctx, phone)
	printFinalState(ctx, watch)
	return nil
}

// runScenario drives the phone through a workout with an outage in the
// middle; the watch side only reacts.
func runScenario(ctx context.Context, phone, watch *peer) error {
	settle := func() { time.Sleep(200 * time.Millisecond) }

	fmt.Println("--- starting workout while the watch is out of range")
	phone.coordinator.SyncWorkoutSession(ctx, &models.WorkoutSessionSnapshot{
		ID:            "push-day-1",
		Title:         "Push Day",
		StartedAt:     time.Now(),
		ExerciseCount: 3,
	})
	phone.coordinator.SyncSetCompletion(ctx, models.NewPendingSetCompletion("set-1", "bench-press", 8, 80))
	fmt.Printf("pending operations on phone: %d\n", phone.coordinator.PendingOperationCount())

	fmt.Println("--- watch comes into range")
	phone.session.SetLinkUp(true)
	settle()

	phone.coordinator.SyncSetCompletion(ctx, models.NewPendingSetCompletion("set-2", "bench-press", 8, 80))
	phone.coordinator.SyncWorkoutProgress(ctx, &models.WorkoutProgressSnapshot{
		SessionID:           "push-day-1",
		CompletedSets:       2,
		TotalSets:           9,
		CurrentExerciseName: "Bench Press",
	})
	settle()

	fmt.Println("--- connectivity drops mid-workout")
	phone.session.SetLinkUp(false)
	phone.coordinator.SyncSetCompletion(ctx, models.NewPendingSetCompletion("set-3", "overhead-press", 10, 40))
	phone.coordinator.SyncTimerState(ctx, &models.TimerSnapshot{
		Running: true, StartedAt: time.Now(), Duration: 90 * time.Second,
	})
	phone.coordinator.SyncTimerState(ctx, &models.TimerSnapshot{Running: false})

	fmt.Println("--- connectivity returns, queue drains")
	phone.session.SetLinkUp(true)
	settle()

	fmt.Println("--- workout completes")
	phone.coordinator.SyncWorkoutSession(ctx, &models.WorkoutSessionSnapshot{
		ID: "push-day-1", Title: "Push Day", Completed: true,
	})
	settle()

	stats := phone.coordinator.Stats()
	fmt.Printf("phone stats: sent=%d queued=%d deduped=%d replayed=%d\n",
		stats.Sent, stats.Queued, stats.Deduped, stats.Replayed)
	return nil
}

func printFinalState(ctx context.Context, p *peer) {
	last, _ := p.store.GetLastSyncTimestamp(ctx)
	pending, _ := p.store.GetPendingSetCompletions(ctx)
	fmt.Printf("[%s] last sync %s, %d unacknowledged completions\n",
		p.name, last.Format(time.RFC3339), len(pending))
}
