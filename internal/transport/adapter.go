package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/liftlink/watchsync/internal/models"
)

// Handler processes a decoded inbound message of one kind.
type Handler func(kind models.MessageKind, payload []byte, sentAt time.Time)

// Config holds the adapter tunables.
type Config struct {
	// BufferTTL caps how long an unsent frame survives reachability flaps.
	BufferTTL time.Duration
	// SweepInterval is how often the stale-buffer sweep runs.
	SweepInterval time.Duration
	// ActivationRetries bounds the backoff attempts per Activate call.
	ActivationRetries uint64
}

// DefaultConfig returns the adapter defaults.
func DefaultConfig() Config {
	return Config{
		BufferTTL:         5 * time.Minute,
		SweepInterval:     time.Minute,
		ActivationRetries: 4,
	}
}

type bufferedFrame struct {
	data       []byte
	reply      func(models.Ack)
	fail       func(error)
	enqueuedAt time.Time
}

// Adapter drives a Session: it owns the connection state machine, a
// short-term outbound buffer that survives brief reachability flaps, and the
// dispatch table for inbound messages. The buffer is distinct from the sync
// coordinator's offline queue; frames here have already been handed to the
// transport and are dropped once they outlive the buffer TTL.
type Adapter struct {
	session Session
	cfg     Config
	logger  *slog.Logger

	mu        sync.Mutex
	state     State
	lastErr   error
	buffer    []bufferedFrame
	handlers  map[models.MessageKind]Handler
	onChange  func(State)
	sweepStop chan struct{}
}

// NewAdapter wires an adapter onto the given session.
func NewAdapter(session Session, cfg Config, logger *slog.Logger) *Adapter {
	a := &Adapter{
		session:  session,
		cfg:      cfg,
		logger:   logger,
		state:    StateDisconnected,
		handlers: make(map[models.MessageKind]Handler),
	}
	session.SetReceiver(a.receive)
	session.SetReachabilityHandler(a.handleReachability)
	return a
}

// RegisterHandler installs the handler for one message kind. Registering a
// kind twice replaces the previous handler.
func (a *Adapter) RegisterHandler(kind models.MessageKind, h Handler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers[kind] = h
}

// OnStateChange sets the callback observing connection state transitions.
func (a *Adapter) OnStateChange(fn func(State)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChange = fn
}

// State returns the current connection state.
func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// LastError returns the reason for the most recent activation failure.
func (a *Adapter) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Reachable reports whether the peer can currently receive messages.
func (a *Adapter) Reachable() bool {
	return a.session.Reachable()
}

// PeerInstalled reports whether the counterpart app is installed.
func (a *Adapter) PeerInstalled() bool {
	return a.session.PeerInstalled()
}

// BufferedCount returns the number of frames waiting in the outbound buffer.
func (a *Adapter) BufferedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buffer)
}

// Activate begins the session lifecycle. It is idempotent: calling it while
// connecting or connected is a no-op. Activation failures are retried with
// fibonacci backoff; if all attempts fail the adapter lands in StateError and
// the owner may call Activate again.
func (a *Adapter) Activate(ctx context.Context) error {
	a.mu.Lock()
	if a.state == StateConnecting || a.state == StateConnected {
		a.mu.Unlock()
		return nil
	}
	if !a.session.Supported() {
		a.mu.Unlock()
		return fmt.Errorf("session not supported on this platform")
	}
	notify := a.setStateLocked(StateConnecting)
	a.mu.Unlock()
	if notify != nil {
		notify()
	}

	backoff := retry.WithMaxRetries(a.cfg.ActivationRetries,
		retry.NewFibonacci(250*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := a.session.Activate(ctx); err != nil {
			a.logger.Warn("session activation attempt failed", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		a.mu.Lock()
		notify = a.setStateLocked(StateError)
		a.lastErr = err
		a.mu.Unlock()
		if notify != nil {
			notify()
		}
		return fmt.Errorf("failed to activate session: %w", err)
	}

	a.startSweeper()

	// The connected transition normally arrives through the reachability
	// callback; pick it up directly if the peer is already in range.
	if a.session.Reachable() {
		a.handleReachability(true)
	}

	return nil
}

// Deactivate tears the session down and stops the sweeper. Buffered frames
// are kept; they drain on the next reconnect unless they expire first.
func (a *Adapter) Deactivate() {
	a.mu.Lock()
	stop := a.sweepStop
	a.sweepStop = nil
	notify := a.setStateLocked(StateDisconnected)
	a.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	a.session.Deactivate()
	if notify != nil {
		notify()
	}
}

// Send transmits an envelope if the peer is reachable, invoking exactly one
// of the handlers asynchronously. If unreachable, the frame is buffered and
// neither handler fires until an actual transmission happens; the caller
// treats "buffered" the same as "not yet confirmed". Stale buffered frames
// are pruned on every send attempt.
//
// Reachability is read from the session directly rather than from the state
// machine, so a send goes out even when the reachability notification that
// would have moved the state to connected was missed.
func (a *Adapter) Send(env models.Envelope, reply func(models.Ack), fail func(error)) {
	data, err := models.EncodeEnvelope(env)
	if err != nil {
		a.logger.Error("dropping unencodable envelope", "kind", env.Type, "error", err)
		if fail != nil {
			fail(err)
		}
		return
	}

	a.mu.Lock()
	a.pruneLocked(time.Now())
	if !a.session.Reachable() {
		a.buffer = append(a.buffer, bufferedFrame{
			data:       data,
			reply:      reply,
			fail:       fail,
			enqueuedAt: time.Now(),
		})
		buffered := len(a.buffer)
		a.mu.Unlock()
		a.logger.Debug("peer unreachable, frame buffered", "kind", env.Type, "buffered", buffered)
		return
	}
	a.mu.Unlock()

	// Flush frames buffered during an unnoticed flap first, keeping the
	// peer's view in send order.
	a.drainBuffer()
	a.transmit(data, reply, fail)
}

// UpdateApplicationContext forwards the envelope as the application context
// the peer reads on wake. Best effort.
func (a *Adapter) UpdateApplicationContext(env models.Envelope) error {
	data, err := models.EncodeEnvelope(env)
	if err != nil {
		return fmt.Errorf("failed to encode application context: %w", err)
	}
	if err := a.session.UpdateApplicationContext(data); err != nil {
		return fmt.Errorf("failed to update application context: %w", err)
	}
	return nil
}

func (a *Adapter) transmit(data []byte, reply func(models.Ack), fail func(error)) {
	a.session.Send(data,
		func(raw []byte) {
			if reply == nil {
				return
			}
			var ack models.Ack
			if err := decodeAck(raw, &ack); err != nil {
				a.logger.Warn("failed to decode reply", "error", err)
				ack = models.Ack{}
			}
			reply(ack)
		},
		func(err error) {
			if fail != nil {
				fail(err)
			}
		})
}

// handleReachability is invoked by the session on reachability changes. On
// connected, the buffered-frame drain runs automatically.
func (a *Adapter) handleReachability(reachable bool) {
	next := StateDisconnected
	if reachable {
		next = StateConnected
	}

	a.mu.Lock()
	notify := a.setStateLocked(next)
	a.mu.Unlock()

	if reachable {
		a.drainBuffer()
	}
	if notify != nil {
		notify()
	}
}

func (a *Adapter) drainBuffer() {
	a.mu.Lock()
	a.pruneLocked(time.Now())
	frames := a.buffer
	a.buffer = nil
	a.mu.Unlock()

	if len(frames) == 0 {
		return
	}
	a.logger.Info("draining outbound buffer", "frames", len(frames))
	for _, f := range frames {
		a.transmit(f.data, f.reply, f.fail)
	}
}

// receive decodes an inbound frame, dispatches it through the handler table,
// and returns the reply frame. Malformed frames and unknown kinds are
// answered with an error payload and dropped; a bad payload will not become
// well-formed by retrying.
func (a *Adapter) receive(data []byte) []byte {
	// An inbound frame is proof the link is alive. Pick up a missed
	// reachability notification before dispatching, so the handler sees a
	// connected adapter and buffered frames drain.
	if a.State() != StateConnected && a.session.Reachable() {
		a.handleReachability(true)
	}

	env, err := models.DecodeEnvelope(data)
	if err != nil {
		a.logger.Warn("dropping undecodable frame", "error", err)
		return encodeAck(models.AckError(err.Error()))
	}

	a.mu.Lock()
	h, ok := a.handlers[env.Type]
	a.mu.Unlock()
	if !ok {
		a.logger.Warn("no handler for message kind", "kind", env.Type)
		return encodeAck(models.AckError(fmt.Sprintf("unsupported message kind %q", env.Type)))
	}

	h(env.Type, env.Payload, env.Time())
	return encodeAck(models.AckReceived(env.Type))
}

// pruneLocked drops buffered frames older than the buffer TTL. Callers hold
// the adapter lock.
func (a *Adapter) pruneLocked(now time.Time) {
	if len(a.buffer) == 0 {
		return
	}
	kept := a.buffer[:0]
	dropped := 0
	for _, f := range a.buffer {
		if now.Sub(f.enqueuedAt) > a.cfg.BufferTTL {
			dropped++
			continue
		}
		kept = append(kept, f)
	}
	a.buffer = kept
	if dropped > 0 {
		a.logger.Info("pruned stale buffered frames", "dropped", dropped)
	}
}

func (a *Adapter) startSweeper() {
	a.mu.Lock()
	if a.sweepStop != nil {
		a.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	a.sweepStop = stop
	a.mu.Unlock()

	go func() {
		ticker := time.NewTicker(a.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				a.mu.Lock()
				a.pruneLocked(time.Now())
				a.mu.Unlock()
			}
		}
	}()
}

// setStateLocked transitions the state machine and returns the observer
// callback to invoke once the adapter lock is released, or nil if nothing
// changed. Callers hold the adapter lock.
func (a *Adapter) setStateLocked(next State) func() {
	if a.state == next {
		return nil
	}
	a.state = next
	if next != StateError {
		a.lastErr = nil
	}
	fn := a.onChange
	if fn == nil {
		return nil
	}
	return func() { fn(next) }
}
