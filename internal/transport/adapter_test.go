package transport

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlink/watchsync/internal/models"
)

// newMockSession returns a session whose reachability is controlled by the
// returned flag. Sends succeed and echo a received ack.
func newMockSession(reachable *atomic.Bool) *SessionMock {
	return &SessionMock{
		ActivateFunc:   func(ctx context.Context) error { return nil },
		DeactivateFunc: func() {},
		ReachableFunc:  func() bool { return reachable.Load() },
		SupportedFunc:  func() bool { return true },
		SendFunc: func(data []byte, reply func([]byte), fail func(error)) {
			env, err := models.DecodeEnvelope(data)
			if err != nil {
				fail(err)
				return
			}
			if reply != nil {
				reply(encodeAck(models.AckReceived(env.Type)))
			}
		},
		SetReceiverFunc:              func(r Receiver) {},
		SetReachabilityHandlerFunc:   func(fn func(reachable bool)) {},
		UpdateApplicationContextFunc: func(data []byte) error { return nil },
	}
}

func testAdapter(t *testing.T, session Session, cfg Config) *Adapter {
	t.Helper()
	a := NewAdapter(session, cfg, slog.Default())
	t.Cleanup(a.Deactivate)
	return a
}

func TestActivate_NotSupported(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	session.SupportedFunc = func() bool { return false }
	a := testAdapter(t, session, DefaultConfig())

	err := a.Activate(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateDisconnected, a.State())
	assert.Empty(t, session.ActivateCalls())
}

func TestActivate_RetriesThenLandsInError(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	activateErr := errors.New("radio off")
	session.ActivateFunc = func(ctx context.Context) error { return activateErr }

	cfg := DefaultConfig()
	cfg.ActivationRetries = 2
	a := testAdapter(t, session, cfg)

	err := a.Activate(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateError, a.State())
	assert.ErrorIs(t, a.LastError(), activateErr)
	assert.Len(t, session.ActivateCalls(), 3, "initial attempt plus two retries")
}

func TestActivate_IdempotentWhileConnected(t *testing.T) {
	var reachable atomic.Bool
	reachable.Store(true)
	session := newMockSession(&reachable)
	a := testAdapter(t, session, DefaultConfig())

	require.NoError(t, a.Activate(context.Background()))
	assert.Equal(t, StateConnected, a.State())

	require.NoError(t, a.Activate(context.Background()))
	assert.Len(t, session.ActivateCalls(), 1)
}

func TestSend_BuffersWhileUnreachable(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	a := testAdapter(t, session, DefaultConfig())
	require.NoError(t, a.Activate(context.Background()))

	a.Send(models.NewEnvelope(models.MessageHeartbeat, nil), nil, nil)

	assert.Equal(t, 1, a.BufferedCount())
	assert.Empty(t, session.SendCalls(), "nothing transmits while unreachable")
}

func TestReachabilityDrainsBuffer(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	var reachFn func(bool)
	session.SetReachabilityHandlerFunc = func(fn func(reachable bool)) { reachFn = fn }

	a := testAdapter(t, session, DefaultConfig())
	require.NoError(t, a.Activate(context.Background()))

	var mu sync.Mutex
	var acks []models.Ack
	a.Send(models.NewEnvelope(models.MessageHeartbeat, nil), func(ack models.Ack) {
		mu.Lock()
		acks = append(acks, ack)
		mu.Unlock()
	}, nil)
	require.Equal(t, 1, a.BufferedCount())

	reachable.Store(true)
	reachFn(true)

	assert.Equal(t, StateConnected, a.State())
	assert.Equal(t, 0, a.BufferedCount())
	require.Len(t, session.SendCalls(), 1)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, acks, 1)
	assert.Equal(t, "received", acks[0]["status"])
}

func TestSend_TransmitsWhenReachabilityCallbackMissed(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	a := testAdapter(t, session, DefaultConfig())
	require.NoError(t, a.Activate(context.Background()))

	a.Send(models.NewEnvelope(models.MessageHeartbeat, nil), nil, nil)
	require.Equal(t, 1, a.BufferedCount())

	// The link recovers but the reachability notification never arrives.
	reachable.Store(true)

	a.Send(models.NewEnvelope(models.MessageSyncRequest, nil), nil, nil)

	assert.Equal(t, 0, a.BufferedCount(), "the buffered frame drains ahead of the new send")
	assert.Len(t, session.SendCalls(), 2)
}

func TestReceive_ResyncsMissedReachability(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	var receiver Receiver
	session.SetReceiverFunc = func(r Receiver) { receiver = r }

	a := testAdapter(t, session, DefaultConfig())
	a.RegisterHandler(models.MessageHeartbeat, func(models.MessageKind, []byte, time.Time) {})
	require.NoError(t, a.Activate(context.Background()))

	a.Send(models.NewEnvelope(models.MessageSessionUpdate, []byte(`{"id":"s1"}`)), nil, nil)
	require.Equal(t, 1, a.BufferedCount())

	reachable.Store(true)

	data, err := models.EncodeEnvelope(models.NewEnvelope(models.MessageHeartbeat, nil))
	require.NoError(t, err)
	receiver(data)

	assert.Equal(t, StateConnected, a.State(), "an inbound frame proves the link is up")
	assert.Equal(t, 0, a.BufferedCount())
	assert.Len(t, session.SendCalls(), 1)
}

func TestSend_PrunesStaleBufferedFrames(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	cfg := DefaultConfig()
	cfg.BufferTTL = 10 * time.Millisecond
	a := testAdapter(t, session, cfg)
	require.NoError(t, a.Activate(context.Background()))

	a.Send(models.NewEnvelope(models.MessageHeartbeat, nil), nil, nil)
	require.Equal(t, 1, a.BufferedCount())

	time.Sleep(20 * time.Millisecond)
	a.Send(models.NewEnvelope(models.MessageSyncRequest, nil), nil, nil)

	assert.Equal(t, 1, a.BufferedCount(), "the stale frame is gone, only the fresh one remains")
}

func TestOnStateChange_ObservesTransitions(t *testing.T) {
	var reachable atomic.Bool
	reachable.Store(true)
	session := newMockSession(&reachable)
	a := testAdapter(t, session, DefaultConfig())

	var mu sync.Mutex
	var seen []State
	a.OnStateChange(func(s State) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	require.NoError(t, a.Activate(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateConnecting, StateConnected}, seen)
}

func TestReceive_DispatchesToHandler(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	var receiver Receiver
	session.SetReceiverFunc = func(r Receiver) { receiver = r }

	a := testAdapter(t, session, DefaultConfig())

	var gotKind models.MessageKind
	var gotPayload []byte
	a.RegisterHandler(models.MessageSetCompleted, func(kind models.MessageKind, payload []byte, sentAt time.Time) {
		gotKind = kind
		gotPayload = payload
	})

	env := models.NewEnvelope(models.MessageSetCompleted, []byte(`{"id":"c1"}`))
	data, err := models.EncodeEnvelope(env)
	require.NoError(t, err)

	raw := receiver(data)

	var ack models.Ack
	require.NoError(t, decodeAck(raw, &ack))
	assert.Equal(t, "received", ack["status"])
	assert.Equal(t, string(models.MessageSetCompleted), ack["type"])
	assert.Equal(t, models.MessageSetCompleted, gotKind)
	assert.JSONEq(t, `{"id":"c1"}`, string(gotPayload))
}

func TestReceive_UnknownKindGetsErrorAck(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	var receiver Receiver
	session.SetReceiverFunc = func(r Receiver) { receiver = r }

	testAdapter(t, session, DefaultConfig())

	raw := receiver([]byte(`{"type":"mystery","timestamp":0}`))

	var ack models.Ack
	require.NoError(t, decodeAck(raw, &ack))
	assert.Equal(t, "error", ack["status"])
}

func TestReceive_NoHandlerGetsErrorAck(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	var receiver Receiver
	session.SetReceiverFunc = func(r Receiver) { receiver = r }

	testAdapter(t, session, DefaultConfig())

	data, err := models.EncodeEnvelope(models.NewEnvelope(models.MessageTest, nil))
	require.NoError(t, err)
	raw := receiver(data)

	var ack models.Ack
	require.NoError(t, decodeAck(raw, &ack))
	assert.Equal(t, "error", ack["status"])
	assert.Contains(t, ack["reason"], "test")
}

func TestReceive_MalformedFrameGetsErrorAck(t *testing.T) {
	var reachable atomic.Bool
	session := newMockSession(&reachable)
	var receiver Receiver
	session.SetReceiverFunc = func(r Receiver) { receiver = r }

	testAdapter(t, session, DefaultConfig())

	var ack models.Ack
	require.NoError(t, decodeAck(receiver([]byte("not json")), &ack))
	assert.Equal(t, "error", ack["status"])
}
