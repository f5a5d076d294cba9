// Package transport wraps the platform's proximity session link between the
// phone and the watch. The adapter owns reconnection, a short-lived outbound
// buffer, and inbound message dispatch; the platform link itself is injected
// behind the Session interface.
package transport

import "context"

//go:generate moq -out session_mock.go . Session

// Receiver handles an inbound raw frame and returns the reply frame the
// session delivers back to the sender.
type Receiver func(data []byte) []byte

// Session is the platform proximity link the adapter drives. Implementations
// deliver send callbacks asynchronously and must invoke exactly one of the
// two callbacks per send.
type Session interface {
	// Activate starts the session lifecycle.
	Activate(ctx context.Context) error

	// Deactivate tears the session down.
	Deactivate()

	// Reachable reports whether the peer can currently receive messages.
	Reachable() bool

	// PeerInstalled reports whether the counterpart app is installed.
	PeerInstalled() bool

	// Supported reports whether the platform supports a session at all.
	Supported() bool

	// Send transmits a raw frame. Exactly one of reply or fail is invoked,
	// asynchronously, with the peer's reply frame or the transport error.
	Send(data []byte, reply func([]byte), fail func(error))

	// UpdateApplicationContext replaces the most recent application context
	// the peer reads on wake. Best effort.
	UpdateApplicationContext(data []byte) error

	// SetReceiver registers the inbound frame callback.
	SetReceiver(r Receiver)

	// SetReachabilityHandler registers the reachability change callback.
	SetReachabilityHandler(fn func(reachable bool))
}

// State is the adapter's visible connection state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateError        State = "error"
)
