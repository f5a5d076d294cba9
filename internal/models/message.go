package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageKind is the closed set of wire message tags exchanged between peers.
// The string values are part of the wire format and must not change.
type MessageKind string

const (
	MessageSessionUpdate  MessageKind = "session-update"
	MessageSetCompleted   MessageKind = "set-completed"
	MessageTimerStarted   MessageKind = "timer-started"
	MessageTimerStopped   MessageKind = "timer-stopped"
	MessageExerciseUpdate MessageKind = "exercise-update"
	MessageSyncRequest    MessageKind = "sync-request"
	MessageHeartbeat      MessageKind = "heartbeat"
	MessageTest           MessageKind = "test"
)

// Valid reports whether the kind belongs to the closed MessageKind set.
func (k MessageKind) Valid() bool {
	switch k {
	case MessageSessionUpdate, MessageSetCompleted, MessageTimerStarted,
		MessageTimerStopped, MessageExerciseUpdate, MessageSyncRequest,
		MessageHeartbeat, MessageTest:
		return true
	}
	return false
}

// Envelope is the single wire frame exchanged between peers. The payload is an
// opaque channel-specific JSON document; the timestamp is the sender's clock
// in Unix milliseconds.
type Envelope struct {
	Type      MessageKind     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// NewEnvelope builds an envelope around an already-encoded payload, stamping
// it with the current time.
func NewEnvelope(kind MessageKind, payload []byte) Envelope {
	return Envelope{
		Type:      kind,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Time returns the sender clock as a time.Time.
func (e Envelope) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// EncodeEnvelope serializes an envelope for transmission.
func EncodeEnvelope(e Envelope) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	return data, nil
}

// DecodeEnvelope parses a received frame. An unknown message kind is an error;
// the caller replies with an error payload and drops the frame.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if !e.Type.Valid() {
		return Envelope{}, fmt.Errorf("unknown message kind %q", e.Type)
	}
	return e, nil
}

// Ack is the opaque key/value acknowledgment map returned by the peer for a
// delivered message.
type Ack map[string]string

// AckReceived is the acknowledgment sent for an accepted message.
func AckReceived(kind MessageKind) Ack {
	return Ack{"status": "received", "type": string(kind)}
}

// AckError is the error reply sent for a frame that could not be handled.
func AckError(reason string) Ack {
	return Ack{"status": "error", "reason": reason}
}
