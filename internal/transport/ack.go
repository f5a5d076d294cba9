package transport

import (
	"encoding/json"
	"fmt"

	"github.com/liftlink/watchsync/internal/models"
)

func encodeAck(ack models.Ack) []byte {
	data, err := json.Marshal(ack)
	if err != nil {
		// An Ack is a map of strings; marshalling cannot fail in practice.
		return []byte(`{"status":"error","reason":"encode failure"}`)
	}
	return data
}

func decodeAck(data []byte, out *models.Ack) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode ack: %w", err)
	}
	return nil
}
