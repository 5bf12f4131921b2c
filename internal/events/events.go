// Package events defines the wire envelopes exchanged over Pub/Sub between
// the API and the notification worker.
package events

import (
	"encoding/json"
	"time"
)

// Type names carried in the "event_type" message attribute.
const (
	TypeOrderStatusChanged = "order.status_changed"
)

// OrderStatusChanged is published whenever an order transitions state.
// EventID is unique per publish and is the consumer's idempotency key.
type OrderStatusChanged struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Encode serializes the envelope for the message body.
func (e OrderStatusChanged) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// DecodeOrderStatusChanged parses a message body back into the envelope.
func DecodeOrderStatusChanged(data []byte) (OrderStatusChanged, error) {
	var e OrderStatusChanged
	err := json.Unmarshal(data, &e)
	return e, err
}
