package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicOrderStatusChanged is the Watermill topic the order-tracking system
// publishes on every order status transition.
const TopicOrderStatusChanged = "order.status_changed"

// OrderStatusChangedEvent describes one status transition of a customer order.
// The notification worker turns these into inbox items.
type OrderStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	CustomerID uuid.UUID `json:"customer_id"`
	OrderCode  string    `json:"order_code"`
	Status     string    `json:"status"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
