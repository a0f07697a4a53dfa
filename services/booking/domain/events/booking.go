package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingCreated is the Watermill topic published when a Booking is created.
const TopicBookingCreated = "booking.created"

// BookingLinePayload mirrors one booking line in the event payload.
type BookingLinePayload struct {
	OfferingID       string   `json:"offering_id"`
	Quantity         int      `json:"quantity"`
	UnitPrice        int64    `json:"unit_price"`
	GoodsCategoryIDs []string `json:"goods_category_ids,omitempty"`
}

// BookingCreatedEvent is published after a new Booking is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicBookingCreated).
type BookingCreatedEvent struct {
	EventID    uuid.UUID            `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int                  `json:"version"`  // Schema version; increment on breaking changes
	BookingID  uuid.UUID            `json:"booking_id"`
	CustomerID uuid.UUID            `json:"customer_id"`
	OrderCode  string               `json:"order_code"`
	Lines      []BookingLinePayload `json:"lines"`
	Total      int64                `json:"total"`
	OccurredAt time.Time            `json:"occurred_at"`
}
