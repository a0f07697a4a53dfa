package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking is the core aggregate for this bounded context: a submitted
// selection, frozen into lines with the price snapshots that were live at
// selection time.
type Booking struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	OrderCode  string // human-facing code, referenced by order-status notifications
	Lines      []BookingLine
	Total      int64
	CreatedAt  time.Time
}

// BookingLine is one offering within a booking.
type BookingLine struct {
	OfferingID       string
	Quantity         int
	UnitPrice        int64
	GoodsCategoryIDs []string
}

// NewBooking freezes the given selections into a Booking aggregate with a
// generated ID and current timestamp. The selections must be non-empty;
// submitting an empty draft is a domain violation, not a no-op.
func NewBooking(customerID uuid.UUID, items []Selection) (*Booking, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("booking must contain at least one selection")
	}

	lines := make([]BookingLine, 0, len(items))
	var total int64
	for _, it := range items {
		lines = append(lines, BookingLine{
			OfferingID:       it.OfferingID,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			GoodsCategoryIDs: append([]string(nil), it.GoodsCategoryIDs...),
		})
		total += it.Subtotal()
	}

	id := uuid.New()
	return &Booking{
		ID:         id,
		CustomerID: customerID,
		OrderCode:  orderCodeFromID(id),
		Lines:      lines,
		Total:      total,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// orderCodeFromID derives the human-facing order code from the booking ID.
// The code is stable for the life of the booking and unique with the same
// collision odds as the first 8 hex digits of a v4 UUID.
func orderCodeFromID(id uuid.UUID) string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
