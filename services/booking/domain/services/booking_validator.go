// Package services contains stateless domain services for the booking bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

// ValidateBookingForCreation performs cross-field validation on a
// fully-constructed Booking aggregate before it is persisted. It assumes the
// Booking was built via models.NewBooking and adds business-level checks that
// span multiple fields.
func ValidateBookingForCreation(b *models.Booking) error {
	if b == nil {
		return fmt.Errorf("booking cannot be nil")
	}

	if b.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if b.CustomerID == uuid.Nil {
		return fmt.Errorf("customer_id must be set")
	}

	if len(b.Lines) == 0 {
		return fmt.Errorf("booking must have at least one line")
	}

	var total int64
	for i, line := range b.Lines {
		if line.OfferingID == "" {
			return fmt.Errorf("line %d: offering_id must be set", i)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("line %d: quantity must be at least 1", i)
		}
		if line.UnitPrice < 0 {
			return fmt.Errorf("line %d: unit price must not be negative", i)
		}
		total += line.UnitPrice * int64(line.Quantity)
	}

	if b.Total != total {
		return fmt.Errorf("total %d does not match sum of lines %d", b.Total, total)
	}

	return nil
}
