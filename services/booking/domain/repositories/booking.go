package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// BookingRepository is the persistence interface for the Booking aggregate.
// The domain layer owns this interface; infrastructure implements it.
type BookingRepository interface {
	Save(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, customerID, id uuid.UUID) (*models.Booking, error)

	// FindByCustomerID retrieves a paginated list of bookings for the given
	// customer, newest first. Returns the bookings slice and the total count
	// (ignoring pagination).
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, opts QueryOpts) ([]*models.Booking, int, error)
}
