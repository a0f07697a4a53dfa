package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	bookingdomain "github.com/thientruong51/asms-booking/services/booking/domain"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
	"github.com/thientruong51/asms-booking/services/booking/domain/repositories"
	domainsvcs "github.com/thientruong51/asms-booking/services/booking/domain/services"
)

// BookingService turns a customer's selection draft into a persisted Booking.
// Event publishing is handled by the repository layer (outbox pattern).
type BookingService struct {
	repo      repositories.BookingRepository
	selection *SelectionService
}

// NewBookingService returns a BookingService wired with the given repository
// and selection service.
func NewBookingService(repo repositories.BookingRepository, selection *SelectionService) *BookingService {
	return &BookingService{repo: repo, selection: selection}
}

// Submit freezes the customer's current draft into a Booking, persists it
// (the repository publishes BookingCreatedEvent in the same transaction), and
// clears the draft. Submitting an empty draft returns ErrEmptySelection.
func (s *BookingService) Submit(ctx context.Context, customerID uuid.UUID) (*models.Booking, error) {
	items, err := s.selection.Items(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	if len(items) == 0 {
		return nil, bookingdomain.ErrEmptySelection
	}

	booking, err := models.NewBooking(customerID, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bookingdomain.ErrEmptySelection, err)
	}

	if err := domainsvcs.ValidateBookingForCreation(booking); err != nil {
		return nil, fmt.Errorf("validate booking: %w", err)
	}

	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.selection.ClearDraft(ctx, customerID)
	return booking, nil
}

// GetByID retrieves a booking scoped to the given customer.
func (s *BookingService) GetByID(ctx context.Context, customerID, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.repo.GetByID(ctx, customerID, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

// List returns a paginated slice of the customer's bookings plus total count.
func (s *BookingService) List(ctx context.Context, customerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Booking, int, error) {
	bookings, total, err := s.repo.FindByCustomerID(ctx, customerID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, total, nil
}
