package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	bookingdomain "github.com/thientruong51/asms-booking/services/booking/domain"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
	"github.com/thientruong51/asms-booking/services/booking/domain/repositories"
)

// fakeBookingRepo records saved bookings in memory.
type fakeBookingRepo struct {
	saved   []*models.Booking
	saveErr error
}

func (f *fakeBookingRepo) Save(ctx context.Context, b *models.Booking) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, customerID, id uuid.UUID) (*models.Booking, error) {
	for _, b := range f.saved {
		if b.ID == id && b.CustomerID == customerID {
			return b, nil
		}
	}
	return nil, bookingdomain.ErrBookingNotFound
}

func (f *fakeBookingRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Booking, int, error) {
	var out []*models.Booking
	for _, b := range f.saved {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, len(out), nil
}

var _ repositories.BookingRepository = (*fakeBookingRepo)(nil)

func TestBookingService_Submit(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	selection := newTestSelectionService(fixedCatalogRepo())
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, selection)

	if _, err := selection.Toggle(ctx, customerID, "box-small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := selection.ChangeQuantity(ctx, customerID, "box-small", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	booking, err := svc.Submit(ctx, customerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Total != 300000 {
		t.Fatalf("expected total 300000, got %d", booking.Total)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved booking, got %d", len(repo.saved))
	}

	// Draft is cleared after submission.
	view, err := selection.View(ctx, customerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected cleared draft, got %+v", view)
	}
}

func TestBookingService_SubmitEmptyDraft(t *testing.T) {
	selection := newTestSelectionService(fixedCatalogRepo())
	svc := NewBookingService(&fakeBookingRepo{}, selection)

	_, err := svc.Submit(context.Background(), uuid.New())
	if !errors.Is(err, bookingdomain.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestBookingService_SubmitRepoFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	selection := newTestSelectionService(fixedCatalogRepo())
	svc := NewBookingService(&fakeBookingRepo{saveErr: errors.New("db down")}, selection)

	if _, err := selection.Toggle(ctx, customerID, "box-small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Submit(ctx, customerID); err == nil {
		t.Fatal("expected error from repository")
	}

	// A failed submission must not discard the customer's draft.
	view, err := selection.View(ctx, customerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected draft to survive failed submit, got %+v", view)
	}
}

func TestBookingService_GetAndList(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	selection := newTestSelectionService(fixedCatalogRepo())
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, selection)

	if _, err := selection.Toggle(ctx, customerID, "box-large"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	booking, err := svc.Submit(ctx, customerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByID(ctx, customerID, booking.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != booking.ID {
		t.Fatalf("expected booking %v, got %v", booking.ID, got.ID)
	}

	if _, err := svc.GetByID(ctx, uuid.New(), booking.ID); !errors.Is(err, bookingdomain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for other customer, got %v", err)
	}

	list, total, err := svc.List(ctx, customerID, repositories.QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("expected 1 booking, got total=%d len=%d", total, len(list))
	}
}
