package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/thientruong51/asms-booking/services/notification/domain/models"
)

// LedgerStore persists per-customer ledger snapshots between processes.
// The domain layer owns this interface; infrastructure implements it
// (Redis-backed in this deployment).
type LedgerStore interface {
	// Load retrieves the stored snapshot for a customer, newest first.
	// A customer with no stored ledger yields an empty slice, not an error.
	Load(ctx context.Context, customerID uuid.UUID) ([]models.Item, error)

	// Save replaces the stored snapshot for a customer.
	Save(ctx context.Context, customerID uuid.UUID, items []models.Item) error

	// Delete removes the stored snapshot for a customer.
	Delete(ctx context.Context, customerID uuid.UUID) error
}
