package repositories

import (
	"context"

	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

// CatalogRepository is the read-only persistence interface for the offering
// and goods-category catalog. The domain layer owns this interface;
// infrastructure implements it.
type CatalogRepository interface {
	// FindOfferings retrieves all active offerings.
	FindOfferings(ctx context.Context) ([]models.Offering, error)

	// GetOfferingByID retrieves one offering. Returns ErrOfferingNotFound
	// when no offering with the given id exists.
	GetOfferingByID(ctx context.Context, id string) (*models.Offering, error)

	// FindGoodsCategories retrieves all goods categories.
	FindGoodsCategories(ctx context.Context) ([]models.GoodsCategory, error)
}
