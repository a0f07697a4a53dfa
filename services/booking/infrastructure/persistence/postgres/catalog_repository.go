package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thientruong51/asms-booking/pkg/database"
	bookingdomain "github.com/thientruong51/asms-booking/services/booking/domain"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

// CatalogRepository implements repositories.CatalogRepository against
// PostgreSQL. The catalog is seeded by migrations and read-only at runtime.
type CatalogRepository struct {
	db *database.Database
}

// NewCatalogRepository returns a CatalogRepository backed by the given pool.
func NewCatalogRepository(db *database.Database) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FindOfferings returns all offerings in display order.
func (r *CatalogRepository) FindOfferings(ctx context.Context) ([]models.Offering, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, label, unit_price, preview_url
		FROM offerings
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query offerings: %w", err)
	}
	defer rows.Close()

	var offerings []models.Offering
	for rows.Next() {
		var o models.Offering
		if err := rows.Scan(&o.ID, &o.Label, &o.UnitPrice, &o.PreviewURL); err != nil {
			return nil, fmt.Errorf("scan offering: %w", err)
		}
		offerings = append(offerings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offerings: %w", err)
	}
	return offerings, nil
}

// GetOfferingByID returns a single offering. Returns ErrOfferingNotFound
// when no offering has the given id.
func (r *CatalogRepository) GetOfferingByID(ctx context.Context, id string) (*models.Offering, error) {
	var o models.Offering
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT id, label, unit_price, preview_url
		FROM offerings
		WHERE id = $1`, id).Scan(&o.ID, &o.Label, &o.UnitPrice, &o.PreviewURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookingdomain.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("query offering: %w", err)
	}
	return &o, nil
}

// FindGoodsCategories returns all goods categories in display order.
func (r *CatalogRepository) FindGoodsCategories(ctx context.Context) ([]models.GoodsCategory, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, description, fragile, stackable
		FROM goods_categories
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query goods categories: %w", err)
	}
	defer rows.Close()

	var cats []models.GoodsCategory
	for rows.Next() {
		var c models.GoodsCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Fragile, &c.Stackable); err != nil {
			return nil, fmt.Errorf("scan goods category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goods categories: %w", err)
	}
	return cats, nil
}
