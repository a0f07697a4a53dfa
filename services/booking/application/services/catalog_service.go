package services

import (
	"context"
	"fmt"

	"github.com/thientruong51/asms-booking/services/booking/domain/models"
	"github.com/thientruong51/asms-booking/services/booking/domain/repositories"
)

// CatalogService serves the offering and goods-category catalog.
// The selection aggregator reads prices through snapshots produced here so it
// never touches the database itself.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService returns a CatalogService over the given repository.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Offerings returns all active offerings.
func (s *CatalogService) Offerings(ctx context.Context) ([]models.Offering, error) {
	offerings, err := s.repo.FindOfferings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	return offerings, nil
}

// GoodsCategories returns all goods categories.
func (s *CatalogService) GoodsCategories(ctx context.Context) ([]models.GoodsCategory, error) {
	categories, err := s.repo.FindGoodsCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goods categories: %w", err)
	}
	return categories, nil
}

// Snapshot reads the whole catalog into an in-memory Catalog for the
// selection aggregator.
func (s *CatalogService) Snapshot(ctx context.Context) (*models.CatalogSnapshot, error) {
	offerings, err := s.repo.FindOfferings(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot offerings: %w", err)
	}
	categories, err := s.repo.FindGoodsCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot goods categories: %w", err)
	}
	return models.NewCatalogSnapshot(offerings, categories), nil
}
