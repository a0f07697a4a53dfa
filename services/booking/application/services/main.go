package services

import (
	"github.com/thientruong51/asms-booking/pkg/app"
	"github.com/thientruong51/asms-booking/pkg/cache"
	"github.com/thientruong51/asms-booking/services/booking/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog   *CatalogService
	Selection *SelectionService
	Booking   *BookingService
}

// New wires all booking application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	catalogRepo := postgres.NewCatalogRepository(a.Db)
	bookingRepo := postgres.NewBookingRepository(a.Db, a.EventBus)
	selectionCache := cache.NewSelectionCache(a.Redis)

	catalog := NewCatalogService(catalogRepo)
	selection := NewSelectionService(catalog, selectionCache, a.Logger)
	booking := NewBookingService(bookingRepo, selection)

	return &Services{
		Catalog:   catalog,
		Selection: selection,
		Booking:   booking,
	}
}
