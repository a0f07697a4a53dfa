package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/thientruong51/asms-booking/pkg/app"
	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/services/booking/application/handlers"
	appsvcs "github.com/thientruong51/asms-booking/services/booking/application/services"
)

// BookingRoutes registers catalog and booking endpoints on the provided chi
// router. All booking endpoints run behind EnsureCustomer so an anonymous
// visitor gets a session on first touch of the booking wizard.
func BookingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Group(func(r chi.Router) {
		catalog := handlers.NewCatalogHandler(svcs)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/offerings", catalog.Offerings)
			r.Get("/goods-categories", catalog.GoodsCategories)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.EnsureCustomer(a.SessionStore, a.Logger))

		selection := handlers.NewSelectionHandler(svcs)
		booking := handlers.NewBookingHandler(svcs)
		r.Route("/booking", func(r chi.Router) {
			r.Post("/", booking.Submit)
			r.Get("/", booking.List)
			r.Get("/{bookingID}", booking.Get)

			r.Route("/selection", func(r chi.Router) {
				r.Get("/", selection.Get)
				r.Post("/{offeringID}/toggle", selection.Toggle)
				r.Post("/{offeringID}/quantity", selection.ChangeQuantity)
				r.Put("/{offeringID}/goods-categories", selection.SetGoodsCategories)
			})
		})
	})
}
