package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/thientruong51/asms-booking/pkg/app"
	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/services/notification/application/handlers"
	appsvcs "github.com/thientruong51/asms-booking/services/notification/application/services"
)

// NotificationRoutes registers inbox endpoints on the provided chi router.
func NotificationRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Group(func(r chi.Router) {
		r.Use(auth.EnsureCustomer(a.SessionStore, a.Logger))

		inbox := handlers.NewNotificationHandler(svcs)
		stream := handlers.NewStreamHandler(a.Redis, a.AllowedOrigins, a.Logger)
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", inbox.List)
			r.Delete("/", inbox.Clear)
			r.Get("/unread-count", inbox.UnreadCount)
			r.Get("/stream", stream.Stream)
			r.Post("/read-all", inbox.MarkAllRead)
			r.Post("/{notificationID}/read", inbox.MarkRead)
		})
	})
}
