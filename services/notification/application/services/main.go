package services

import (
	"github.com/thientruong51/asms-booking/pkg/app"
	"github.com/thientruong51/asms-booking/pkg/cache"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Notification *NotificationService
}

// New wires the notification application services with infrastructure from
// the Application container.
func New(a *app.Application) *Services {
	store := cache.NewLedgerStore(a.Redis)
	return &Services{
		Notification: NewNotificationService(store, a.Redis, a.Logger),
	}
}
