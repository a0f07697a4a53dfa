package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/thientruong51/asms-booking/pkg/app"
	"github.com/thientruong51/asms-booking/pkg/cache"
	"github.com/thientruong51/asms-booking/pkg/config"
	"github.com/thientruong51/asms-booking/pkg/database"
	"github.com/thientruong51/asms-booking/pkg/events"
	"github.com/thientruong51/asms-booking/pkg/logger"
	"github.com/thientruong51/asms-booking/pkg/telemetry"
	bookingEvents "github.com/thientruong51/asms-booking/services/booking/domain/events"
	notificationSvcs "github.com/thientruong51/asms-booking/services/notification/application/services"
	notificationEvents "github.com/thientruong51/asms-booking/services/notification/domain/events"
	"github.com/thientruong51/asms-booking/services/notification/domain/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.BookingDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	notifications := notificationSvcs.NewNotificationService(
		cache.NewLedgerStore(a.Redis),
		a.Redis,
		a.Logger,
	)

	if err := subscribe(ctx, a, bookingEvents.TopicBookingCreated, handleBookingCreated(a, notifications)); err != nil {
		return err
	}
	if err := subscribe(ctx, a, notificationEvents.TopicOrderStatusChanged, handleOrderStatusChanged(a, notifications)); err != nil {
		return err
	}

	a.Logger.Info("event subscribers registered", "topics", []string{
		bookingEvents.TopicBookingCreated,
		notificationEvents.TopicOrderStatusChanged,
	})
	return nil
}

func subscribe(ctx context.Context, a *app.Application, topic string, handler func(context.Context, *message.Message) error) error {
	errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", topic,
				"error", err,
			)
		}
	}()
	return nil
}

// handleBookingCreated returns a handler for booking.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure, and the
// ledger's (order code, status) dedup absorbs redeliveries.
func handleBookingCreated(a *app.Application, notifications *notificationSvcs.NotificationService) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt bookingEvents.BookingCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		added, err := notifications.Append(ctx, evt.CustomerID, models.Item{
			OrderCode: evt.OrderCode,
			Status:    "received",
			Title:     "Booking received",
			Message:   fmt.Sprintf("Your storage booking %s has been received", evt.OrderCode),
			CreatedAt: evt.OccurredAt,
		})
		if err != nil {
			return err
		}
		if added {
			a.Logger.InfoContext(ctx, "booking notification recorded",
				"order_code", evt.OrderCode, "customer_id", evt.CustomerID)
		}
		return nil
	}
}

// handleOrderStatusChanged returns a handler for order.status_changed events.
func handleOrderStatusChanged(a *app.Application, notifications *notificationSvcs.NotificationService) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt notificationEvents.OrderStatusChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		item := models.Item{
			OrderCode: evt.OrderCode,
			Status:    evt.Status,
			Title:     evt.Title,
			Message:   evt.Message,
			CreatedAt: evt.OccurredAt,
		}
		if item.Title == "" {
			item.Title = fmt.Sprintf("Order %s", evt.Status)
		}
		if item.Message == "" {
			item.Message = fmt.Sprintf("Your storage booking %s is now %s", evt.OrderCode, evt.Status)
		}

		added, err := notifications.Append(ctx, evt.CustomerID, item)
		if err != nil {
			return err
		}
		if !added {
			a.Logger.InfoContext(ctx, "duplicate status notification dropped",
				"order_code", evt.OrderCode, "status", evt.Status)
		}
		return nil
	}
}
