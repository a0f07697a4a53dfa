package app

import (
	"github.com/gorilla/sessions"

	"github.com/thientruong51/asms-booking/pkg/cache"
	"github.com/thientruong51/asms-booking/pkg/database"
	"github.com/thientruong51/asms-booking/pkg/events"
	"github.com/thientruong51/asms-booking/pkg/logger"
	"github.com/thientruong51/asms-booking/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "booking submitted", "booking_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process

	// AllowedOrigins is the comma-separated browser origin allowlist, shared
	// between the CORS middleware and websocket handshake checks.
	AllowedOrigins string
}
