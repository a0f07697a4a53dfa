package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/pkg/cache"
	"github.com/thientruong51/asms-booking/pkg/httpx"
	"github.com/thientruong51/asms-booking/pkg/logger"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// StreamHandler upgrades the connection to a websocket and forwards the
// customer's notification pushes as they arrive. Each connection holds its
// own Redis subscription on the customer's notify channel; the payload is
// the appended notification item as JSON.
type StreamHandler struct {
	redis    *cache.RedisClient
	log      logger.Logger
	upgrader websocket.Upgrader
}

// NewStreamHandler returns a StreamHandler backed by the given Redis client.
// allowedOrigins is the same comma-separated allowlist the CORS middleware
// uses; cross-origin handshakes outside it are rejected with 403.
func NewStreamHandler(redis *cache.RedisClient, allowedOrigins string, log logger.Logger) *StreamHandler {
	return &StreamHandler{
		redis: redis,
		log:   log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     httpx.OriginChecker(allowedOrigins),
		},
	}
}

// Stream serves the live notification feed.
//
//	@Summary		Notification stream
//	@Description	Upgrades to a websocket and pushes new notifications for the session customer as JSON messages
//	@Tags			notifications
//	@Success		101
//	@Failure		401	{object}	ErrorResponse
//	@Router			/notifications/stream [get]
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.log.ErrorContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	sub := h.redis.Subscribe(ctx, cache.NotifyChannel(customerID))
	defer sub.Close()

	// Drain client frames so close and pong handling keep working. Inbound
	// payloads are ignored; the stream is one-way.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
