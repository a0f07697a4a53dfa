package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/pkg/errhttp"
	"github.com/thientruong51/asms-booking/pkg/httpx"
	appsvcs "github.com/thientruong51/asms-booking/services/notification/application/services"
	"github.com/thientruong51/asms-booking/services/notification/domain/models"
)

// NotificationResponse is one inbox notification.
type NotificationResponse struct {
	ID        string    `json:"id"         example:"8f14e45f-ceea-4672-9f5a-621d72c4a1de"`
	OrderCode string    `json:"order_code" example:"ORD-1A2B3C4D"`
	Status    string    `json:"status"     example:"confirmed"`
	Title     string    `json:"title"      example:"Order confirmed"`
	Message   string    `json:"message"    example:"Your storage booking ORD-1A2B3C4D is confirmed"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	Read      bool      `json:"read"       example:"false"`
} // @name NotificationResponse

// NotificationListResponse wraps an inbox listing.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count" example:"3"`
} // @name NotificationListResponse

// UnreadCountResponse carries the unread badge count.
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count" example:"3"`
} // @name UnreadCountResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"notification not found"`
} // @name ErrorResponse

// NotificationHandler handles the customer inbox endpoints.
type NotificationHandler struct {
	svc *appsvcs.Services
}

// NewNotificationHandler returns a NotificationHandler backed by the given services.
func NewNotificationHandler(svc *appsvcs.Services) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns the inbox, newest first.
//
//	@Summary		List notifications
//	@Description	Returns the session customer's notifications, newest first, with the unread count
//	@Tags			notifications
//	@Produce		json
//	@Param			unread	query		bool	false	"Only unread notifications"
//	@Success		200		{object}	NotificationListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	var items []models.Item
	if r.URL.Query().Get("unread") == "true" {
		items, err = h.svc.Notification.Unread(r.Context(), customerID)
	} else {
		items, err = h.svc.Notification.All(r.Context(), customerID)
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	count, err := h.svc.Notification.UnreadCount(r.Context(), customerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(items)),
		UnreadCount:   count,
	}
	for _, it := range items {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(it))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// UnreadCount returns the unread badge count.
//
//	@Summary		Unread count
//	@Description	Returns the number of unread notifications for the session customer
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{object}	UnreadCountResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	count, err := h.svc.Notification.UnreadCount(r.Context(), customerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, UnreadCountResponse{UnreadCount: count})
}

// MarkRead marks one notification read. An unknown id is a no-op, not an
// error, so the client can safely retry.
//
//	@Summary		Mark notification read
//	@Description	Marks one notification read; unknown ids are ignored
//	@Tags			notifications
//	@Produce		json
//	@Param			notificationID	path		string	true	"Notification id"
//	@Success		200				{object}	UnreadCountResponse
//	@Failure		401				{object}	ErrorResponse
//	@Router			/notifications/{notificationID}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	if _, err := h.svc.Notification.MarkRead(r.Context(), customerID, chi.URLParam(r, "notificationID")); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	count, err := h.svc.Notification.UnreadCount(r.Context(), customerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, UnreadCountResponse{UnreadCount: count})
}

// MarkAllRead marks the whole inbox read.
//
//	@Summary		Mark all read
//	@Description	Marks every notification for the session customer read
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{object}	UnreadCountResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	if err := h.svc.Notification.MarkAllRead(r.Context(), customerID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, UnreadCountResponse{UnreadCount: 0})
}

// Clear empties the inbox.
//
//	@Summary		Clear notifications
//	@Description	Removes all notifications for the session customer
//	@Tags			notifications
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Router			/notifications [delete]
func (h *NotificationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	if err := h.svc.Notification.Clear(r.Context(), customerID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toNotificationResponse(it models.Item) NotificationResponse {
	return NotificationResponse{
		ID:        it.ID,
		OrderCode: it.OrderCode,
		Status:    it.Status,
		Title:     it.Title,
		Message:   it.Message,
		CreatedAt: it.CreatedAt,
		Read:      it.Read,
	}
}
