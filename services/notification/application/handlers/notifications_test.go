package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/pkg/config"
	"github.com/thientruong51/asms-booking/pkg/logger"
	appsvcs "github.com/thientruong51/asms-booking/services/notification/application/services"
	"github.com/thientruong51/asms-booking/services/notification/domain/models"
)

type memLedgerStore struct {
	ledgers map[uuid.UUID][]models.Item
}

func (m *memLedgerStore) Load(_ context.Context, customerID uuid.UUID) ([]models.Item, error) {
	return append([]models.Item(nil), m.ledgers[customerID]...), nil
}

func (m *memLedgerStore) Save(_ context.Context, customerID uuid.UUID, items []models.Item) error {
	m.ledgers[customerID] = append([]models.Item(nil), items...)
	return nil
}

func (m *memLedgerStore) Delete(_ context.Context, customerID uuid.UUID) error {
	delete(m.ledgers, customerID)
	return nil
}

// newTestRouter mounts the inbox routes over an in-memory ledger store, with
// the session middleware replaced by direct context injection.
func newTestRouter(t *testing.T, customerID uuid.UUID) (chi.Router, *appsvcs.Services) {
	t.Helper()

	log := logger.New(&config.Config{LogLevel: "error"})
	store := &memLedgerStore{ledgers: make(map[uuid.UUID][]models.Item)}
	svcs := &appsvcs.Services{
		Notification: appsvcs.NewNotificationService(store, nil, log),
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithCustomerID(req.Context(), customerID)))
		})
	})

	inbox := NewNotificationHandler(svcs)
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", inbox.List)
		r.Delete("/", inbox.Clear)
		r.Get("/unread-count", inbox.UnreadCount)
		r.Post("/read-all", inbox.MarkAllRead)
		r.Post("/{notificationID}/read", inbox.MarkRead)
	})
	return r, svcs
}

func seedNotifications(t *testing.T, svcs *appsvcs.Services, customerID uuid.UUID, items ...models.Item) {
	t.Helper()
	for _, it := range items {
		if _, err := svcs.Notification.Append(context.Background(), customerID, it); err != nil {
			t.Fatalf("seed append: %v", err)
		}
	}
}

func TestNotificationHandler_List(t *testing.T) {
	customerID := uuid.New()
	router, svcs := newTestRouter(t, customerID)
	seedNotifications(t, svcs, customerID,
		models.Item{OrderCode: "ORD-AAAA1111", Status: "received", Title: "Booking received"},
		models.Item{OrderCode: "ORD-AAAA1111", Status: "confirmed", Title: "Order confirmed"},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	var resp NotificationListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Notifications) != 2 {
		t.Fatalf("got %d notifications, want 2", len(resp.Notifications))
	}
	// Newest first.
	if resp.Notifications[0].Status != "confirmed" {
		t.Errorf("first item status = %q, want confirmed", resp.Notifications[0].Status)
	}
	if resp.UnreadCount != 2 {
		t.Errorf("unread_count = %d, want 2", resp.UnreadCount)
	}
}

func TestNotificationHandler_ListUnreadFilter(t *testing.T) {
	customerID := uuid.New()
	router, svcs := newTestRouter(t, customerID)
	seedNotifications(t, svcs, customerID,
		models.Item{OrderCode: "ORD-BBBB2222", Status: "received"},
		models.Item{OrderCode: "ORD-BBBB2222", Status: "confirmed"},
	)

	all, _ := svcs.Notification.All(context.Background(), customerID)
	if _, err := svcs.Notification.MarkRead(context.Background(), customerID, all[0].ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil))

	var resp NotificationListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Notifications) != 1 {
		t.Fatalf("got %d unread notifications, want 1", len(resp.Notifications))
	}
	if resp.Notifications[0].Read {
		t.Error("unread filter returned a read notification")
	}
}

func TestNotificationHandler_MarkReadFlow(t *testing.T) {
	customerID := uuid.New()
	router, svcs := newTestRouter(t, customerID)
	seedNotifications(t, svcs, customerID,
		models.Item{OrderCode: "ORD-CCCC3333", Status: "received"},
		models.Item{OrderCode: "ORD-CCCC3333", Status: "confirmed"},
	)
	all, _ := svcs.Notification.All(context.Background(), customerID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/"+all[1].ID+"/read", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("mark read status = %d, want 200", w.Code)
	}
	var count UnreadCountResponse
	if err := json.Unmarshal(w.Body.Bytes(), &count); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if count.UnreadCount != 1 {
		t.Errorf("unread_count after mark read = %d, want 1", count.UnreadCount)
	}

	// Unknown id is a no-op, not an error.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/no-such-id/read", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unknown id status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("read-all status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &count); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if count.UnreadCount != 0 {
		t.Errorf("unread_count after read-all = %d, want 0", count.UnreadCount)
	}
}

func TestNotificationHandler_Clear(t *testing.T) {
	customerID := uuid.New()
	router, svcs := newTestRouter(t, customerID)
	seedNotifications(t, svcs, customerID,
		models.Item{OrderCode: "ORD-DDDD4444", Status: "received"},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d, want 204", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	var resp NotificationListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Notifications) != 0 {
		t.Errorf("got %d notifications after clear, want 0", len(resp.Notifications))
	}
}

func TestNotificationHandler_NoSession(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})
	store := &memLedgerStore{ledgers: make(map[uuid.UUID][]models.Item)}
	svcs := &appsvcs.Services{Notification: appsvcs.NewNotificationService(store, nil, log)}
	inbox := NewNotificationHandler(svcs)

	w := httptest.NewRecorder()
	inbox.List(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without session = %d, want 401", w.Code)
	}
}
