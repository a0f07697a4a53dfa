package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thientruong51/asms-booking/pkg/cache"
	"github.com/thientruong51/asms-booking/pkg/logger"
	"github.com/thientruong51/asms-booking/services/notification/domain/models"
	"github.com/thientruong51/asms-booking/services/notification/domain/repositories"
)

// Publisher pushes a freshly appended notification to any live listeners
// for a customer. Implemented by the Redis client; nil-safe via the service.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationService manages per-customer notification ledgers. Every
// operation loads the stored ledger snapshot, applies the change through the
// domain Ledger, and writes the result back. The per-service mutex keeps
// concurrent handlers in one process from interleaving load-modify-store
// cycles; cross-process writes are serialized by the single worker consumer.
type NotificationService struct {
	mu    sync.Mutex
	store repositories.LedgerStore
	pub   Publisher
	log   logger.Logger
}

// NewNotificationService returns a NotificationService backed by the given
// ledger store. pub may be nil when live push is not needed (tests, worker
// without websocket peers).
func NewNotificationService(store repositories.LedgerStore, pub Publisher, log logger.Logger) *NotificationService {
	return &NotificationService{store: store, pub: pub, log: log}
}

// Append records a status-change notification for the customer. Returns true
// when the item was appended, false when it was dropped as a duplicate or
// malformed. Only a real append is persisted and pushed to live listeners.
func (s *NotificationService) Append(ctx context.Context, customerID uuid.UUID, item models.Item) (bool, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.ledger(ctx, customerID)
	if err != nil {
		return false, err
	}
	if !ledger.Add(item) {
		return false, nil
	}
	if err := s.store.Save(ctx, customerID, ledger.All()); err != nil {
		return false, fmt.Errorf("save ledger: %w", err)
	}

	s.push(ctx, customerID, item)
	return true, nil
}

// All returns the customer's notifications, newest first.
func (s *NotificationService) All(ctx context.Context, customerID uuid.UUID) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.ledger(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ledger.All(), nil
}

// Unread returns the customer's unread notifications, newest first.
func (s *NotificationService) Unread(ctx context.Context, customerID uuid.UUID) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.ledger(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ledger.Unread(), nil
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context, customerID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.ledger(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return ledger.UnreadCount(), nil
}

// MarkRead marks one notification read. Returns false when no notification
// with the given id exists; an unknown id is not an error.
func (s *NotificationService) MarkRead(ctx context.Context, customerID uuid.UUID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.ledger(ctx, customerID)
	if err != nil {
		return false, err
	}
	if !ledger.MarkRead(id) {
		return false, nil
	}
	if err := s.store.Save(ctx, customerID, ledger.All()); err != nil {
		return false, fmt.Errorf("save ledger: %w", err)
	}
	return true, nil
}

// MarkAllRead marks every notification read.
func (s *NotificationService) MarkAllRead(ctx context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.ledger(ctx, customerID)
	if err != nil {
		return err
	}
	if ledger.UnreadCount() == 0 {
		return nil
	}
	ledger.MarkAllRead()
	if err := s.store.Save(ctx, customerID, ledger.All()); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// Clear removes all notifications for the customer.
func (s *NotificationService) Clear(ctx context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	return nil
}

// ledger rehydrates the customer's domain Ledger from the stored snapshot.
// Callers must hold s.mu.
func (s *NotificationService) ledger(ctx context.Context, customerID uuid.UUID) (*models.Ledger, error) {
	items, err := s.store.Load(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return models.NewLedgerFromItems(items), nil
}

// push delivers the appended item to live websocket listeners. Push is
// best-effort; a failed publish is logged and the append still stands.
func (s *NotificationService) push(ctx context.Context, customerID uuid.UUID, item models.Item) {
	if s.pub == nil {
		return
	}
	payload, err := json.Marshal(item)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to marshal notification push", "error", err)
		return
	}
	if err := s.pub.Publish(ctx, cache.NotifyChannel(customerID), payload); err != nil {
		s.log.ErrorContext(ctx, "failed to publish notification push", "error", err, "customer_id", customerID)
	}
}
