package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/thientruong51/asms-booking/services/notification/domain/models"
)

const ledgerKeyPrefix = "ledger"

// NotifyChannel returns the Redis pub/sub channel carrying live notification
// pushes for one customer.
func NotifyChannel(customerID uuid.UUID) string {
	return "notify:" + customerID.String()
}

// LedgerStore persists per-customer notification ledger snapshots as JSON
// values. It implements the notification domain's LedgerStore interface.
// Ledgers have no TTL: they are the system of record for the inbox, bounded
// by the ledger's own capacity.
//
// Key format: "ledger:{customerID}"
type LedgerStore struct {
	client *RedisClient
}

// NewLedgerStore creates a LedgerStore backed by the given RedisClient.
func NewLedgerStore(r *RedisClient) *LedgerStore {
	return &LedgerStore{client: r}
}

// Load retrieves the stored snapshot for a customer, newest first.
// A customer with no stored ledger yields an empty slice.
func (s *LedgerStore) Load(ctx context.Context, customerID uuid.UUID) ([]models.Item, error) {
	raw, err := s.client.Client().Get(ctx, s.key(customerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger store load: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("ledger store decode: %w", err)
	}
	return items, nil
}

// Save replaces the stored snapshot for a customer.
func (s *LedgerStore) Save(ctx context.Context, customerID uuid.UUID, items []models.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("ledger store encode: %w", err)
	}
	if err := s.client.Client().Set(ctx, s.key(customerID), raw, 0).Err(); err != nil {
		return fmt.Errorf("ledger store save: %w", err)
	}
	return nil
}

// Delete removes the stored snapshot for a customer.
func (s *LedgerStore) Delete(ctx context.Context, customerID uuid.UUID) error {
	if err := s.client.Client().Del(ctx, s.key(customerID)).Err(); err != nil {
		return fmt.Errorf("ledger store delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "ledger:{customerID}"
func (s *LedgerStore) key(customerID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", ledgerKeyPrefix, customerID)
}
