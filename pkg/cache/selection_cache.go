package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

const (
	// SelectionCacheTTL bounds how long an abandoned booking draft survives.
	SelectionCacheTTL = 24 * time.Hour

	selectionKeyPrefix = "selection"
)

// SelectionSnapshot is the denormalized read model of a customer's booking
// draft, written through on every selection change so other processes (and a
// restarted API) can see the live draft.
type SelectionSnapshot struct {
	CustomerID uuid.UUID          `json:"customer_id"`
	Items      []models.Selection `json:"items"`
	Total      int64              `json:"total"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// SelectionCache stores one SelectionSnapshot per customer as a JSON value.
// Key format: "selection:{customerID}"
type SelectionCache struct {
	client *RedisClient
}

// NewSelectionCache creates a SelectionCache backed by the given RedisClient.
func NewSelectionCache(r *RedisClient) *SelectionCache {
	return &SelectionCache{client: r}
}

// Get retrieves the snapshot for a customer.
// Returns redis.Nil error when no draft exists or it has expired.
func (c *SelectionCache) Get(ctx context.Context, customerID uuid.UUID) (*SelectionSnapshot, error) {
	raw, err := c.client.Client().Get(ctx, c.key(customerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("selection cache get: %w", err)
	}

	var snap SelectionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("selection cache decode: %w", err)
	}
	return &snap, nil
}

// Set writes the snapshot with the draft TTL.
func (c *SelectionCache) Set(ctx context.Context, snap *SelectionSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("selection cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(snap.CustomerID), raw, SelectionCacheTTL).Err(); err != nil {
		return fmt.Errorf("selection cache set: %w", err)
	}
	return nil
}

// Delete removes a customer's draft snapshot.
func (c *SelectionCache) Delete(ctx context.Context, customerID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(customerID)).Err(); err != nil {
		return fmt.Errorf("selection cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "selection:{customerID}"
func (c *SelectionCache) key(customerID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", selectionKeyPrefix, customerID)
}
