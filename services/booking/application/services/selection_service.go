package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/thientruong51/asms-booking/pkg/cache"
	"github.com/thientruong51/asms-booking/pkg/logger"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

// SelectionView is the selection state reported to the UI after every change:
// the full selection sequence plus the running total.
type SelectionView struct {
	Items []models.Selection `json:"items"`
	Total int64              `json:"total"`
}

// SnapshotStore persists per-customer draft snapshots between processes.
// Implemented by pkg/cache's Redis-backed SelectionCache.
type SnapshotStore interface {
	Get(ctx context.Context, customerID uuid.UUID) (*pkgcache.SelectionSnapshot, error)
	Set(ctx context.Context, snap *pkgcache.SelectionSnapshot) error
	Delete(ctx context.Context, customerID uuid.UUID) error
}

const (
	// draftIdleTTL matches the Redis snapshot TTL: once the in-memory entry
	// is evicted, a returning customer rehydrates from the snapshot until
	// that expires too.
	draftIdleTTL = pkgcache.SelectionCacheTTL

	draftSweepInterval = time.Minute
)

// draftEntry is one registry slot: the aggregator plus its last touch, so
// abandoned anonymous sessions can be evicted.
type draftEntry struct {
	set      *models.SelectionSet
	lastSeen time.Time
}

// SelectionService owns one SelectionSet per customer session. Aggregators
// live in process memory; every change is written through to Redis so a
// restarted API rebuilds the draft instead of losing it. Entries idle past
// draftIdleTTL are evicted opportunistically on lookup.
type SelectionService struct {
	mu        sync.Mutex
	drafts    map[uuid.UUID]*draftEntry
	lastSweep time.Time
	idleTTL   time.Duration
	catalog   *CatalogService
	cache     SnapshotStore
	log       logger.Logger
}

// NewSelectionService returns a SelectionService with an empty draft registry.
func NewSelectionService(catalog *CatalogService, cache SnapshotStore, log logger.Logger) *SelectionService {
	return &SelectionService{
		drafts:  make(map[uuid.UUID]*draftEntry),
		idleTTL: draftIdleTTL,
		catalog: catalog,
		cache:   cache,
		log:     log,
	}
}

// Toggle flips the presence of offeringID in the customer's draft and returns
// the resulting view.
func (s *SelectionService) Toggle(ctx context.Context, customerID uuid.UUID, offeringID string) (*SelectionView, error) {
	draft, err := s.draftFor(ctx, customerID)
	if err != nil {
		return nil, err
	}
	draft.Toggle(offeringID)
	return viewOf(draft), nil
}

// ChangeQuantity adjusts the quantity of a selected offering by delta.
// A delta against an unselected offering is a no-op, mirroring the UI race
// between a toggle-off and a pending quantity click.
func (s *SelectionService) ChangeQuantity(ctx context.Context, customerID uuid.UUID, offeringID string, delta int) (*SelectionView, error) {
	draft, err := s.draftFor(ctx, customerID)
	if err != nil {
		return nil, err
	}
	draft.ChangeQuantity(offeringID, delta)
	return viewOf(draft), nil
}

// SetGoodsCategories replaces the goods-category tags of a selected offering.
func (s *SelectionService) SetGoodsCategories(ctx context.Context, customerID uuid.UUID, offeringID string, categoryIDs []string) (*SelectionView, error) {
	draft, err := s.draftFor(ctx, customerID)
	if err != nil {
		return nil, err
	}
	draft.SetGoodsCategories(offeringID, categoryIDs)
	return viewOf(draft), nil
}

// View returns the current draft without mutating it.
func (s *SelectionService) View(ctx context.Context, customerID uuid.UUID) (*SelectionView, error) {
	draft, err := s.draftFor(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return viewOf(draft), nil
}

// Items returns the current selections for booking submission.
func (s *SelectionService) Items(ctx context.Context, customerID uuid.UUID) ([]models.Selection, error) {
	draft, err := s.draftFor(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return draft.Items(), nil
}

// ClearDraft empties the customer's draft and drops its write-through snapshot.
// Called after a successful booking submission.
func (s *SelectionService) ClearDraft(ctx context.Context, customerID uuid.UUID) {
	s.mu.Lock()
	entry, ok := s.drafts[customerID]
	delete(s.drafts, customerID)
	s.mu.Unlock()

	if ok {
		entry.set.Clear()
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, customerID); err != nil {
			s.log.WarnContext(ctx, "failed to drop selection snapshot", "customer_id", customerID, "error", err)
		}
	}
}

// draftFor returns the customer's aggregator, creating it on first use.
// A cold process first tries the Redis snapshot so drafts survive restarts.
func (s *SelectionService) draftFor(ctx context.Context, customerID uuid.UUID) (*models.SelectionSet, error) {
	now := time.Now()

	s.mu.Lock()
	s.evictIdleLocked(now)
	if entry, ok := s.drafts[customerID]; ok {
		entry.lastSeen = now
		s.mu.Unlock()
		return entry.set, nil
	}
	s.mu.Unlock()

	// Build outside the registry lock: catalog and cache reads do I/O.
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog for draft: %w", err)
	}

	var stored []models.Selection
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, customerID)
		switch {
		case err == nil:
			stored = cached.Items
		case errors.Is(err, redis.Nil):
			// No stored draft; start empty.
		default:
			s.log.WarnContext(ctx, "selection snapshot read failed, starting empty",
				"customer_id", customerID, "error", err)
		}
	}

	draft := models.RestoreSelectionSet(snap, stored, s.writeThrough(customerID))

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.drafts[customerID]; ok {
		// Lost the build race; keep the first one.
		existing.lastSeen = now
		return existing.set, nil
	}
	s.drafts[customerID] = &draftEntry{set: draft, lastSeen: now}
	return draft, nil
}

// evictIdleLocked drops registry entries idle past the TTL. Sweeps run at
// most once per draftSweepInterval. Callers must hold s.mu. The Redis
// snapshot is untouched; a returning customer rehydrates from it.
func (s *SelectionService) evictIdleLocked(now time.Time) {
	if now.Sub(s.lastSweep) < draftSweepInterval {
		return
	}
	s.lastSweep = now
	for id, entry := range s.drafts {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.drafts, id)
		}
	}
}

// writeThrough returns the change callback that mirrors every draft mutation
// into Redis. The write is synchronous: the aggregate mutex is already
// released when the callback runs, and an in-flight write must not be able to
// overtake a later write or ClearDraft's delete. Failures are logged; the
// draft in memory remains authoritative.
func (s *SelectionService) writeThrough(customerID uuid.UUID) models.ChangeFunc {
	return func(items []models.Selection, total int64) {
		if s.cache == nil {
			return
		}
		err := s.cache.Set(context.Background(), &pkgcache.SelectionSnapshot{
			CustomerID: customerID,
			Items:      items,
			Total:      total,
			UpdatedAt:  time.Now().UTC(),
		})
		if err != nil {
			s.log.Warn("selection snapshot write failed", "customer_id", customerID, "error", err)
		}
	}
}

func viewOf(draft *models.SelectionSet) *SelectionView {
	return &SelectionView{Items: draft.Items(), Total: draft.Total()}
}
