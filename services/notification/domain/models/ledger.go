package models

import (
	"sync"
	"time"
)

// Capacity is the maximum number of items a Ledger retains. Inserting past
// capacity evicts the oldest items.
const Capacity = 50

// Item is one order status-change notification in a customer's inbox.
// After creation only the Read flag ever changes, and only from false to true.
type Item struct {
	ID        string    `json:"id"`
	OrderCode string    `json:"order_code"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// dedupKey suppresses repeat deliveries of the same status change.
type dedupKey struct {
	orderCode string
	status    string
}

// Ledger is a bounded, newest-first sequence of notification Items for one
// customer. Invariants:
//
//   - No two items share the same (order code, status) pair; a duplicate Add
//     is silently dropped, keeping the existing item's content and read state.
//   - Size never exceeds Capacity; overflow evicts from the tail (oldest).
//   - The newest item is always at index 0.
//
// All entry points share one mutex so a multi-threaded host cannot interleave
// two Adds on the same key.
type Ledger struct {
	mu    sync.Mutex
	items []Item
	keys  map[dedupKey]struct{}
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{keys: make(map[dedupKey]struct{})}
}

// NewLedgerFromItems rebuilds a Ledger from a previously captured snapshot,
// preserving order, dropping duplicate (order code, status) pairs after the
// first, and truncating past capacity. Malformed items are skipped.
func NewLedgerFromItems(items []Item) *Ledger {
	l := NewLedger()
	for _, it := range items {
		if len(l.items) >= Capacity {
			break
		}
		if it.ID == "" || it.OrderCode == "" || it.Status == "" {
			continue
		}
		k := dedupKey{it.OrderCode, it.Status}
		if _, dup := l.keys[k]; dup {
			continue
		}
		l.keys[k] = struct{}{}
		l.items = append(l.items, it)
	}
	return l
}

// Add prepends item to the ledger. The call is a no-op when an item with the
// same (order code, status) pair already exists — the newer duplicate's
// content is discarded — or when the item is malformed (missing ID, order
// code, or status). Overflow past capacity evicts from the tail.
// Returns true when the item was inserted.
func (l *Ledger) Add(item Item) bool {
	if item.ID == "" || item.OrderCode == "" || item.Status == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	k := dedupKey{item.OrderCode, item.Status}
	if _, dup := l.keys[k]; dup {
		return false
	}

	l.keys[k] = struct{}{}
	l.items = append([]Item{item}, l.items...)
	if len(l.items) > Capacity {
		for _, evicted := range l.items[Capacity:] {
			delete(l.keys, dedupKey{evicted.OrderCode, evicted.Status})
		}
		l.items = l.items[:Capacity]
	}
	return true
}

// MarkRead sets the read flag on the item with the given id.
// No-op when no such item exists. Returns true when an item transitioned.
func (l *Ledger) MarkRead(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID == id {
			changed := !l.items[i].Read
			l.items[i].Read = true
			return changed
		}
	}
	return false
}

// MarkAllRead sets the read flag on every item.
func (l *Ledger) MarkAllRead() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		l.items[i].Read = true
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.keys = make(map[dedupKey]struct{})
}

// All returns the full sequence, newest first. The slice is a copy.
func (l *Ledger) All() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Item(nil), l.items...)
}

// Unread returns the unread subsequence, newest first.
func (l *Ledger) Unread() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Item, 0, len(l.items))
	for _, it := range l.items {
		if !it.Read {
			out = append(out, it)
		}
	}
	return out
}

// UnreadCount returns the number of unread items. Always recomputed from the
// sequence, so it cannot drift from len(Unread()).
func (l *Ledger) UnreadCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, it := range l.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// Len returns the total number of items.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
