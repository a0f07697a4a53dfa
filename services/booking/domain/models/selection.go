package models

import "sync"

// Selection is one chosen offering in a customer's booking draft: the offering,
// how many boxes of it, and which goods categories the customer plans to store.
// UnitPrice is snapshotted when the offering is first toggled on; later catalog
// price changes do not affect an existing selection.
type Selection struct {
	OfferingID         string   `json:"offering_id"`
	Quantity           int      `json:"quantity"`
	UnitPrice          int64    `json:"unit_price"`
	GoodsCategoryIDs   []string `json:"goods_category_ids"`
	GoodsCategoryNames []string `json:"goods_category_names"`
}

// Subtotal returns unit price × quantity for this selection.
func (s Selection) Subtotal() int64 {
	return s.UnitPrice * int64(s.Quantity)
}

// ChangeFunc receives the full current selection list and running total,
// synchronously, immediately after every mutation of a SelectionSet.
type ChangeFunc func(items []Selection, total int64)

// SelectionSet tracks which offerings a customer has chosen during booking.
// At most one Selection exists per offering id. Every mutating method fires
// the change callback after the mutation; there is no batching.
//
// All entry points share one mutex so concurrent calls from a multi-threaded
// host cannot interleave a read-modify-write on the same key.
type SelectionSet struct {
	mu       sync.Mutex
	catalog  Catalog
	entries  map[string]*Selection
	order    []string // offering ids in toggle-on order, for a stable Items() sequence
	onChange ChangeFunc
}

// NewSelectionSet returns an empty SelectionSet reading prices and category
// names from catalog. onChange may be nil when no parent needs change reports.
func NewSelectionSet(catalog Catalog, onChange ChangeFunc) *SelectionSet {
	return &SelectionSet{
		catalog:  catalog,
		entries:  make(map[string]*Selection),
		onChange: onChange,
	}
}

// RestoreSelectionSet rebuilds a SelectionSet from a previously captured
// snapshot, keeping the stored price snapshots and category sets. The change
// callback does not fire during restore. Entries with quantity below 1 are
// clamped; duplicate offering ids after the first are dropped.
func RestoreSelectionSet(catalog Catalog, items []Selection, onChange ChangeFunc) *SelectionSet {
	ss := NewSelectionSet(catalog, onChange)
	for _, it := range items {
		if _, dup := ss.entries[it.OfferingID]; dup || it.OfferingID == "" {
			continue
		}
		cp := it
		if cp.Quantity < 1 {
			cp.Quantity = 1
		}
		cp.GoodsCategoryIDs = append([]string(nil), it.GoodsCategoryIDs...)
		cp.GoodsCategoryNames = append([]string(nil), it.GoodsCategoryNames...)
		ss.entries[cp.OfferingID] = &cp
		ss.order = append(ss.order, cp.OfferingID)
	}
	return ss
}

// Toggle flips the presence of offeringID. When absent it is added with
// quantity 1, an empty goods-category set, and the offering's current catalog
// price as the snapshot (0 when the catalog does not know the id). When
// present it is removed entirely, including quantity and categories.
func (ss *SelectionSet) Toggle(offeringID string) {
	ss.mu.Lock()
	if _, ok := ss.entries[offeringID]; ok {
		delete(ss.entries, offeringID)
		for i, id := range ss.order {
			if id == offeringID {
				ss.order = append(ss.order[:i], ss.order[i+1:]...)
				break
			}
		}
	} else {
		var price int64
		if ss.catalog != nil {
			if o := ss.catalog.OfferingByID(offeringID); o != nil {
				price = o.UnitPrice
			}
		}
		ss.entries[offeringID] = &Selection{
			OfferingID:       offeringID,
			Quantity:         1,
			UnitPrice:        price,
			GoodsCategoryIDs: []string{},
		}
		ss.order = append(ss.order, offeringID)
	}
	ss.notifyLocked()
}

// ChangeQuantity adjusts the quantity of an existing selection by delta,
// flooring at 1. Calls on an offering that is not selected are no-ops; the UI
// may race a toggle-off against a pending quantity click and must not fail.
func (ss *SelectionSet) ChangeQuantity(offeringID string, delta int) {
	ss.mu.Lock()
	sel, ok := ss.entries[offeringID]
	if !ok {
		ss.mu.Unlock()
		return
	}
	sel.Quantity += delta
	if sel.Quantity < 1 {
		sel.Quantity = 1
	}
	ss.notifyLocked()
}

// SetGoodsCategories replaces the goods-category id set of an existing
// selection wholesale, deduplicating ids while preserving first occurrence.
// Display names are derived by catalog lookup; ids the catalog does not know
// stay in the id set but contribute no name. No-op when offeringID is not
// selected.
func (ss *SelectionSet) SetGoodsCategories(offeringID string, categoryIDs []string) {
	ss.mu.Lock()
	sel, ok := ss.entries[offeringID]
	if !ok {
		ss.mu.Unlock()
		return
	}

	ids := make([]string, 0, len(categoryIDs))
	seen := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	names := make([]string, 0, len(ids))
	if ss.catalog != nil {
		for _, id := range ids {
			if c := ss.catalog.GoodsCategoryByID(id); c != nil {
				names = append(names, c.Name)
			}
		}
	}

	sel.GoodsCategoryIDs = ids
	sel.GoodsCategoryNames = names
	ss.notifyLocked()
}

// Clear removes every selection. Used after a booking is submitted.
func (ss *SelectionSet) Clear() {
	ss.mu.Lock()
	ss.entries = make(map[string]*Selection)
	ss.order = nil
	ss.notifyLocked()
}

// Total returns the sum of unit price snapshot × quantity over all selections.
func (ss *SelectionSet) Total() int64 {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.totalLocked()
}

// Items returns the current selections as a sequence in toggle-on order.
// The returned slice and its entries are copies; mutating them does not
// affect the set.
func (ss *SelectionSet) Items() []Selection {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.itemsLocked()
}

// Len returns the number of selected offerings.
func (ss *SelectionSet) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.entries)
}

func (ss *SelectionSet) totalLocked() int64 {
	var total int64
	for _, sel := range ss.entries {
		total += sel.Subtotal()
	}
	return total
}

func (ss *SelectionSet) itemsLocked() []Selection {
	out := make([]Selection, 0, len(ss.order))
	for _, id := range ss.order {
		sel := ss.entries[id]
		cp := *sel
		cp.GoodsCategoryIDs = append([]string(nil), sel.GoodsCategoryIDs...)
		cp.GoodsCategoryNames = append([]string(nil), sel.GoodsCategoryNames...)
		out = append(out, cp)
	}
	return out
}

// notifyLocked snapshots state, releases the mutex, then fires the callback.
// The callback runs outside the lock so it may call back into the set.
func (ss *SelectionSet) notifyLocked() {
	items := ss.itemsLocked()
	total := ss.totalLocked()
	ss.mu.Unlock()
	if ss.onChange != nil {
		ss.onChange(items, total)
	}
}
