package models

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

func item(id, orderCode, status string) Item {
	return Item{
		ID:        id,
		OrderCode: orderCode,
		Status:    status,
		Title:     "Order " + orderCode,
		Message:   "Order " + orderCode + " is now " + status,
		CreatedAt: time.Now().UTC(),
	}
}

func TestLedger_Add(t *testing.T) {
	t.Run("prepends newest first", func(t *testing.T) {
		l := NewLedger()
		l.Add(item("n1", "ORD1", "pending"))
		l.Add(item("n2", "ORD2", "pending"))

		all := l.All()
		if len(all) != 2 {
			t.Fatalf("expected 2 items, got %d", len(all))
		}
		if all[0].ID != "n2" || all[1].ID != "n1" {
			t.Fatalf("unexpected order: [%s, %s]", all[0].ID, all[1].ID)
		}
	})

	t.Run("duplicate (order, status) pair is dropped keeping first content", func(t *testing.T) {
		l := NewLedger()
		first := item("n1", "ORD1", "pending")
		first.Title = "original title"
		if !l.Add(first) {
			t.Fatal("expected first insert to succeed")
		}

		dup := item("n2", "ORD1", "pending")
		dup.Title = "newer title"
		if l.Add(dup) {
			t.Fatal("expected duplicate insert to be dropped")
		}

		all := l.All()
		if len(all) != 1 {
			t.Fatalf("expected 1 item, got %d", len(all))
		}
		if all[0].ID != "n1" || all[0].Title != "original title" {
			t.Fatalf("duplicate overwrote existing item: %+v", all[0])
		}
	})

	t.Run("duplicate does not reset read state", func(t *testing.T) {
		l := NewLedger()
		l.Add(item("n1", "ORD1", "pending"))
		l.MarkRead("n1")

		l.Add(item("n2", "ORD1", "pending"))
		if got := l.All()[0]; !got.Read {
			t.Fatalf("duplicate reset read state: %+v", got)
		}
	})

	t.Run("malformed items are no-ops", func(t *testing.T) {
		l := NewLedger()
		cases := []Item{
			{OrderCode: "ORD1", Status: "pending"},
			{ID: "n1", Status: "pending"},
			{ID: "n1", OrderCode: "ORD1"},
			{},
		}
		for _, c := range cases {
			if l.Add(c) {
				t.Fatalf("expected malformed item to be dropped: %+v", c)
			}
		}
		if l.Len() != 0 {
			t.Fatalf("expected empty ledger, got %d", l.Len())
		}
	})

	t.Run("same order different status are distinct", func(t *testing.T) {
		l := NewLedger()
		l.Add(item("n1", "ORD1", "pending"))
		l.Add(item("n2", "ORD1", "shipped"))
		if l.Len() != 2 {
			t.Fatalf("expected 2 items, got %d", l.Len())
		}
	})
}

func TestLedger_CapacityEviction(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 60; i++ {
		l.Add(item(fmt.Sprintf("n%d", i), fmt.Sprintf("ORD%d", i), "pending"))
	}

	all := l.All()
	if len(all) != Capacity {
		t.Fatalf("expected exactly %d items, got %d", Capacity, len(all))
	}

	// The 50 most recent (n10..n59), newest first.
	for i, it := range all {
		want := fmt.Sprintf("n%d", 59-i)
		if it.ID != want {
			t.Fatalf("index %d: expected %s, got %s", i, want, it.ID)
		}
	}

	// Evicted keys are free for re-insertion.
	if !l.Add(item("again", "ORD0", "pending")) {
		t.Fatal("expected evicted (order, status) pair to be insertable again")
	}
}

func TestLedger_ReadState(t *testing.T) {
	t.Run("MarkRead is one-directional and targeted", func(t *testing.T) {
		l := NewLedger()
		l.Add(item("n1", "ORD1", "pending"))
		l.Add(item("n2", "ORD2", "pending"))

		if !l.MarkRead("n1") {
			t.Fatal("expected MarkRead to report a transition")
		}
		if l.MarkRead("n1") {
			t.Fatal("expected second MarkRead to report no transition")
		}
		if l.MarkRead("missing") {
			t.Fatal("expected MarkRead on unknown id to be a no-op")
		}

		if got := l.UnreadCount(); got != 1 {
			t.Fatalf("expected 1 unread, got %d", got)
		}
		unread := l.Unread()
		if len(unread) != 1 || unread[0].ID != "n2" {
			t.Fatalf("unexpected unread set: %+v", unread)
		}
	})

	t.Run("MarkAllRead clears unread", func(t *testing.T) {
		l := NewLedger()
		l.Add(item("n1", "ORD1", "pending"))
		l.Add(item("n2", "ORD2", "pending"))
		l.MarkAllRead()

		if got := l.UnreadCount(); got != 0 {
			t.Fatalf("expected 0 unread, got %d", got)
		}
		for _, it := range l.All() {
			if !it.Read {
				t.Fatalf("expected all read, got %+v", it)
			}
		}
	})

	t.Run("Clear empties the ledger", func(t *testing.T) {
		l := NewLedger()
		l.Add(item("n1", "ORD1", "pending"))
		l.Clear()
		if l.Len() != 0 || l.UnreadCount() != 0 {
			t.Fatalf("expected empty ledger, got len=%d unread=%d", l.Len(), l.UnreadCount())
		}
		if !l.Add(item("n2", "ORD1", "pending")) {
			t.Fatal("expected cleared key to be insertable again")
		}
	})
}

// TestLedger_InboxScenario walks the concrete dedup and ordering sequence the
// badge UI depends on.
func TestLedger_InboxScenario(t *testing.T) {
	l := NewLedger()

	l.Add(item("n1", "ORD1", "pending"))
	l.Add(item("n2", "ORD1", "pending"))
	if all := l.All(); len(all) != 1 || all[0].ID != "n1" {
		t.Fatalf("expected [n1], got %+v", all)
	}

	l.Add(item("n3", "ORD1", "shipped"))
	all := l.All()
	if len(all) != 2 || all[0].ID != "n3" || all[1].ID != "n1" {
		t.Fatalf("expected [n3, n1], got %+v", all)
	}

	l.MarkAllRead()
	for _, it := range l.All() {
		if !it.Read {
			t.Fatalf("expected read=true, got %+v", it)
		}
	}
	if got := l.UnreadCount(); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}
}

// TestLedger_UnreadCountProperty interleaves random operations and checks
// UnreadCount always equals len(Unread).
func TestLedger_UnreadCountProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := NewLedger()

	for op := 0; op < 500; op++ {
		switch rng.Intn(4) {
		case 0:
			n := rng.Intn(80)
			l.Add(item(fmt.Sprintf("n%d", op), fmt.Sprintf("ORD%d", n), "pending"))
		case 1:
			l.MarkRead(fmt.Sprintf("n%d", rng.Intn(op+1)))
		case 2:
			if rng.Intn(10) == 0 {
				l.MarkAllRead()
			}
		case 3:
			if rng.Intn(25) == 0 {
				l.Clear()
			}
		}

		if got, want := l.UnreadCount(), len(l.Unread()); got != want {
			t.Fatalf("op %d: UnreadCount %d != len(Unread) %d", op, got, want)
		}
		if l.Len() > Capacity {
			t.Fatalf("op %d: ledger grew past capacity: %d", op, l.Len())
		}
	}
}

func TestNewLedgerFromItems(t *testing.T) {
	snapshot := []Item{
		item("n3", "ORD1", "shipped"),
		item("n1", "ORD1", "pending"),
		{ID: "bad", OrderCode: "", Status: "pending"},
		item("dup", "ORD1", "pending"),
	}
	l := NewLedgerFromItems(snapshot)

	all := l.All()
	if len(all) != 2 || all[0].ID != "n3" || all[1].ID != "n1" {
		t.Fatalf("unexpected rebuilt ledger: %+v", all)
	}
	if l.Add(item("n9", "ORD1", "shipped")) {
		t.Fatal("expected rebuilt dedup index to reject known pair")
	}
}
