package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

func itemStock(t *testing.T, st *store.Store, id string) int {
	t.Helper()
	stock := -1
	st.View(func(s store.State) {
		for _, it := range s.Inventory {
			if it.ID == id {
				stock = it.Stock
			}
		}
	})
	if stock < 0 {
		t.Fatalf("item %s not found", id)
	}
	return stock
}

func TestUseClampsAtZero(t *testing.T) {
	tests := []struct {
		name  string
		item  string
		qty   int
		want  int
		start int
	}{
		{"normal deduction", "I003", 3, 5, 8},
		{"deduct to exactly zero", "I002", 3, 0, 3},
		{"deduct past zero clamps", "I002", 50, 0, 3},
		{"zero quantity counts as one", "I003", 0, 7, 8},
		{"negative quantity counts as one", "I003", -5, 7, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewSeeded()
			svc := New(st)

			if got := itemStock(t, st, tt.item); got != tt.start {
				t.Fatalf("seed stock = %d, want %d", got, tt.start)
			}
			if err := svc.Use(context.Background(), tt.item, tt.qty); err != nil {
				t.Fatalf("Use: %v", err)
			}
			if got := itemStock(t, st, tt.item); got != tt.want {
				t.Errorf("stock = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUseUnknownItem(t *testing.T) {
	svc := New(store.NewSeeded())
	if err := svc.Use(context.Background(), "I999", 1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
}

func TestAlertsRecomputedFromScratch(t *testing.T) {
	st := store.NewSeeded()
	svc := New(st)
	ctx := context.Background()

	// Seed ships with I002 at 3/5, below minimum.
	alerts := svc.Alerts(ctx)
	if len(alerts) != 1 || alerts[0].ItemID != "I002" {
		t.Fatalf("seed alerts = %+v, want only I002", alerts)
	}

	// Restocking above minimum clears its alert entirely.
	if err := svc.Restock(ctx, "I002", 10); err != nil {
		t.Fatalf("Restock: %v", err)
	}
	if alerts := svc.Alerts(ctx); len(alerts) != 0 {
		t.Errorf("alerts after restock = %+v, want none", alerts)
	}

	// Draining another item below its minimum raises a fresh alert.
	if err := svc.Use(ctx, "I003", 7); err != nil {
		t.Fatalf("Use: %v", err)
	}
	alerts = svc.Alerts(ctx)
	if len(alerts) != 1 || alerts[0].ItemID != "I003" {
		t.Errorf("alerts = %+v, want only I003", alerts)
	}
}

func TestRestockRejectsNonPositive(t *testing.T) {
	svc := New(store.NewSeeded())
	for _, qty := range []int{0, -3} {
		if err := svc.Restock(context.Background(), "I001", qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Restock(%d) err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
}

func TestAddItem(t *testing.T) {
	st := store.NewSeeded()
	svc := New(st)
	ctx := context.Background()

	item, err := svc.Add(ctx, AddRequest{Name: "Composite Resin", Category: "Restorative", Stock: 2, MinStock: 4, Unit: "syringe"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if item.ID == "" {
		t.Error("added item has no id")
	}

	// The new item is already below minimum, so the rebuilt alert list
	// picks it up alongside the seeded shortage.
	alerts := svc.Alerts(ctx)
	found := false
	for _, a := range alerts {
		if a.ItemID == item.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("alerts = %+v, want one for %s", alerts, item.ID)
	}

	if _, err := svc.Add(ctx, AddRequest{Name: ""}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("err = %v, want ErrNameRequired", err)
	}
}
