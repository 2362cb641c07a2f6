package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AddRequest struct {
	Name     string
	Category string
	Stock    int
	MinStock int
	Unit     string
	Batch    string
}

// Alert marks one item at or below its minimum stock. The list is derived
// state: it is rebuilt from scratch after every stock change and is never
// patched incrementally.
type Alert struct {
	Type    string `json:"type"`
	ItemID  string `json:"itemId"`
	Message string `json:"message"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service is the consumable stock ledger. Inventory is session-local
// state: it never travels in snapshots, so there is no broadcast here.
type Service interface {
	List(ctx context.Context) ([]store.InventoryItem, error)
	Alerts(ctx context.Context) []Alert
	// Use deducts qty units, clamping at zero. Deducting past the
	// available stock is not an error; there is no backorder concept.
	Use(ctx context.Context, itemID string, qty int) error
	Restock(ctx context.Context, itemID string, qty int) error
	Add(ctx context.Context, req AddRequest) (store.InventoryItem, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type inventoryService struct {
	store *store.Store

	mu     sync.Mutex
	alerts []Alert
}

func New(st *store.Store) Service {
	s := &inventoryService{store: st}
	s.recomputeAlerts()
	return s
}

func (s *inventoryService) List(_ context.Context) ([]store.InventoryItem, error) {
	var out []store.InventoryItem
	s.store.View(func(st store.State) {
		out = append(out, st.Inventory...)
	})
	return out, nil
}

func (s *inventoryService) Alerts(_ context.Context) []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Alert(nil), s.alerts...)
}

func (s *inventoryService) Use(_ context.Context, itemID string, qty int) error {
	if qty <= 0 {
		qty = 1
	}
	if err := s.mutate(itemID, func(it *store.InventoryItem) {
		it.Stock = max(0, it.Stock-qty)
	}); err != nil {
		return err
	}
	s.recomputeAlerts()
	return nil
}

func (s *inventoryService) Restock(_ context.Context, itemID string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if err := s.mutate(itemID, func(it *store.InventoryItem) {
		it.Stock += qty
	}); err != nil {
		return err
	}
	s.recomputeAlerts()
	return nil
}

func (s *inventoryService) Add(_ context.Context, req AddRequest) (store.InventoryItem, error) {
	if req.Name == "" {
		return store.InventoryItem{}, ErrNameRequired
	}
	item := store.InventoryItem{
		ID:       "I-" + uuid.NewString(),
		Name:     req.Name,
		Category: req.Category,
		Stock:    max(0, req.Stock),
		MinStock: req.MinStock,
		Unit:     req.Unit,
		Batch:    req.Batch,
	}
	s.store.Update(func(st *store.State) {
		st.Inventory = append(st.Inventory, item)
	})
	s.recomputeAlerts()
	return item, nil
}

func (s *inventoryService) mutate(itemID string, fn func(*store.InventoryItem)) error {
	found := false
	s.store.Update(func(st *store.State) {
		for i := range st.Inventory {
			if st.Inventory[i].ID == itemID {
				fn(&st.Inventory[i])
				found = true
				return
			}
		}
	})
	if !found {
		return ErrItemNotFound
	}
	return nil
}

// recomputeAlerts discards the previous alert list and rebuilds it. An
// item alerts iff stock <= minStock.
func (s *inventoryService) recomputeAlerts() {
	var alerts []Alert
	s.store.View(func(st store.State) {
		for _, it := range st.Inventory {
			if it.Stock <= it.MinStock {
				alerts = append(alerts, Alert{
					Type:    "low_stock",
					ItemID:  it.ID,
					Message: fmt.Sprintf("%s is low on stock (%d).", it.Name, it.Stock),
				})
			}
		}
	})

	s.mu.Lock()
	s.alerts = alerts
	s.mu.Unlock()
}
