package laborder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PlaceRequest struct {
	PatientID string
	Item      string
	Lab       string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service tracks external lab work. Orders stay on the session that placed
// them; Ship announces the arrival to every session over the bus so the
// desktop can pin it to its notification list.
type Service interface {
	List(ctx context.Context) ([]store.LabOrder, error)
	Place(ctx context.Context, req PlaceRequest) (store.LabOrder, error)
	Ship(ctx context.Context, orderID string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type labOrderService struct {
	store *store.Store
	repl  *replication.Replicator
}

func New(st *store.Store, repl *replication.Replicator) Service {
	return &labOrderService{store: st, repl: repl}
}

func (s *labOrderService) List(_ context.Context) ([]store.LabOrder, error) {
	var out []store.LabOrder
	s.store.View(func(st store.State) {
		out = append(out, st.LabOrders...)
	})
	return out, nil
}

func (s *labOrderService) Place(_ context.Context, req PlaceRequest) (store.LabOrder, error) {
	if _, ok := s.store.FindPatient(req.PatientID); !ok {
		return store.LabOrder{}, ErrPatientNotFound
	}
	if req.Item == "" {
		return store.LabOrder{}, ErrItemRequired
	}

	order := store.LabOrder{
		ID:        "LAB-" + uuid.NewString()[:8],
		PatientID: req.PatientID,
		Item:      req.Item,
		Lab:       req.Lab,
		Status:    store.LabOrderPlaced,
		PlacedAt:  time.Now().Format("2006.01.02"),
	}

	s.store.Update(func(st *store.State) {
		st.LabOrders = append(st.LabOrders, order)
	})
	return order, nil
}

func (s *labOrderService) Ship(ctx context.Context, orderID string) error {
	var shipped store.LabOrder
	found := false
	s.store.Update(func(st *store.State) {
		for i := range st.LabOrders {
			if st.LabOrders[i].ID == orderID {
				st.LabOrders[i].Status = store.LabOrderShipped
				st.LabOrders[i].ShippedAt = time.Now().Format("2006.01.02")
				shipped = st.LabOrders[i]
				found = true
				return
			}
		}
	})
	if !found {
		return ErrNotFound
	}

	patientName := ""
	if patient, ok := s.store.FindPatient(shipped.PatientID); ok {
		patientName = patient.Name
	}
	s.repl.Notify(ctx, bus.Event{
		Kind:    bus.EventLabOrderShipped,
		Patient: patientName,
		OrderID: shipped.ID,
		Text:    shipped.Item,
	})
	return nil
}
