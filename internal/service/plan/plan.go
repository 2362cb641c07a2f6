package plan

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

type ItemRequest struct {
	Name      string
	UnitPrice int64
	Teeth     []int
}

type CreateRequest struct {
	PatientID string
	Title     string
	Items     []ItemRequest
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service manages treatment plans. Status transitions are unconditional:
// Propose, Approve and Reject set the target status whatever the current
// one is, so a doctor can push an active plan back to review or re-approve
// a rejected one without a reset step.
type Service interface {
	List(ctx context.Context, patientID string) ([]store.TreatmentPlan, error)
	GetByID(ctx context.Context, planID string) (store.TreatmentPlan, error)
	Create(ctx context.Context, req CreateRequest) (store.TreatmentPlan, error)
	Propose(ctx context.Context, planID string) error
	Approve(ctx context.Context, planID string) error
	Reject(ctx context.Context, planID string) error
	// SetItemTeeth replaces an item's tooth selection and reprices it.
	// An item always bills at least one unit even with no teeth selected.
	SetItemTeeth(ctx context.Context, planID, itemID string, teeth []int) (store.PlanItem, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type planService struct {
	store *store.Store
	repl  *replication.Replicator
}

func New(st *store.Store, repl *replication.Replicator) Service {
	return &planService{store: st, repl: repl}
}

func (s *planService) List(_ context.Context, patientID string) ([]store.TreatmentPlan, error) {
	var out []store.TreatmentPlan
	s.store.View(func(st store.State) {
		for _, p := range st.TreatmentPlans {
			if patientID == "" || p.PatientID == patientID {
				out = append(out, p)
			}
		}
	})
	return out, nil
}

func (s *planService) GetByID(_ context.Context, planID string) (store.TreatmentPlan, error) {
	var found *store.TreatmentPlan
	s.store.View(func(st store.State) {
		for _, p := range st.TreatmentPlans {
			if p.ID == planID {
				cp := p
				found = &cp
				return
			}
		}
	})
	if found == nil {
		return store.TreatmentPlan{}, ErrNotFound
	}
	return *found, nil
}

func (s *planService) Create(ctx context.Context, req CreateRequest) (store.TreatmentPlan, error) {
	patient, ok := s.store.FindPatient(req.PatientID)
	if !ok {
		return store.TreatmentPlan{}, ErrPatientNotFound
	}
	if req.Title == "" {
		return store.TreatmentPlan{}, ErrTitleRequired
	}
	if len(req.Items) == 0 {
		return store.TreatmentPlan{}, ErrNoItems
	}

	items := make([]store.PlanItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, store.PlanItem{
			ID:        uuid.NewString(),
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Teeth:     append([]int(nil), it.Teeth...),
			Cost:      itemCost(it.UnitPrice, it.Teeth),
		})
	}

	p := store.TreatmentPlan{
		ID:        "T-" + uuid.NewString()[:8],
		PatientID: req.PatientID,
		Title:     req.Title,
		Status:    store.PlanProposing,
		Items:     items,
		CreatedAt: time.Now().Format("2006.01.02"),
	}

	s.store.Update(func(st *store.State) {
		st.TreatmentPlans = append(st.TreatmentPlans, p)
	})

	s.repl.Broadcast(ctx, store.SliceTreatmentPlans)
	s.repl.Notify(ctx, bus.Event{
		Kind:    bus.EventPlanProposed,
		Patient: patient.Name,
		PlanID:  p.ID,
	})
	return p, nil
}

// Propose pushes an existing plan back into review, whatever its current
// status, and announces it to the other sessions.
func (s *planService) Propose(ctx context.Context, planID string) error {
	p, err := s.setStatus(planID, store.PlanProposing)
	if err != nil {
		return err
	}
	s.repl.Broadcast(ctx, store.SliceTreatmentPlans)
	patientName := ""
	if patient, ok := s.store.FindPatient(p.PatientID); ok {
		patientName = patient.Name
	}
	s.repl.Notify(ctx, bus.Event{
		Kind:    bus.EventPlanProposed,
		Patient: patientName,
		PlanID:  p.ID,
	})
	return nil
}

func (s *planService) Approve(ctx context.Context, planID string) error {
	p, err := s.setStatus(planID, store.PlanActive)
	if err != nil {
		return err
	}
	s.repl.Broadcast(ctx, store.SliceTreatmentPlans)
	patientName := ""
	if patient, ok := s.store.FindPatient(p.PatientID); ok {
		patientName = patient.Name
	}
	s.repl.Notify(ctx, bus.Event{
		Kind:    bus.EventPlanApproved,
		Patient: patientName,
		PlanID:  p.ID,
	})
	return nil
}

func (s *planService) Reject(ctx context.Context, planID string) error {
	if _, err := s.setStatus(planID, store.PlanRejected); err != nil {
		return err
	}
	s.repl.Broadcast(ctx, store.SliceTreatmentPlans)
	return nil
}

func (s *planService) SetItemTeeth(ctx context.Context, planID, itemID string, teeth []int) (store.PlanItem, error) {
	var updated store.PlanItem
	var planFound, itemFound bool
	s.store.Update(func(st *store.State) {
		for i := range st.TreatmentPlans {
			if st.TreatmentPlans[i].ID != planID {
				continue
			}
			planFound = true
			for j := range st.TreatmentPlans[i].Items {
				item := &st.TreatmentPlans[i].Items[j]
				if item.ID != itemID {
					continue
				}
				item.Teeth = append([]int(nil), teeth...)
				item.Cost = itemCost(item.UnitPrice, item.Teeth)
				updated = *item
				itemFound = true
				return
			}
			return
		}
	})
	if !planFound {
		return store.PlanItem{}, ErrNotFound
	}
	if !itemFound {
		return store.PlanItem{}, ErrItemNotFound
	}
	s.repl.Broadcast(ctx, store.SliceTreatmentPlans)
	return updated, nil
}

func (s *planService) setStatus(planID, status string) (store.TreatmentPlan, error) {
	var out store.TreatmentPlan
	found := false
	s.store.Update(func(st *store.State) {
		for i := range st.TreatmentPlans {
			if st.TreatmentPlans[i].ID == planID {
				st.TreatmentPlans[i].Status = status
				out = st.TreatmentPlans[i]
				found = true
				return
			}
		}
	})
	if !found {
		return store.TreatmentPlan{}, ErrNotFound
	}
	return out, nil
}

func itemCost(unitPrice int64, teeth []int) int64 {
	n := int64(len(teeth))
	if n < 1 {
		n = 1
	}
	return unitPrice * n
}
