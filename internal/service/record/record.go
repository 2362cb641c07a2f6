package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/automation"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/billing"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/inventory"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
	"github.com/flttx/medi-manage-platform-sub000/pkg/observability"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID     string
	SessionID     string
	Type          string
	Doctor        string
	CC            string
	DX            string
	Plan          string
	AffectedTeeth []int
	HasImages     bool
}

type UpdateRequest struct {
	CC            *string
	DX            *string
	Plan          *string
	AffectedTeeth *[]int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID string) ([]store.MedicalRecord, error)
	// Create appends the record and runs the clinical automation pass
	// exactly once: stock is deducted for surgical visits and a draft
	// invoice is written, then a single snapshot covering records and
	// invoices goes out followed by a record-saved event.
	Create(ctx context.Context, req CreateRequest) (store.MedicalRecord, error)
	// Update edits a saved record in place. Automation never runs again,
	// so correcting a typo in a surgical record cannot double-charge the
	// patient or deduct stock twice.
	Update(ctx context.Context, recordID string, req UpdateRequest) (store.MedicalRecord, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type recordService struct {
	store     *store.Store
	repl      *replication.Replicator
	engine    *automation.Engine
	inventory inventory.Service
	billing   billing.Service
	metrics   *observability.Metrics
	log       *slog.Logger
}

func New(
	st *store.Store,
	repl *replication.Replicator,
	engine *automation.Engine,
	inv inventory.Service,
	bill billing.Service,
	metrics *observability.Metrics,
	log *slog.Logger,
) Service {
	if log == nil {
		log = slog.Default()
	}
	return &recordService{
		store:     st,
		repl:      repl,
		engine:    engine,
		inventory: inv,
		billing:   bill,
		metrics:   metrics,
		log:       log.With(slog.String("service", "record")),
	}
}

func (s *recordService) List(_ context.Context, patientID string) ([]store.MedicalRecord, error) {
	var out []store.MedicalRecord
	s.store.View(func(st store.State) {
		for _, rec := range st.MedicalRecords {
			if patientID == "" || rec.PatientID == patientID {
				out = append(out, rec)
			}
		}
	})
	return out, nil
}

func (s *recordService) Create(ctx context.Context, req CreateRequest) (store.MedicalRecord, error) {
	patient, ok := s.store.FindPatient(req.PatientID)
	if !ok {
		return store.MedicalRecord{}, ErrPatientNotFound
	}
	if req.Type == "" {
		return store.MedicalRecord{}, ErrTypeRequired
	}

	rec := store.MedicalRecord{
		ID:            s.mintRecordID(),
		PatientID:     req.PatientID,
		SessionID:     req.SessionID,
		Date:          time.Now().Format("2006.01.02"),
		Type:          req.Type,
		Doctor:        req.Doctor,
		CC:            req.CC,
		DX:            req.DX,
		Plan:          req.Plan,
		AffectedTeeth: append([]int(nil), req.AffectedTeeth...),
		HasImages:     req.HasImages,
	}

	s.store.Update(func(st *store.State) {
		st.MedicalRecords = append(st.MedicalRecords, rec)
	})

	effects := s.engine.Evaluate(rec.Type)
	for _, delta := range effects.Inventory {
		if err := s.inventory.Use(ctx, delta.ItemID, delta.Quantity); err != nil {
			if errors.Is(err, inventory.ErrItemNotFound) {
				s.log.Warn("automation deduction skipped, item missing",
					slog.String("item", delta.ItemID))
				continue
			}
			return store.MedicalRecord{}, fmt.Errorf("deduct stock: %w", err)
		}
	}
	s.billing.AppendDraft(ctx, rec.PatientID, rec.Type, effects.Invoice)
	s.metrics.AddAutomationRuns(ctx, 1)

	s.repl.Broadcast(ctx, store.SliceMedicalRecords, store.SliceInvoices)
	s.repl.Notify(ctx, bus.Event{
		Kind:       bus.EventRecordSaved,
		Patient:    patient.Name,
		RecordType: rec.Type,
	})

	return rec, nil
}

func (s *recordService) Update(ctx context.Context, recordID string, req UpdateRequest) (store.MedicalRecord, error) {
	var updated store.MedicalRecord
	found := false
	s.store.Update(func(st *store.State) {
		for i := range st.MedicalRecords {
			if st.MedicalRecords[i].ID != recordID {
				continue
			}
			rec := &st.MedicalRecords[i]
			if req.CC != nil {
				rec.CC = *req.CC
			}
			if req.DX != nil {
				rec.DX = *req.DX
			}
			if req.Plan != nil {
				rec.Plan = *req.Plan
			}
			if req.AffectedTeeth != nil {
				rec.AffectedTeeth = append([]int(nil), (*req.AffectedTeeth)...)
			}
			updated = *rec
			found = true
			return
		}
	})
	if !found {
		return store.MedicalRecord{}, ErrNotFound
	}
	s.repl.Broadcast(ctx, store.SliceMedicalRecords)
	return updated, nil
}

func (s *recordService) mintRecordID() string {
	n := 0
	s.store.View(func(st store.State) { n = len(st.MedicalRecords) })
	return fmt.Sprintf("R%03d", n+1)
}
