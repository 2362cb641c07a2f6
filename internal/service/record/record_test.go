package record

import (
	"context"
	"errors"
	"testing"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/automation"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/billing"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/inventory"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

func newService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	shared := bus.NewInproc()
	t.Cleanup(func() { shared.Close() })

	st := store.NewSeeded()
	repl := replication.New(st, shared, nil, nil, nil)
	inv := inventory.New(st)
	bill := billing.New(st, repl)
	engine := automation.New(nil, 0)
	return New(st, repl, engine, inv, bill, nil, nil), st
}

func stock(t *testing.T, st *store.Store, id string) int {
	t.Helper()
	n := -1
	st.View(func(s store.State) {
		for _, it := range s.Inventory {
			if it.ID == id {
				n = it.Stock
			}
		}
	})
	if n < 0 {
		t.Fatalf("item %s not found", id)
	}
	return n
}

func invoiceCount(st *store.Store) int {
	n := 0
	st.View(func(s store.State) { n = len(s.Invoices) })
	return n
}

func TestCreateSurgicalRecordRunsAutomation(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, CreateRequest{
		PatientID:     "P2026002",
		Type:          "Implant Placement",
		Doctor:        "Sterling",
		AffectedTeeth: []int{46},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == "" {
		t.Error("record has no id")
	}

	// Surgical kit deducted: implant post 8-1, lidocaine 45-2, gloves 1500-2.
	if got := stock(t, st, "I003"); got != 7 {
		t.Errorf("implant post stock = %d, want 7", got)
	}
	if got := stock(t, st, "I004"); got != 43 {
		t.Errorf("anesthetic stock = %d, want 43", got)
	}
	if got := stock(t, st, "I005"); got != 1498 {
		t.Errorf("gloves stock = %d, want 1498", got)
	}

	// One draft invoice at the Implant price, unpaid.
	if got := invoiceCount(st); got != 2 {
		t.Fatalf("invoices = %d, want seed + draft", got)
	}
	st.View(func(s store.State) {
		draft := s.Invoices[1]
		if draft.Amount != 12000 || draft.Status != store.InvoiceUnpaid {
			t.Errorf("draft = {%d %q}, want {12000 unpaid}", draft.Amount, draft.Status)
		}
		if draft.PatientID != "P2026002" {
			t.Errorf("draft patient = %q", draft.PatientID)
		}
	})
}

func TestCreateNonSurgicalRecordBillsOnly(t *testing.T) {
	svc, st := newService(t)

	if _, err := svc.Create(context.Background(), CreateRequest{
		PatientID: "P2026001",
		Type:      "Routine Checkup",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// No surgical marker, so no deductions.
	if got := stock(t, st, "I003"); got != 8 {
		t.Errorf("implant post stock = %d, want untouched 8", got)
	}

	st.View(func(s store.State) {
		draft := s.Invoices[len(s.Invoices)-1]
		if draft.Amount != 500 {
			t.Errorf("fallback amount = %d, want 500", draft.Amount)
		}
	})
}

func TestUpdateNeverRerunsAutomation(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, CreateRequest{PatientID: "P2026002", Type: "Implant Placement"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stockAfterCreate := stock(t, st, "I003")
	invoicesAfterCreate := invoiceCount(st)

	newPlan := "Implant Surgery with graft"
	updated, err := svc.Update(ctx, rec.ID, UpdateRequest{Plan: &newPlan})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Plan != newPlan {
		t.Errorf("plan = %q, want %q", updated.Plan, newPlan)
	}

	// Editing a surgical record must not deduct or bill again.
	if got := stock(t, st, "I003"); got != stockAfterCreate {
		t.Errorf("stock = %d, want unchanged %d", got, stockAfterCreate)
	}
	if got := invoiceCount(st); got != invoicesAfterCreate {
		t.Errorf("invoices = %d, want unchanged %d", got, invoicesAfterCreate)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{PatientID: "NOPE", Type: "Checkup"}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{PatientID: "P2026001"}); !errors.Is(err, ErrTypeRequired) {
		t.Errorf("err = %v, want ErrTypeRequired", err)
	}
}

func TestCreateReplicatesToOtherSession(t *testing.T) {
	shared := bus.NewInproc()
	defer shared.Close()

	other := store.NewSeeded()
	otherRepl := replication.New(other, shared, nil, nil, nil)
	otherRepl.Start()
	defer otherRepl.Stop()

	st := store.NewSeeded()
	repl := replication.New(st, shared, nil, nil, nil)
	svc := New(st, repl, automation.New(nil, 0), inventory.New(st), billing.New(st, repl), nil, nil)

	if _, err := svc.Create(context.Background(), CreateRequest{PatientID: "P2026001", Type: "Implant Placement"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	other.View(func(s store.State) {
		if len(s.MedicalRecords) != 3 {
			t.Errorf("other session records = %d, want 3", len(s.MedicalRecords))
		}
		if len(s.Invoices) != 2 {
			t.Errorf("other session invoices = %d, want 2 (draft travels in the same snapshot)", len(s.Invoices))
		}
		// Inventory never replicates: the other session keeps its own counts.
		for _, it := range s.Inventory {
			if it.ID == "I003" && it.Stock != 8 {
				t.Errorf("other session implant stock = %d, want its local 8", it.Stock)
			}
		}
	})
}
