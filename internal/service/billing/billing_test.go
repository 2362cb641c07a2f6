package billing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/automation"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

func newService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	shared := bus.NewInproc()
	t.Cleanup(func() { shared.Close() })
	st := store.NewSeeded()
	repl := replication.New(st, shared, nil, nil, nil)
	return New(st, repl), st
}

func TestCreateSumsLineItems(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{
		PatientID: "P2026003",
		Category:  "Restorative",
		Items: []store.InvoiceLine{
			{Label: "Composite Filling", Amount: 800},
			{Label: "Local Anesthesia", Amount: 150},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inv.Amount != 950 {
		t.Errorf("amount = %d, want 950", inv.Amount)
	}
	if inv.Status != store.InvoicePending {
		t.Errorf("status = %q, want Pending when not paid at creation", inv.Status)
	}
	if !strings.HasPrefix(inv.ID, "INV-") {
		t.Errorf("id = %q, want INV- prefix", inv.ID)
	}

	paid, err := svc.Create(ctx, CreateRequest{
		PatientID: "P2026003",
		Category:  "Consultation",
		Paid:      true,
		Items:     []store.InvoiceLine{{Label: "Consultation", Amount: 300}},
	})
	if err != nil {
		t.Fatalf("Create paid: %v", err)
	}
	if paid.Status != store.InvoicePaid {
		t.Errorf("status = %q, want Paid", paid.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"unknown patient", CreateRequest{PatientID: "P9999", Items: []store.InvoiceLine{{Label: "x", Amount: 1}}}, ErrPatientNotFound},
		{"no line items", CreateRequest{PatientID: "P2026001"}, ErrNoLineItems},
		{"negative line", CreateRequest{PatientID: "P2026001", Items: []store.InvoiceLine{{Label: "x", Amount: -5}}}, ErrNegativeAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarkPaid(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	draft := svc.AppendDraft(ctx, "P2026002", "Surgical", automation.InvoiceDraft{
		Label: "Implant Surgery", Amount: 12000,
	})
	if draft.Status != store.InvoiceUnpaid {
		t.Fatalf("draft status = %q, want unpaid", draft.Status)
	}

	if err := svc.MarkPaid(ctx, draft.ID); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	st.View(func(s store.State) {
		for _, inv := range s.Invoices {
			if inv.ID == draft.ID && inv.Status != store.InvoicePaid {
				t.Errorf("status = %q, want Paid", inv.Status)
			}
		}
	})

	if err := svc.MarkPaid(ctx, "INV-gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListByPatient(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	got, err := svc.List(ctx, "P2026001")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "INV-20260115-001" {
		t.Errorf("invoices = %+v, want the seeded consultation invoice", got)
	}

	all, _ := svc.List(ctx, "")
	if len(all) != 1 {
		t.Errorf("all invoices = %d, want 1", len(all))
	}
}
