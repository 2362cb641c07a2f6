package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/automation"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID string
	Category  string
	Paid      bool
	Items     []store.InvoiceLine
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID string) ([]store.Invoice, error)
	// Create is manual billing from the desktop console. The amount is
	// the sum of the line items and is fixed at creation.
	Create(ctx context.Context, req CreateRequest) (store.Invoice, error)
	MarkPaid(ctx context.Context, invoiceID string) error
	// AppendDraft turns an automation draft into an invoice. It does not
	// broadcast: the record mutation that produced the draft publishes
	// one snapshot covering records and invoices together.
	AppendDraft(ctx context.Context, patientID, category string, draft automation.InvoiceDraft) store.Invoice
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type billingService struct {
	store *store.Store
	repl  *replication.Replicator
}

func New(st *store.Store, repl *replication.Replicator) Service {
	return &billingService{store: st, repl: repl}
}

func (s *billingService) List(_ context.Context, patientID string) ([]store.Invoice, error) {
	var out []store.Invoice
	s.store.View(func(st store.State) {
		for _, inv := range st.Invoices {
			if patientID == "" || inv.PatientID == patientID {
				out = append(out, inv)
			}
		}
	})
	return out, nil
}

func (s *billingService) Create(ctx context.Context, req CreateRequest) (store.Invoice, error) {
	if _, ok := s.store.FindPatient(req.PatientID); !ok {
		return store.Invoice{}, ErrPatientNotFound
	}
	if len(req.Items) == 0 {
		return store.Invoice{}, ErrNoLineItems
	}

	var amount int64
	for _, line := range req.Items {
		if line.Amount < 0 {
			return store.Invoice{}, ErrNegativeAmount
		}
		amount += line.Amount
	}

	status := store.InvoicePending
	if req.Paid {
		status = store.InvoicePaid
	}

	inv := store.Invoice{
		ID:        mintInvoiceID(),
		PatientID: req.PatientID,
		Amount:    amount,
		Status:    status,
		Category:  req.Category,
		Date:      time.Now().Format("2006.01.02"),
		Items:     req.Items,
	}

	s.store.Update(func(st *store.State) {
		st.Invoices = append(st.Invoices, inv)
	})

	s.repl.Broadcast(ctx, store.SliceInvoices)
	return inv, nil
}

func (s *billingService) MarkPaid(ctx context.Context, invoiceID string) error {
	found := false
	s.store.Update(func(st *store.State) {
		for i := range st.Invoices {
			if st.Invoices[i].ID == invoiceID {
				st.Invoices[i].Status = store.InvoicePaid
				found = true
				return
			}
		}
	})
	if !found {
		return ErrNotFound
	}
	s.repl.Broadcast(ctx, store.SliceInvoices)
	return nil
}

func (s *billingService) AppendDraft(_ context.Context, patientID, category string, draft automation.InvoiceDraft) store.Invoice {
	inv := store.Invoice{
		ID:        mintInvoiceID(),
		PatientID: patientID,
		Amount:    draft.Amount,
		Status:    store.InvoiceUnpaid,
		Category:  category,
		Date:      time.Now().Format("2006.01.02"),
		Items:     []store.InvoiceLine{{Label: draft.Label, Amount: draft.Amount}},
	}
	s.store.Update(func(st *store.State) {
		st.Invoices = append(st.Invoices, inv)
	})
	return inv
}

func mintInvoiceID() string {
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}
