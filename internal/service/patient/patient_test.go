package patient

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

func newService(t *testing.T, region string) (Service, *store.Store) {
	t.Helper()
	shared := bus.NewInproc()
	t.Cleanup(func() { shared.Close() })
	st := store.NewSeeded()
	repl := replication.New(st, shared, nil, nil, nil)
	return New(st, repl, region), st
}

func TestCreateValidatesPhone(t *testing.T) {
	tests := []struct {
		name    string
		region  string
		phone   string
		wantErr error
	}{
		{"valid CN mobile", "CN", "13812345678", nil},
		{"valid CN with country code", "CN", "+8613812345678", nil},
		{"too short", "CN", "138123", ErrInvalidPhone},
		{"letters", "CN", "not-a-phone", ErrInvalidPhone},
		{"empty", "CN", "", ErrInvalidPhone},
		{"valid US number", "US", "+12125551234", nil},
		{"CN mobile rejected under US region", "US", "13812345678", ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, tt.region)
			_, err := svc.Create(context.Background(), CreateRequest{
				Name:  "Test Patient",
				Age:   30,
				Phone: tt.phone,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateMintsSequentialIDs(t *testing.T) {
	svc, st := newService(t, "CN")
	ctx := context.Background()

	p1, err := svc.Create(ctx, CreateRequest{Name: "Sixth", Phone: "13812345678"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	p2, err := svc.Create(ctx, CreateRequest{Name: "Seventh", Phone: "13812345679"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(p1.ID, "P") || !strings.HasSuffix(p1.ID, "006") {
		t.Errorf("first minted id = %q, want P<year>006 after the 5 seeded patients", p1.ID)
	}
	if !strings.HasSuffix(p2.ID, "007") {
		t.Errorf("second minted id = %q, want suffix 007", p2.ID)
	}
	if p1.Status != store.PatientPending || p1.Risk != store.RiskLow {
		t.Errorf("new patient = {%q %q}, want pending/Low", p1.Status, p1.Risk)
	}

	st.View(func(s store.State) {
		if len(s.Patients) != 7 {
			t.Errorf("patients = %d, want 7", len(s.Patients))
		}
	})
}

func TestSetStatusAndRisk(t *testing.T) {
	svc, _ := newService(t, "CN")
	ctx := context.Background()

	if err := svc.SetStatus(ctx, "P2026002", store.PatientConfirmed); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	p, err := svc.GetByID(ctx, "P2026002")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Status != store.PatientConfirmed {
		t.Errorf("status = %q, want confirmed", p.Status)
	}

	if err := svc.SetStatus(ctx, "P2026002", "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
	if err := svc.SetRisk(ctx, "P2026002", "Critical"); !errors.Is(err, ErrInvalidRisk) {
		t.Errorf("err = %v, want ErrInvalidRisk", err)
	}
	if err := svc.SetStatus(ctx, "P9999", store.PatientConfirmed); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListFilters(t *testing.T) {
	svc, _ := newService(t, "CN")
	ctx := context.Background()

	confirmed := store.PatientConfirmed
	got, err := svc.List(ctx, ListRequest{Status: &confirmed})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("confirmed patients = %d, want 3", len(got))
	}

	high := store.RiskHigh
	got, err = svc.List(ctx, ListRequest{Risk: &high})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "P2026002" {
		t.Errorf("high risk = %+v, want only P2026002", got)
	}
}
