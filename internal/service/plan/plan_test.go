package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/notify"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
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

func TestTransitionsAreUnconditional(t *testing.T) {
	tests := []struct {
		name string
		ops  []string
		want string
	}{
		{"approve from proposing", []string{"approve"}, store.PlanActive},
		{"reject from proposing", []string{"reject"}, store.PlanRejected},
		{"approve after reject", []string{"reject", "approve"}, store.PlanActive},
		{"reject after approve", []string{"approve", "reject"}, store.PlanRejected},
		{"approve twice", []string{"approve", "approve"}, store.PlanActive},
		{"propose on active returns to review", []string{"approve", "propose"}, store.PlanProposing},
		{"propose after reject", []string{"reject", "propose"}, store.PlanProposing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			ctx := context.Background()
			for _, op := range tt.ops {
				var err error
				switch op {
				case "approve":
					err = svc.Approve(ctx, "T001")
				case "reject":
					err = svc.Reject(ctx, "T001")
				case "propose":
					err = svc.Propose(ctx, "T001")
				}
				if err != nil {
					t.Fatalf("%s: %v", op, err)
				}
			}
			p, err := svc.GetByID(ctx, "T001")
			if err != nil {
				t.Fatalf("GetByID: %v", err)
			}
			if p.Status != tt.want {
				t.Errorf("status = %q, want %q", p.Status, tt.want)
			}
		})
	}
}

func TestSetItemTeethRepricing(t *testing.T) {
	tests := []struct {
		name     string
		teeth    []int
		wantCost int64
	}{
		{"one tooth", []int{36}, 3500},
		{"two teeth doubles", []int{36, 37}, 7000},
		{"empty selection still bills one unit", nil, 3500},
		{"three teeth", []int{36, 37, 38}, 10500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			item, err := svc.SetItemTeeth(context.Background(), "T001", "T001-1", tt.teeth)
			if err != nil {
				t.Fatalf("SetItemTeeth: %v", err)
			}
			if item.Cost != tt.wantCost {
				t.Errorf("cost = %d, want %d", item.Cost, tt.wantCost)
			}
		})
	}
}

func TestPlanTotal(t *testing.T) {
	svc, _ := newService(t)
	p, err := svc.GetByID(context.Background(), "T001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got := p.Total(); got != 7500 {
		t.Errorf("Total = %d, want 7500", got)
	}

	if _, err := svc.SetItemTeeth(context.Background(), "T001", "T001-2", []int{36, 46}); err != nil {
		t.Fatalf("SetItemTeeth: %v", err)
	}
	p, _ = svc.GetByID(context.Background(), "T001")
	if got := p.Total(); got != 11500 {
		t.Errorf("Total after repricing = %d, want 11500", got)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	items := []ItemRequest{{Name: "Filling", UnitPrice: 800}}

	if _, err := svc.Create(ctx, CreateRequest{PatientID: "NOPE", Title: "x", Items: items}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{PatientID: "P2026001", Items: items}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("err = %v, want ErrTitleRequired", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{PatientID: "P2026001", Title: "x"}); !errors.Is(err, ErrNoItems) {
		t.Errorf("err = %v, want ErrNoItems", err)
	}

	p, err := svc.Create(ctx, CreateRequest{
		PatientID: "P2026001",
		Title:     "Restoration 46",
		Items:     []ItemRequest{{Name: "Filling", UnitPrice: 800, Teeth: []int{46, 47}}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != store.PlanProposing {
		t.Errorf("status = %q, want proposing", p.Status)
	}
	if p.Items[0].Cost != 1600 {
		t.Errorf("item cost = %d, want unit price times teeth", p.Items[0].Cost)
	}

	if err := svc.Propose(ctx, "T-gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestProposeAndApproveNotify(t *testing.T) {
	shared := bus.NewInproc()
	defer shared.Close()

	// A second session's presenter observes the workflow pushes.
	observer := notify.NewPresenter(0, 0, nil)
	observerRepl := replication.New(store.NewSeeded(), shared, observer, nil, nil)
	observerRepl.Start()
	defer observerRepl.Stop()

	st := store.NewSeeded()
	repl := replication.New(st, shared, nil, nil, nil)
	repl.Start()
	defer repl.Stop()
	svc := New(st, repl)

	p, err := svc.Create(context.Background(), CreateRequest{
		PatientID: "P2026003",
		Title:     "Veneers",
		Items:     []ItemRequest{{Name: "Veneer", UnitPrice: 2000, Teeth: []int{11}}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	banner, active := observer.Banners().Current()
	if !active || banner.Style != notify.StyleOverlay {
		t.Fatalf("create should show an overlay, got %+v (active=%v)", banner, active)
	}

	if err := svc.Approve(context.Background(), p.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	banner, active = observer.Banners().Current()
	if !active || banner.Style != notify.StyleOverlay {
		t.Fatalf("approve should show an overlay, got %+v (active=%v)", banner, active)
	}

	// Pushing the now-active plan back to review announces it again and
	// the other session sees the status flip.
	if err := svc.Propose(context.Background(), p.ID); err != nil {
		t.Fatalf("Propose: %v", err)
	}
	banner, active = observer.Banners().Current()
	if !active || banner.Style != notify.StyleOverlay {
		t.Fatalf("propose should show an overlay, got %+v (active=%v)", banner, active)
	}
	got, err := svc.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != store.PlanProposing {
		t.Errorf("status after propose = %q, want proposing", got.Status)
	}
}
