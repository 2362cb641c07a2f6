package notify

import (
	"testing"
	"time"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
)

func TestBannerReplacesInsteadOfQueueing(t *testing.T) {
	b := NewBanners(time.Minute, time.Minute)

	b.Show(StyleToast, "first")
	b.Show(StyleOverlay, "second")

	got, active := b.Current()
	if !active {
		t.Fatal("a banner should be showing")
	}
	if got.Text != "second" || got.Style != StyleOverlay {
		t.Errorf("current = %+v, want the replacement", got)
	}
}

func TestBannerAutoDismiss(t *testing.T) {
	b := NewBanners(time.Minute, 10*time.Millisecond)

	b.Show(StyleToast, "short-lived")
	if _, active := b.Current(); !active {
		t.Fatal("banner should be visible right after Show")
	}

	deadline := time.Now().Add(time.Second)
	for {
		if _, active := b.Current(); !active {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("toast never auto-dismissed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBannerReplacementRearmsTimer(t *testing.T) {
	b := NewBanners(time.Minute, 30*time.Millisecond)

	b.Show(StyleToast, "first")
	time.Sleep(20 * time.Millisecond)
	b.Show(StyleToast, "second")
	time.Sleep(20 * time.Millisecond)

	// 40ms after "first" was shown its timer would have fired, but the
	// replacement rearmed it, so "second" is still on screen.
	got, active := b.Current()
	if !active || got.Text != "second" {
		t.Errorf("current = %+v (active=%v), want second still showing", got, active)
	}
}

func TestBannerDismiss(t *testing.T) {
	b := NewBanners(time.Minute, time.Minute)
	b.Show(StyleOverlay, "to dismiss")
	b.Dismiss()
	if _, active := b.Current(); active {
		t.Error("dismissed banner still showing")
	}
}

func TestPresenterDedupsLabOrders(t *testing.T) {
	p := NewPresenter(time.Minute, time.Minute, nil)

	shipped := bus.Event{Kind: bus.EventLabOrderShipped, Patient: "Lily Smith", OrderID: "LAB-7", Text: "Crown"}
	p.Handle(shipped)
	p.Handle(shipped)
	p.Handle(bus.Event{Kind: bus.EventLabOrderShipped, Patient: "Emma Wilson", OrderID: "LAB-8", Text: "Veneer"})

	entries := p.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (duplicate dropped)", len(entries))
	}
	if entries[0].ID != "LAB-8" {
		t.Errorf("newest entry should be first, got %q", entries[0].ID)
	}
}

func TestPresenterRoutesKinds(t *testing.T) {
	tests := []struct {
		name      string
		ev        bus.Event
		wantStyle string
	}{
		{"record saved is a toast", bus.Event{Kind: bus.EventRecordSaved, Patient: "Lily Smith", RecordType: "Checkup"}, StyleToast},
		{"image captured is a toast", bus.Event{Kind: bus.EventImageCaptured, Patient: "Lily Smith"}, StyleToast},
		{"plan proposed is an overlay", bus.Event{Kind: bus.EventPlanProposed, Patient: "Lily Smith", PlanID: "T001"}, StyleOverlay},
		{"plan approved is an overlay", bus.Event{Kind: bus.EventPlanApproved, Patient: "Lily Smith", PlanID: "T001"}, StyleOverlay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPresenter(time.Minute, time.Minute, nil)
			p.Handle(tt.ev)
			got, active := p.Banners().Current()
			if !active {
				t.Fatal("no banner shown")
			}
			if got.Style != tt.wantStyle {
				t.Errorf("style = %q, want %q", got.Style, tt.wantStyle)
			}
		})
	}
}

func TestPresenterIgnoresUnknownKind(t *testing.T) {
	p := NewPresenter(time.Minute, time.Minute, nil)
	p.Handle(bus.Event{Kind: "SOMETHING_NEW"})
	if _, active := p.Banners().Current(); active {
		t.Error("unknown kinds must not show banners")
	}
	if len(p.Entries()) != 0 {
		t.Error("unknown kinds must not append entries")
	}
}
