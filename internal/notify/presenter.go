// Package notify renders incoming bus events for one session: transient
// banners with fixed auto-dismiss timeouts and a persistent,
// de-duplicated notification list.
package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
)

// Entry is one row of the persistent notification list (e.g. shipped lab
// orders). Entries are appended at the front and never re-appended for
// the same id.
type Entry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

type Presenter struct {
	banners *Banners
	log     *slog.Logger

	mu      sync.Mutex
	entries []Entry
}

func NewPresenter(overlayTTL, toastTTL time.Duration, log *slog.Logger) *Presenter {
	if log == nil {
		log = slog.Default()
	}
	return &Presenter{
		banners: NewBanners(overlayTTL, toastTTL),
		log:     log,
	}
}

// Banners exposes the transient banner state to the presentation layer.
func (p *Presenter) Banners() *Banners {
	return p.banners
}

// Entries returns a copy of the persistent list, newest first.
func (p *Presenter) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Entry(nil), p.entries...)
}

// Handle routes one notification event to its presentation. Unknown kinds
// are logged and dropped; a misbehaving sender never breaks the session.
func (p *Presenter) Handle(ev bus.Event) {
	switch ev.Kind {
	case bus.EventRecordSaved:
		p.banners.Show(StyleToast, fmt.Sprintf("Record synced: %s (%s)", ev.Patient, ev.RecordType))
	case bus.EventImageCaptured:
		p.banners.Show(StyleToast, fmt.Sprintf("New image for %s", ev.Patient))
	case bus.EventPlanProposed:
		p.banners.Show(StyleOverlay, fmt.Sprintf("Treatment plan ready for review: %s", ev.Patient))
	case bus.EventPlanApproved:
		p.banners.Show(StyleOverlay, fmt.Sprintf("Treatment plan approved: %s", ev.Patient))
	case bus.EventLabOrderShipped:
		p.appendOnce(Entry{
			ID:       ev.OrderID,
			Title:    "Lab Order Shipped",
			Text:     ev.Text,
			Category: "lab",
		})
		p.banners.Show(StyleToast, fmt.Sprintf("Lab order shipped: %s", ev.Patient))
	default:
		p.log.Debug("ignoring unknown notification kind", "kind", ev.Kind)
	}
}

func (p *Presenter) appendOnce(e Entry) {
	if e.ID == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, have := range p.entries {
		if have.ID == e.ID {
			return
		}
	}
	p.entries = append([]Entry{e}, p.entries...)
}
