package notify

import (
	"sync"
	"time"
)

// Banner presentation styles. An overlay is the rich full-width card the
// terminals use for workflow pushes; a toast is the lightweight corner
// notice for routine confirmations.
const (
	StyleOverlay = "overlay"
	StyleToast   = "toast"
)

type Banner struct {
	Style   string    `json:"style"`
	Text    string    `json:"text"`
	ShownAt time.Time `json:"shownAt"`
}

// Banners holds at most one transient banner. There is no queue: showing
// a new banner replaces an unexpired one, and the auto-dismiss timer is
// rearmed. Explicit dismissal cancels the timer.
type Banners struct {
	overlayTTL time.Duration
	toastTTL   time.Duration

	mu      sync.Mutex
	current *Banner
	timer   *time.Timer
	gen     uint64
}

func NewBanners(overlayTTL, toastTTL time.Duration) *Banners {
	if overlayTTL <= 0 {
		overlayTTL = 8 * time.Second
	}
	if toastTTL <= 0 {
		toastTTL = 3 * time.Second
	}
	return &Banners{overlayTTL: overlayTTL, toastTTL: toastTTL}
}

func (b *Banners) Show(style, text string) {
	ttl := b.toastTTL
	if style == StyleOverlay {
		ttl = b.overlayTTL
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.current = &Banner{Style: style, Text: text, ShownAt: time.Now()}
	b.timer = time.AfterFunc(ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// A newer banner may have replaced us while the timer fired.
		if b.gen == gen {
			b.current = nil
		}
	})
}

// Current returns the banner on screen, if any.
func (b *Banners) Current() (Banner, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Banner{}, false
	}
	return *b.current, true
}

// Dismiss clears the banner ahead of its timeout.
func (b *Banners) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	b.current = nil
}
