// Package replication connects a session's store to the synchronization
// bus: outgoing whole-slice snapshots after local mutations, incoming
// snapshots merged wholesale, and notification events handed to the
// presenter.
package replication

import (
	"context"
	"log/slog"

	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/notify"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
	"github.com/flttx/medi-manage-platform-sub000/pkg/observability"
)

type Replicator struct {
	store     *store.Store
	bus       bus.Bus
	presenter *notify.Presenter
	log       *slog.Logger
	metrics   *observability.Metrics

	unsubscribe func()
}

func New(st *store.Store, b bus.Bus, p *notify.Presenter, log *slog.Logger, m *observability.Metrics) *Replicator {
	if log == nil {
		log = slog.Default()
	}
	return &Replicator{store: st, bus: b, presenter: p, log: log, metrics: m}
}

// Start subscribes to the bus. A failing subscription is not fatal: the
// session keeps operating on local-only state.
func (r *Replicator) Start() {
	unsub, err := r.bus.Subscribe(r.handle)
	if err != nil {
		r.log.Warn("bus unavailable, continuing local-only", "err", err)
		return
	}
	r.unsubscribe = unsub
}

func (r *Replicator) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Broadcast publishes a snapshot of the named slices. Publish failures
// are swallowed: the mutation has already been applied locally and the
// user sees no error.
func (r *Replicator) Broadcast(ctx context.Context, slices ...string) {
	if len(slices) == 0 {
		return
	}
	sn := r.store.Snapshot(slices...)
	if err := r.bus.Publish(ctx, bus.NewSnapshotMessage(sn)); err != nil {
		r.log.Debug("snapshot publish failed", "slices", slices, "err", err)
		return
	}
	r.metrics.AddBusPublished(ctx, 1)
}

// Notify publishes an ephemeral notification event, same failure policy
// as Broadcast.
func (r *Replicator) Notify(ctx context.Context, ev bus.Event) {
	if err := r.bus.Publish(ctx, bus.NewEventMessage(ev)); err != nil {
		r.log.Debug("event publish failed", "kind", ev.Kind, "err", err)
		return
	}
	r.metrics.AddBusPublished(ctx, 1)
}

func (r *Replicator) handle(msg bus.Message) {
	ctx := context.Background()
	r.metrics.AddBusDelivered(ctx, 1)

	switch msg.Type {
	case bus.MsgStateUpdate:
		if msg.State == nil {
			return
		}
		// Whole-slice replace, last writer wins. Applying our own echoed
		// snapshot is an idempotent no-op by construction.
		r.store.Apply(*msg.State)
		r.metrics.AddSnapshotsMerged(ctx, 1)
	case bus.MsgNotify:
		if r.presenter != nil {
			r.presenter.Handle(msg.Event)
		}
	default:
		r.log.Debug("ignoring unknown bus message type", "type", msg.Type)
	}
}
