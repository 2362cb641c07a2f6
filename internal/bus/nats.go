package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// subjectPrefix namespaces the broadcast channel on a shared NATS server.
const subjectPrefix = "mediman.sync."

// Nats is the NATS pub/sub backend. The connection echoes publishes back
// to the publishing client, which gives the self-delivery the merge
// contract relies on.
type Nats struct {
	nc      *nats.Conn
	subject string
}

func NewNats(nc *nats.Conn, channel string) *Nats {
	return &Nats{nc: nc, subject: subjectPrefix + channel}
}

func (b *Nats) Publish(_ context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode bus message: %w", err)
	}
	if err := b.nc.Publish(b.subject, payload); err != nil {
		return fmt.Errorf("publish to %s: %w", b.subject, err)
	}
	return nil
}

func (b *Nats) Subscribe(h Handler) (func(), error) {
	sub, err := b.nc.Subscribe(b.subject, func(m *nats.Msg) {
		var msg Message
		if err := json.Unmarshal(m.Data, &msg); err != nil {
			slog.Warn("dropping malformed bus message", "subject", b.subject, "err", err)
			return
		}
		h(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", b.subject, err)
	}
	return func() {
		if err := sub.Unsubscribe(); err != nil {
			slog.Debug("unsubscribe failed", "subject", b.subject, "err", err)
		}
	}, nil
}

func (b *Nats) Close() error {
	return b.nc.Drain()
}
