package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
)

// Redis is the Redis pub/sub backend. Subscriptions run on their own
// connection, so a session still receives its own publishes.
type Redis struct {
	rdb     *goredis.Client
	channel string
}

func NewRedis(rdb *goredis.Client, channel string) *Redis {
	return &Redis{rdb: rdb, channel: channel}
}

func (b *Redis) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode bus message: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", b.channel, err)
	}
	return nil
}

func (b *Redis) Subscribe(h Handler) (func(), error) {
	pubsub := b.rdb.Subscribe(context.Background(), b.channel)

	// Force the subscription to be established before returning, so a
	// publish immediately after Subscribe is not lost.
	if _, err := pubsub.Receive(context.Background()); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", b.channel, err)
	}

	go func() {
		for m := range pubsub.Channel() {
			var msg Message
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				slog.Warn("dropping malformed bus message", "channel", b.channel, "err", err)
				continue
			}
			h(msg)
		}
	}()

	return func() {
		if err := pubsub.Close(); err != nil {
			slog.Debug("pubsub close failed", "channel", b.channel, "err", err)
		}
	}, nil
}

func (b *Redis) Close() error {
	return b.rdb.Close()
}
