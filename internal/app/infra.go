package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/flttx/medi-manage-platform-sub000/config"
	"github.com/flttx/medi-manage-platform-sub000/internal/bus"
	"github.com/flttx/medi-manage-platform-sub000/internal/notify"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
	"github.com/flttx/medi-manage-platform-sub000/pkg/observability"
	redispkg "github.com/flttx/medi-manage-platform-sub000/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideStore),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideBus),
	fx.Provide(ProvidePresenter),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideMetrics),
	fx.Provide(ProvideReplicator),
)

func ProvideStore() *store.Store {
	return store.NewSeeded()
}

// ProvideNatsClient connects to NATS only when it is the selected bus
// backend; other backends get a nil connection.
func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if cfg.Bus.Backend != "nats" {
		return nil, nil
	}
	nc, err := nats.Connect(cfg.Bus.Nats.URL)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

// ProvideRedis connects to Redis only when it is the selected bus backend.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Bus.Backend != "redis" {
		return nil, nil
	}
	rdb, err := redispkg.NewRedisFromCentral(cfg.Bus.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideBus(lc fx.Lifecycle, cfg *config.Config, nc *nats.Conn, rdb *redis.Client) (bus.Bus, error) {
	var b bus.Bus
	switch cfg.Bus.Backend {
	case "", "inproc":
		b = bus.NewInproc()
	case "nats":
		b = bus.NewNats(nc, cfg.Bus.Channel)
	case "redis":
		b = bus.NewRedis(rdb, cfg.Bus.Channel)
	default:
		return nil, fmt.Errorf("unknown bus backend %q", cfg.Bus.Backend)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return b.Close()
		},
	})
	return b, nil
}

func ProvidePresenter(cfg *config.Config) *notify.Presenter {
	return notify.NewPresenter(
		time.Duration(cfg.Notifications.OverlaySeconds)*time.Second,
		time.Duration(cfg.Notifications.ToastSeconds)*time.Second,
		slog.Default(),
	)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Session.Environment,
		SessionRole:    cfg.Session.Role,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

// ProvideMetrics builds the sync counters. It takes the Provider so the
// meter provider is installed before any instrument is created.
func ProvideMetrics(cfg *config.Config, _ *observability.Provider) (*observability.Metrics, error) {
	if !cfg.Observability.Enabled || !cfg.Observability.Metrics.Enabled {
		return nil, nil
	}
	return observability.NewMetrics()
}

func ProvideReplicator(
	st *store.Store,
	b bus.Bus,
	p *notify.Presenter,
	m *observability.Metrics,
) *replication.Replicator {
	return replication.New(st, b, p, slog.Default(), m)
}
