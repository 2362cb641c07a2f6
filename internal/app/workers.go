package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
)

// WorkerModule attaches the replication loop to the application lifecycle.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterReplication),
)

type ReplicationParams struct {
	fx.In

	Lc   fx.Lifecycle
	Repl *replication.Replicator
}

func RegisterReplication(p ReplicationParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Repl.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Repl.Stop()
			return nil
		},
	})
}
