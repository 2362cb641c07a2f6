package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/flttx/medi-manage-platform-sub000/pkg/observability"

// Metrics are the domain instruments of the synchronization core. A nil
// *Metrics is valid and records nothing, so components can take it as an
// optional dependency.
type Metrics struct {
	busPublished    metric.Int64Counter
	busDelivered    metric.Int64Counter
	snapshotsMerged metric.Int64Counter
	automationRuns  metric.Int64Counter
}

func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	busPublished, err := meter.Int64Counter(
		"sync_bus_published_total",
		metric.WithDescription("Messages published to the synchronization bus"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, err
	}

	busDelivered, err := meter.Int64Counter(
		"sync_bus_delivered_total",
		metric.WithDescription("Messages delivered to this session"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, err
	}

	snapshotsMerged, err := meter.Int64Counter(
		"sync_snapshots_merged_total",
		metric.WithDescription("State snapshots merged into the local store"),
		metric.WithUnit("{snapshot}"),
	)
	if err != nil {
		return nil, err
	}

	automationRuns, err := meter.Int64Counter(
		"clinical_automation_runs_total",
		metric.WithDescription("Automation rule evaluations triggered by record creation"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		busPublished:    busPublished,
		busDelivered:    busDelivered,
		snapshotsMerged: snapshotsMerged,
		automationRuns:  automationRuns,
	}, nil
}

func (m *Metrics) AddBusPublished(ctx context.Context, n int64) {
	if m == nil {
		return
	}
	m.busPublished.Add(ctx, n)
}

func (m *Metrics) AddBusDelivered(ctx context.Context, n int64) {
	if m == nil {
		return
	}
	m.busDelivered.Add(ctx, n)
}

func (m *Metrics) AddSnapshotsMerged(ctx context.Context, n int64) {
	if m == nil {
		return
	}
	m.snapshotsMerged.Add(ctx, n)
}

func (m *Metrics) AddAutomationRuns(ctx context.Context, n int64) {
	if m == nil {
		return
	}
	m.automationRuns.Add(ctx, n)
}
