package stepper

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("pathstep.stepper")

// Metrics for stepping operations.
var (
	unitsTotal     metric.Int64Counter
	initsTotal     metric.Int64Counter
	frontierLength metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		unitsTotal, err = meter.Int64Counter(
			"stepper_units_total",
			metric.WithDescription("Work units performed, by kind"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		initsTotal, err = meter.Int64Counter(
			"stepper_inits_total",
			metric.WithDescription("Number of Init calls that produced a fresh state"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		frontierLength, err = meter.Int64Histogram(
			"stepper_frontier_length",
			metric.WithDescription("Frontier length observed at each dequeue"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordUnit records one non-idle work unit.
func recordUnit(ctx context.Context, ev Event, frontierLen int) {
	if err := initMetrics(); err != nil {
		return
	}

	unitsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", ev.Kind.String())))
	if ev.Dequeued != nil {
		frontierLength.Record(ctx, int64(frontierLen))
	}
}

// recordInit records a successful Init over vertexCount vertices.
func recordInit(ctx context.Context, vertexCount int) {
	if err := initMetrics(); err != nil {
		return
	}

	initsTotal.Add(ctx, 1, metric.WithAttributes(attribute.Int("vertices", vertexCount)))
}
