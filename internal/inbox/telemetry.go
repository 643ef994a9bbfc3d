package inbox

import (
	"fmt"
	"outreach/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "outreach/internal/inbox"

type telemetry struct {
	tracer trace.Tracer

	threads  metric.Int64Counter
	messages metric.Int64Counter
	batches  metric.Int64Counter
	duration metric.Float64Histogram
}

func newTelemetry(mp metric.MeterProvider) (*telemetry, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	t := &telemetry{tracer: otel.Tracer(instrumentationName)}

	var err error
	if t.threads, err = meter.Int64Counter("inbox.threads.written",
		metric.WithDescription("Threads written by fan-outs")); err != nil {
		return nil, fmt.Errorf("could not create threads counter: %w", err)
	}
	if t.messages, err = meter.Int64Counter("inbox.messages.written",
		metric.WithDescription("Seed messages written by fan-outs")); err != nil {
		return nil, fmt.Errorf("could not create messages counter: %w", err)
	}
	if t.batches, err = meter.Int64Counter("inbox.batches",
		metric.WithDescription("Inbox write batches committed")); err != nil {
		return nil, fmt.Errorf("could not create batches counter: %w", err)
	}
	if t.duration, err = meter.Float64Histogram("inbox.materialize.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of a campaign materialization"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return t, nil
}
