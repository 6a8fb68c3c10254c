package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/validenv/env"
)

// Instrument names.
const (
	MetricLoadTotal     = "env.load.total"
	MetricFallbackTotal = "env.fallback.total"
)

var _ env.Recorder = (*LoadMetrics)(nil)

// LoadMetrics holds the instruments recording variable resolution.
type LoadMetrics struct {
	loadTotal     metric.Int64Counter
	fallbackTotal metric.Int64Counter
}

// NewLoadMetrics creates metric instruments on the given meter.
func NewLoadMetrics(meter metric.Meter) (*LoadMetrics, error) {
	loadTotal, err := meter.Int64Counter(MetricLoadTotal,
		metric.WithDescription("Environment variable loads by key and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricLoadTotal, err)
	}

	fallbackTotal, err := meter.Int64Counter(MetricFallbackTotal,
		metric.WithDescription("Environment variable loads that substituted the fallback"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricFallbackTotal, err)
	}

	return &LoadMetrics{
		loadTotal:     loadTotal,
		fallbackTotal: fallbackTotal,
	}, nil
}

// RecordLoad implements env.Recorder.
func (m *LoadMetrics) RecordLoad(key string, outcome env.Outcome) {
	ctx := context.Background()
	m.loadTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key", key),
		attribute.String("outcome", string(outcome)),
	))
	if outcome.UsedFallback() {
		m.fallbackTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("key", key),
		))
	}
}
