package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/kbukum/validenv/config"
	"github.com/kbukum/validenv/logger"
)

// MeterName is the instrumentation scope of the load counters.
const MeterName = "github.com/kbukum/validenv"

// DefaultInterval is the export interval used by NewMeterConfig.
const DefaultInterval = 15 * time.Second

// MeterConfig configures OTLP/HTTP export of load metrics.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the collector host:port, e.g. "localhost:4318".
	Endpoint string
	Insecure bool
	// Interval of 0 keeps the SDK default.
	Interval time.Duration
}

// NewMeterConfig derives export settings from the loaded service
// configuration. Plaintext export is used outside production.
func NewMeterConfig(svc *config.ServiceConfig, endpoint string) MeterConfig {
	return MeterConfig{
		ServiceName:    svc.Name,
		ServiceVersion: svc.Version,
		Environment:    svc.Environment,
		Endpoint:       endpoint,
		Insecure:       svc.Environment != "production",
		Interval:       DefaultInterval,
	}
}

// InitMeter starts periodic OTLP export, installs the provider globally and
// returns a LoadMetrics recorder bound to it. The shutdown func flushes
// pending data and must be called on exit.
func InitMeter(ctx context.Context, mc MeterConfig) (*LoadMetrics, func(context.Context) error, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(mc.Endpoint)}
	if mc.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(mc)
	if err != nil {
		return nil, nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if mc.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(mc.Interval))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	metrics, err := NewLoadMetrics(mp.Meter(MeterName))
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, nil, err
	}
	otel.SetMeterProvider(mp)

	logger.Info("load metrics export started", logger.Fields(
		"service", mc.ServiceName,
		"endpoint", mc.Endpoint,
	))
	return metrics, mp.Shutdown, nil
}

// newResource describes the exporting service. Attributes are schemaless so
// the merge with resource.Default cannot hit a schema URL conflict.
func newResource(mc MeterConfig) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", mc.ServiceName),
			attribute.String("service.version", mc.ServiceVersion),
			attribute.String("deployment.environment", mc.Environment),
		),
	)
}
