// Package observability provides OpenTelemetry metrics for variable loading.
//
// LoadMetrics implements env.Recorder and counts every Load by key and
// outcome, so fallbacks and failures surface on dashboards instead of only
// in logs.
//
//	metrics, shutdown, err := observability.InitMeter(ctx, observability.NewMeterConfig(cfg, "localhost:4318"))
//	defer shutdown(ctx)
//
//	port, err := env.New("PORT", converter.NewPort()).WithRecorder(metrics).Load()
package observability
