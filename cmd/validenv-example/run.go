package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/validenv/config"
	"github.com/kbukum/validenv/converter"
	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/logger"
	"github.com/kbukum/validenv/observability"
	"github.com/kbukum/validenv/version"
)

func runCommand(cmd *cobra.Command, _ []string) error {
	if versionFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "validenv-example %s\n", version.Get())
		return nil
	}

	cfg, err := config.Load(config.WithPrefix(prefixFlag))
	if err != nil {
		return err
	}
	log := cfg.NewLogger()
	logger.SetGlobalLogger(log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lc := config.LoaderConfig{Logger: log.WithComponent(env.LoggerName)}

	endpoint, err := config.Declare(lc, "OTEL_EXPORTER_OTLP_ENDPOINT", converter.NewString()).
		WithDescription("OTLP HTTP endpoint host:port; metrics are disabled when empty").
		WithFallback("").
		Load()
	if err != nil {
		return err
	}
	if endpoint != "" {
		shutdown, recorder, err := setupMetrics(ctx, cfg, endpoint)
		if err != nil {
			return err
		}
		defer shutdown()
		lc.Recorder = recorder
	}

	rep := newReport(cmd.OutOrStdout())
	if err := loadSettings(lc, rep); err != nil {
		return err
	}
	rep.print(cfg)
	if printConfigFlag {
		if err := printConfig(cmd.OutOrStdout(), cfg); err != nil {
			return err
		}
	}
	log.Info("environment resolved", logger.Fields("variables", len(rep.rows)))
	return nil
}

// loadSettings resolves the application variables, stopping at the first failure.
func loadSettings(lc config.LoaderConfig, r *report) error {
	steps := []func() error{
		func() error {
			return loadInto(r, config.Declare(lc, "EXAMPLE_API_KEY", converter.NewString()).
				WithDescription("API key used to call the upstream service"))
		},
		func() error {
			return loadInto(r, config.Declare(lc, "COOKIE_SECRET", converter.NewString().WithMinLength(50)).
				WithDescription("Secret used to sign session cookies"))
		},
		func() error {
			return loadInto(r, config.Declare(lc, "BYPASS_EMAILS", converter.NewBool()).
				WithFallback(false))
		},
		func() error {
			return loadInto(r, config.Declare(lc, "SERVER_PORT", converter.NewPort()).
				WithFallback(3000))
		},
		func() error {
			return loadInto(r, config.Declare(lc, "FROM_EMAIL", converter.NewEmail()).
				WithDescription("Sender address for outgoing mail"))
		},
		func() error {
			return loadInto(r, config.Declare(lc, "BASE_URI", converter.NewURI()))
		},
		func() error {
			return loadInto(r, config.Declare(lc, "REQUEST_TIMEOUT", converter.NewDuration()).
				WithFallback(30*time.Second))
		},
		func() error {
			return loadInto(r, config.Declare(lc, "MAX_UPLOAD_SIZE", converter.NewByteSize()).
				WithDescription("Largest accepted request body, e.g. 10MB").
				WithFallback(10<<20))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func loadInto[T any](r *report, v *env.Variable[T]) error {
	val, err := v.Load()
	if err != nil {
		return err
	}
	r.add(v.Key(), val, v.Outcome())
	return nil
}

func setupMetrics(ctx context.Context, cfg *config.ServiceConfig, endpoint string) (func(), env.Recorder, error) {
	metrics, shutdownMeter, err := observability.InitMeter(ctx, observability.NewMeterConfig(cfg, endpoint))
	if err != nil {
		return nil, nil, fmt.Errorf("initializing metrics: %w", err)
	}

	shutdown := func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMeter(sctx); err != nil {
			logger.Warn("meter shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}
	return shutdown, metrics, nil
}
