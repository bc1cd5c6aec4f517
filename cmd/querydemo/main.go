// Command querydemo runs a catalogue of named queries over a YAML dataset of
// pet owners, sensor readings and integer sets.
//
// Usage:
//
//	querydemo [--config config.yml] [--dataset dataset.yml] [--query name]... [--list] [--version]
//
// Settings can also come from QUERYDEMO_* environment variables, e.g.
// QUERYDEMO_LOGGING_LEVEL=debug to trace every pet pulled through a query.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/kbukum/querykit/config"
	"github.com/kbukum/querykit/dataset"
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
	"github.com/kbukum/querykit/version"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "querydemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("querydemo", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to config.yml (searched for when empty)")
	flags.String("dataset", "", "path to the dataset YAML file")
	names := flags.StringArray("query", nil, "run only the named query (repeatable)")
	list := flags.Bool("list", false, "list the query catalogue and exit")
	showVersion := flags.Bool("version", false, "print version information and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(out, "querydemo", version.Get())
		return nil
	}
	if *list {
		for _, q := range catalogue {
			fmt.Fprintf(out, "%-20s %s\n", q.name, q.description)
		}
		return nil
	}

	opts := []config.LoaderOption{
		config.WithEnvPrefix("QUERYDEMO"),
		config.WithFlag("dataset.path", flags.Lookup("dataset")),
	}
	if *configPath != "" {
		opts = append(opts, config.WithConfigFile(*configPath))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.Init(cfg.Logging)
	runID := uuid.NewString()
	log := logger.WithComponent(cfg.Name).WithFields(logger.Fields(logger.FieldRunID, runID))
	log.Info("starting", version.Get().Fields())
	ctx = observability.WithRunID(ctx, runID)

	metrics, shutdown, err := setupTelemetry(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer shutdown()

	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	return NewRunner(ds, metrics, log, out).Run(ctx, *names)
}

// setupTelemetry installs OTLP tracing and metrics when enabled. The returned
// shutdown flushes both providers.
func setupTelemetry(ctx context.Context, cfg *config.Config, log *logger.Logger) (*observability.Metrics, func(), error) {
	if !cfg.Tracing.Enabled {
		return nil, func() {}, nil
	}
	info := version.Get()

	tp, err := observability.InitTracer(ctx, &observability.TracerConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: info.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SampleRate:     cfg.Tracing.SampleRate,
	})
	if err != nil {
		return nil, nil, err
	}
	mp, err := observability.InitMeter(ctx, &observability.MeterConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: info.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		Interval:       cfg.Tracing.ExportInterval,
	})
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, err
	}
	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, nil, err
	}

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("tracer shutdown failed")
		}
		if err := mp.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("meter shutdown failed")
		}
	}
	return metrics, shutdown, nil
}
