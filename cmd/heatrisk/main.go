// Command heatrisk generates a synthetic heat-risk dataset and exports the
// static risk classifier as a C header for microcontroller sketches.
//
// Usage:
//
//	HEATRISK_SAMPLE_COUNT=5000 HEATRISK_OUTPUT_FILE=HeatIndexModel.h go run ./cmd/heatrisk
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/heat-risk-model/internal/config"
	"github.com/couchcryptid/heat-risk-model/internal/dataset"
	"github.com/couchcryptid/heat-risk-model/internal/domain"
	"github.com/couchcryptid/heat-risk-model/internal/export"
	"github.com/couchcryptid/heat-risk-model/internal/observability"
	"github.com/couchcryptid/heat-risk-model/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		slog.Error("heatrisk failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics(nil)

	src := dataset.GlobalSource()
	if cfg.Seed != nil {
		src = dataset.NewSeededSource(*cfg.Seed)
		logger.Info("using seeded random source", "seed", *cfg.Seed)
	}

	generator := dataset.NewGenerator(src)
	exporter := export.NewExporter(export.NewRenderer(domain.HeatRiskRules), export.NewFileSink(), logger)
	p := pipeline.New(generator, exporter, logger, metrics, cfg.SampleCount, cfg.OutputFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, runErr := p.Run(ctx)

	// Metrics are flushed on failure too so last_run_success reports 0.
	if cfg.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsTextfile, prometheus.DefaultGatherer); err != nil {
			logger.Error("metrics textfile write failed", "path", cfg.MetricsTextfile, "error", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Generated %d samples.\n", res.Samples)
	fmt.Printf("Model exported to %s (%d bytes).\n", res.OutputPath, res.Bytes)
	fmt.Println("Copy this file into your Arduino sketch folder.")
	return nil
}
