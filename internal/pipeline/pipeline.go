package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/heat-risk-model/internal/dataset"
	"github.com/couchcryptid/heat-risk-model/internal/domain"
	"github.com/couchcryptid/heat-risk-model/internal/observability"
)

// SampleGenerator produces a labeled synthetic dataset.
type SampleGenerator interface {
	Generate(n int) []domain.Sample
}

// ModelExporter renders the static classifier and stores it at path.
type ModelExporter interface {
	Export(ctx context.Context, path string) (int, error)
}

// Result describes a completed run.
type Result struct {
	Samples    int
	Summary    dataset.Summary
	OutputPath string
	Bytes      int
	Duration   time.Duration
}

// Pipeline runs the generate-then-export sequence. The exported classifier is
// independent of the generated dataset; the dataset is only summarized.
type Pipeline struct {
	generator   SampleGenerator
	exporter    ModelExporter
	logger      *slog.Logger
	metrics     *observability.Metrics
	sampleCount int
	outputPath  string
}

// New creates a Pipeline with the given stages and observability.
func New(g SampleGenerator, e ModelExporter, logger *slog.Logger, metrics *observability.Metrics, sampleCount int, outputPath string) *Pipeline {
	return &Pipeline{
		generator:   g,
		exporter:    e,
		logger:      logger,
		metrics:     metrics,
		sampleCount: sampleCount,
		outputPath:  outputPath,
	}
}

// Run generates the dataset, then exports the model header. Only export
// failures are returned.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := clock.Now()
	p.metrics.LastRunSuccess.Set(0)

	summary := p.generate()

	exportStart := clock.Now()
	n, err := p.exporter.Export(ctx, p.outputPath)
	p.metrics.ExportDuration.Observe(clock.Since(exportStart).Seconds())
	if err != nil {
		p.metrics.ExportErrors.Inc()
		p.logger.Error("model export failed", "path", p.outputPath, "error", err)
		return Result{}, fmt.Errorf("export model: %w", err)
	}
	p.metrics.ExportBytes.Set(float64(n))
	p.metrics.LastRunSuccess.Set(1)

	res := Result{
		Samples:    summary.Total,
		Summary:    summary,
		OutputPath: p.outputPath,
		Bytes:      n,
		Duration:   clock.Since(start),
	}
	p.logger.Info("model exported", "path", res.OutputPath, "bytes", res.Bytes, "duration", res.Duration)
	return res, nil
}

func (p *Pipeline) generate() dataset.Summary {
	p.logger.Info("generating synthetic samples", "count", p.sampleCount)

	start := clock.Now()
	samples := p.generator.Generate(p.sampleCount)
	p.metrics.GenerationDuration.Observe(clock.Since(start).Seconds())

	summary := dataset.Summarize(samples)
	p.metrics.SamplesGenerated.Add(float64(summary.Total))
	for c, n := range summary.ByLabel {
		p.metrics.SamplesByLabel.WithLabelValues(c.String()).Add(float64(n))
	}
	p.metrics.SamplesOutOfRange.Add(float64(summary.OutOfRange))

	p.logger.Info("dataset ready", append([]any{"samples", summary.Total}, summary.LabelCounts()...)...)
	if summary.OutOfRange > 0 {
		p.logger.Debug("samples outside rothfusz validity range",
			"count", summary.OutOfRange,
			"heat_index_min", summary.HeatIndex.Min,
			"heat_index_max", summary.HeatIndex.Max,
		)
	}
	return summary
}
