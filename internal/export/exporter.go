package export

import (
	"context"
	"log/slog"
)

// Exporter renders the classifier and hands the text to a Sink.
type Exporter struct {
	renderer *Renderer
	sink     Sink
	logger   *slog.Logger
}

// NewExporter wires a renderer to a sink.
func NewExporter(renderer *Renderer, sink Sink, logger *slog.Logger) *Exporter {
	return &Exporter{renderer: renderer, sink: sink, logger: logger}
}

// Export renders the header and writes it to path, returning the number of
// bytes written. Sink errors are returned unchanged.
func (e *Exporter) Export(ctx context.Context, path string) (int, error) {
	text, err := e.renderer.Render()
	if err != nil {
		return 0, err
	}
	data := []byte(text)
	if err := e.sink.Write(ctx, path, data); err != nil {
		return 0, err
	}
	e.logger.Debug("header written", "path", path, "func", e.renderer.FuncName, "bytes", len(data))
	return len(data), nil
}
