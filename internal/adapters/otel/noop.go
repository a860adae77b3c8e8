package otel

import (
	"context"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordRun(ctx context.Context, s ports.RunStats) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
