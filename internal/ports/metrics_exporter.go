package ports

import (
	"context"
	"time"
)

// RunMetricsExporter exports job run metrics to an external observability system.
type RunMetricsExporter interface {
	// RecordRun records the outcome of a completed job run.
	RecordRun(ctx context.Context, s RunStats) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// Run statuses.
const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// RunStats describes one job run.
type RunStats struct {
	RunID  string
	Job    string
	Status string

	EventsProcessed int64
	Users           int64
	MessagesSent    int64

	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall time of the run.
func (s RunStats) Duration() time.Duration {
	if s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}
