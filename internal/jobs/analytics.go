package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emiliopalmerini/mreport/internal/ports"
	"github.com/emiliopalmerini/mreport/internal/report"
)

// MetricsCollector gathers the report metrics for a date range.
type MetricsCollector interface {
	Collect(ctx context.Context, r ports.DateRange) (report.ReportMetrics, error)
}

// Analytics posts the period-over-period metrics report.
type Analytics struct {
	collector MetricsCollector
	messenger ports.Messenger
	channel   string
	log       zerolog.Logger
	now       func() time.Time
}

// NewAnalytics creates the analytics report job.
func NewAnalytics(collector MetricsCollector, messenger ports.Messenger, channel string, log zerolog.Logger) *Analytics {
	return &Analytics{
		collector: collector,
		messenger: messenger,
		channel:   channel,
		log:       log,
		now:       time.Now,
	}
}

// Run collects the metrics of the last complete period and posts the report.
// When collection fails the fixed error message is posted instead and the
// collection error is returned.
func (a *Analytics) Run(ctx context.Context, period report.Period) (ports.RunStats, error) {
	stats := newStats(JobAnalytics, a.now())
	w := period.Window(stats.StartedAt)
	log := a.log.With().Str("period", string(period)).Str("range", w.Label()).Logger()

	body, buildErr := a.build(ctx, w, log)
	if buildErr != nil {
		log.Error().Err(buildErr).Msg("failed to prepare analytics report")
		body = report.AnalyticsErrorMessage(period)
	}

	_, sendErr := send(ctx, a.messenger, templateMessage(a.channel, report.AnalyticsHeader(w), body), &stats)
	if sendErr != nil {
		sendErr = fmt.Errorf("sending analytics report: %w", sendErr)
	}

	err := errors.Join(buildErr, sendErr)
	finish(&stats, a.now, err)
	if err == nil {
		log.Info().Msg("analytics report sent")
	}
	return stats, err
}

func (a *Analytics) build(ctx context.Context, w report.Window, log zerolog.Logger) (string, error) {
	current, err := a.collector.Collect(ctx, w.Current)
	if err != nil {
		return "", fmt.Errorf("collecting current period: %w", err)
	}
	if current.Empty() {
		log.Info().Msg("no metrics found for period")
		return report.NoAnalyticsMessage(w), nil
	}

	previous, err := a.collector.Collect(ctx, w.Previous)
	if err != nil {
		return "", fmt.Errorf("collecting comparison period: %w", err)
	}
	return report.RenderAnalytics(current, previous), nil
}
