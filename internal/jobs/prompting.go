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

// PromptingTime posts the average response time report.
type PromptingTime struct {
	metrics   ports.MetricsQuerier
	messenger ports.Messenger
	channel   string
	log       zerolog.Logger
	now       func() time.Time
}

// NewPromptingTime creates the prompting time report job.
func NewPromptingTime(metrics ports.MetricsQuerier, messenger ports.Messenger, channel string, log zerolog.Logger) *PromptingTime {
	return &PromptingTime{
		metrics:   metrics,
		messenger: messenger,
		channel:   channel,
		log:       log,
		now:       time.Now,
	}
}

// Run queries the response times of the last complete period and posts them.
func (p *PromptingTime) Run(ctx context.Context, period report.Period) (ports.RunStats, error) {
	stats := newStats(JobPrompting, p.now())
	w := period.Window(stats.StartedAt)
	log := p.log.With().Str("period", string(period)).Str("range", w.Label()).Logger()

	var body string
	times, buildErr := report.CollectPromptingTimes(ctx, p.metrics, w.Current)
	switch {
	case buildErr != nil:
		log.Error().Err(buildErr).Msg("failed to prepare prompting time report")
		body = report.PromptingErrorMessage(period)
	case times.Empty():
		log.Info().Msg("no prompting metrics found for period")
		body = report.NoAnalyticsMessage(w)
	default:
		body = report.RenderPromptingTimes(times)
	}

	_, sendErr := send(ctx, p.messenger, templateMessage(p.channel, report.PromptingHeader(w), body), &stats)
	if sendErr != nil {
		sendErr = fmt.Errorf("sending prompting time report: %w", sendErr)
	}

	err := errors.Join(buildErr, sendErr)
	finish(&stats, p.now, err)
	if err == nil {
		log.Info().Msg("prompting time report sent")
	}
	return stats, err
}
