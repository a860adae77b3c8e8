package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emiliopalmerini/mreport/internal/adapters/amplitude"
	"github.com/emiliopalmerini/mreport/internal/adapters/auth0"
	"github.com/emiliopalmerini/mreport/internal/adapters/console"
	"github.com/emiliopalmerini/mreport/internal/adapters/otel"
	"github.com/emiliopalmerini/mreport/internal/adapters/slack"
	"github.com/emiliopalmerini/mreport/internal/config"
	"github.com/emiliopalmerini/mreport/internal/logger"
	"github.com/emiliopalmerini/mreport/internal/ports"
)

const recordTimeout = 10 * time.Second

// AppContext holds the shared dependencies of one report run.
type AppContext struct {
	Config  *config.Config
	Log     zerolog.Logger
	RunID   string
	Metrics ports.RunMetricsExporter

	out io.Writer
}

// NewAppContext loads the configuration and builds the logger and run
// metrics exporter. Dry-run messages are written to out.
func NewAppContext(ctx context.Context, out io.Writer) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return newAppContext(ctx, cfg, os.Stderr, out)
}

func newAppContext(ctx context.Context, cfg *config.Config, logOut, out io.Writer) (*AppContext, error) {
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	log, err := logger.NewWithWriter(logOut, level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	return &AppContext{
		Config:  cfg,
		Log:     log,
		RunID:   runID,
		Metrics: newRunMetrics(ctx, cfg.OTEL, log),
		out:     out,
	}, nil
}

// newRunMetrics returns the OTLP exporter, or a no-op one when it is disabled
// or cannot be created.
func newRunMetrics(ctx context.Context, cfg otel.Config, log zerolog.Logger) ports.RunMetricsExporter {
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("run metrics disabled")
		return otel.NewNoOpExporter()
	}
	return exp
}

// Messenger returns the Slack messenger, or a console one for dry runs.
func (a *AppContext) Messenger(dryRun bool) (ports.Messenger, error) {
	if dryRun {
		return console.NewMessenger(a.out), nil
	}
	m, err := slack.NewMessenger(a.Config.Slack)
	if err != nil {
		return nil, fmt.Errorf("failed to create slack client: %w", err)
	}
	return m, nil
}

// Amplitude returns a client for the Amplitude dashboard and export APIs.
func (a *AppContext) Amplitude() (*amplitude.Client, error) {
	c, err := amplitude.NewClient(a.Config.Amplitude, a.Config.Report.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create amplitude client: %w", err)
	}
	return c, nil
}

// Auth0 returns a client for the Auth0 management API.
func (a *AppContext) Auth0() (*auth0.Client, error) {
	c, err := auth0.NewClient(a.Config.Auth0, a.Config.Report.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth0 client: %w", err)
	}
	return c, nil
}

// Record exports the stats of a finished job. Failures are logged only.
// Recording still happens after ctx is cancelled.
func (a *AppContext) Record(ctx context.Context, stats ports.RunStats) {
	stats.RunID = a.RunID

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := a.Metrics.RecordRun(ctx, stats); err != nil {
		a.Log.Warn().Err(err).Str("job", stats.Job).Msg("failed to record run metrics")
	}
	a.Log.Debug().
		Str("job", stats.Job).
		Str("status", stats.Status).
		Dur("duration", stats.Duration()).
		Int64("messages", stats.MessagesSent).
		Msg("run finished")
}

// Close flushes the run metrics exporter.
func (a *AppContext) Close(ctx context.Context) error {
	if a.Metrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	return a.Metrics.Close(ctx)
}
