// Package config loads mreport settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/mreport/internal/adapters/amplitude"
	"github.com/emiliopalmerini/mreport/internal/adapters/auth0"
	"github.com/emiliopalmerini/mreport/internal/adapters/otel"
	"github.com/emiliopalmerini/mreport/internal/adapters/slack"
	"github.com/emiliopalmerini/mreport/internal/util"
)

// ErrMissing is wrapped by validation errors for unset required settings.
var ErrMissing = errors.New("missing required configuration")

// Report holds the settings shared by every job.
type Report struct {
	WorkDir          string        `envconfig:"MREPORT_WORK_DIR"`
	MessageLimit     int           `envconfig:"MREPORT_MESSAGE_LIMIT" default:"3000"`
	MessageInterval  time.Duration `envconfig:"MREPORT_MESSAGE_INTERVAL" default:"1s"`
	HTTPTimeout      time.Duration `envconfig:"MREPORT_HTTP_TIMEOUT" default:"30s"`
	QueryConcurrency int           `envconfig:"MREPORT_QUERY_CONCURRENCY" default:"4"`
	Catalogue        string        `envconfig:"MREPORT_CATALOGUE"`
}

// Log holds logger settings.
type Log struct {
	Level  string `envconfig:"MREPORT_LOG_LEVEL" default:"info"`
	Format string `envconfig:"MREPORT_LOG_FORMAT" default:"console"`
}

// Config holds the complete mreport configuration.
type Config struct {
	Report    Report
	Log       Log
	Amplitude amplitude.Config
	Auth0     auth0.Config
	Slack     slack.Config
	OTEL      otel.Config
}

// Load reads an optional .env file from the working directory and then
// processes the environment. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv processes the environment without reading any file.
func FromEnv() (*Config, error) {
	var cfg Config
	for _, spec := range []any{&cfg.Report, &cfg.Log, &cfg.Amplitude, &cfg.Auth0, &cfg.Slack, &cfg.OTEL} {
		if err := envconfig.Process("", spec); err != nil {
			return nil, err
		}
	}

	if cfg.Report.WorkDir == "" {
		cacheDir, err := util.GetXDGCacheDir()
		if err != nil {
			cacheDir = filepath.Join(os.TempDir(), "mreport")
		}
		cfg.Report.WorkDir = filepath.Join(cacheDir, "exports")
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the report settings.
func (r Report) Validate() error {
	if r.MessageLimit < 0 {
		return fmt.Errorf("MREPORT_MESSAGE_LIMIT must not be negative, got %d", r.MessageLimit)
	}
	if r.MessageInterval < 0 {
		return fmt.Errorf("MREPORT_MESSAGE_INTERVAL must not be negative, got %s", r.MessageInterval)
	}
	if r.HTTPTimeout <= 0 {
		return fmt.Errorf("MREPORT_HTTP_TIMEOUT must be positive, got %s", r.HTTPTimeout)
	}
	if r.QueryConcurrency < 1 {
		return fmt.Errorf("MREPORT_QUERY_CONCURRENCY must be at least 1, got %d", r.QueryConcurrency)
	}
	return nil
}

// ValidateAnalytics checks the settings needed by the analytics report.
// A dry run prints instead of posting and needs no Slack settings.
func (c *Config) ValidateAnalytics(dryRun bool) error {
	errs := []error{c.Amplitude.Validate(), c.Auth0.Validate()}
	if !dryRun {
		errs = append(errs, c.Slack.Validate(), slack.RequireChannel(c.Slack.AnalyticsChannelID, "SLACK_ANALYTICS_CHANNEL_ID"))
	}
	return missing(errs...)
}

// ValidatePrompting checks the settings needed by the prompting time report.
func (c *Config) ValidatePrompting(dryRun bool) error {
	errs := []error{c.Amplitude.Validate()}
	if !dryRun {
		errs = append(errs, c.Slack.Validate(), slack.RequireChannel(c.Slack.AnalyticsChannelID, "SLACK_ANALYTICS_CHANNEL_ID"))
	}
	return missing(errs...)
}

// ValidateInteractions checks the settings needed by the interactions digest.
func (c *Config) ValidateInteractions(dryRun bool) error {
	errs := []error{c.Amplitude.Validate()}
	if !dryRun {
		errs = append(errs, c.Slack.Validate(), slack.RequireChannel(c.Slack.DetailsChannelID, "SLACK_DETAILS_CHANNEL_ID"))
	}
	return missing(errs...)
}

func missing(errs ...error) error {
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrMissing, err)
	}
	return nil
}
