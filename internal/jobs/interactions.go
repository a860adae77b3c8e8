package jobs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/emiliopalmerini/mreport/internal/activity"
	"github.com/emiliopalmerini/mreport/internal/chunker"
	"github.com/emiliopalmerini/mreport/internal/ports"
	"github.com/emiliopalmerini/mreport/internal/report"
)

// Interactions posts the daily digest of what each user did, one thread per user.
type Interactions struct {
	exporter  ports.EventExporter
	extractor ports.ArchiveExtractor
	messenger ports.Messenger
	pacer     Pacer
	channel   string
	workDir   string
	limit     int
	log       zerolog.Logger
	now       func() time.Time
}

// InteractionsConfig holds the plain settings of the interactions job.
type InteractionsConfig struct {
	Channel      string
	WorkDir      string
	MessageLimit int
}

// NewInteractions creates the interactions digest job.
func NewInteractions(exporter ports.EventExporter, extractor ports.ArchiveExtractor, messenger ports.Messenger, pacer Pacer, cfg InteractionsConfig, log zerolog.Logger) *Interactions {
	return &Interactions{
		exporter:  exporter,
		extractor: extractor,
		messenger: messenger,
		pacer:     pacer,
		channel:   cfg.Channel,
		workDir:   cfg.WorkDir,
		limit:     cfg.MessageLimit,
		log:       log,
		now:       time.Now,
	}
}

// Run exports the events of day, aggregates them per user and posts the digest.
// The extraction directory is removed before Run returns.
func (j *Interactions) Run(ctx context.Context, day time.Time) (ports.RunStats, error) {
	stats := newStats(JobInteractions, j.now())
	label := day.Format(report.DisplayDateLayout)
	header := report.InteractionsHeader(label)
	log := j.log.With().Str("date", label).Logger()

	err := j.run(ctx, day, header, &stats, log)
	finish(&stats, j.now, err)
	if err == nil {
		log.Info().Int64("users", stats.Users).Int64("messages", stats.MessagesSent).Msg("interactions digest sent")
	}
	return stats, err
}

func (j *Interactions) run(ctx context.Context, day time.Time, header string, stats *ports.RunStats, log zerolog.Logger) error {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(23 * time.Hour)

	archive, err := j.exporter.Export(ctx, start, end)
	if errors.Is(err, ports.ErrNoExportData) {
		log.Info().Msg("no export data for day")
		return j.sendEmpty(ctx, header, stats)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to export events")
		return j.fail(ctx, fmt.Errorf("exporting events: %w", err), header, report.InteractionsExportErrorMessage, stats)
	}

	if err := os.MkdirAll(j.workDir, 0755); err != nil {
		return j.fail(ctx, fmt.Errorf("creating work directory: %w", err), header, report.InteractionsErrorMessage, stats)
	}
	dir, err := os.MkdirTemp(j.workDir, "export-")
	if err != nil {
		return j.fail(ctx, fmt.Errorf("creating extract directory: %w", err), header, report.InteractionsErrorMessage, stats)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("failed to clean up export directory")
		}
	}()

	users, err := j.aggregate(ctx, archive, dir, stats, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to prepare interactions digest")
		return j.fail(ctx, err, header, report.InteractionsErrorMessage, stats)
	}

	if len(users) == 0 {
		log.Info().Msg("no user activity in export")
		return j.sendEmpty(ctx, header, stats)
	}

	if err := j.deliver(ctx, header, users, stats); err != nil {
		log.Error().Err(err).Msg("failed to deliver interactions digest")
		return j.fail(ctx, err, header, report.InteractionsErrorMessage, stats)
	}
	return nil
}

func (j *Interactions) aggregate(ctx context.Context, archive []byte, dir string, stats *ports.RunStats, log zerolog.Logger) ([]*activity.UserActivity, error) {
	paths, err := j.extractor.Extract(ctx, archive, dir)
	if err != nil {
		return nil, fmt.Errorf("extracting export: %w", err)
	}
	log.Debug().Int("files", len(paths)).Msg("extracted export files")

	events, err := activity.ReadEvents(paths, log)
	if err != nil {
		return nil, err
	}
	stats.EventsProcessed = int64(len(events))

	users := activity.NewAggregator(log).Aggregate(events)
	stats.Users = int64(len(users))
	return users, nil
}

// deliver posts the digest header, one root message per user, the footer and
// finally each user's activity as replies in that user's thread. The first
// failure aborts the remaining sends.
func (j *Interactions) deliver(ctx context.Context, header string, users []*activity.UserActivity, stats *ports.RunStats) error {
	if _, err := send(ctx, j.messenger, ports.Message{Channel: j.channel, Header: header}, stats); err != nil {
		return fmt.Errorf("sending digest header: %w", err)
	}

	threads := make([]string, len(users))
	for i, u := range users {
		if err := j.pacer.Wait(ctx); err != nil {
			return err
		}
		ts, err := send(ctx, j.messenger, ports.Message{Channel: j.channel, Text: report.UserRootMessage(i+1, u.Email)}, stats)
		if err != nil {
			return fmt.Errorf("opening thread for %s: %w", u.Email, err)
		}
		threads[i] = ts
	}

	footer := ports.Message{Channel: j.channel, Body: report.InteractionsFooter(header), Divider: true}
	if _, err := send(ctx, j.messenger, footer, stats); err != nil {
		return fmt.Errorf("sending digest footer: %w", err)
	}

	for i, u := range users {
		for chunk := range chunker.Chunks(activity.RenderUserActivity(u), j.limit) {
			if err := j.pacer.Wait(ctx); err != nil {
				return err
			}
			msg := ports.Message{Channel: j.channel, ThreadID: threads[i], Text: chunk}
			if _, err := send(ctx, j.messenger, msg, stats); err != nil {
				return fmt.Errorf("sending thread message for %s: %w", u.Email, err)
			}
		}
	}
	return nil
}

func (j *Interactions) sendEmpty(ctx context.Context, header string, stats *ports.RunStats) error {
	if _, err := send(ctx, j.messenger, templateMessage(j.channel, header, report.InteractionsEmptyMessage), stats); err != nil {
		return fmt.Errorf("sending empty digest: %w", err)
	}
	return nil
}

// fail posts the fixed error message for the digest and returns cause,
// joined with any error from posting it.
func (j *Interactions) fail(ctx context.Context, cause error, header, body string, stats *ports.RunStats) error {
	if _, err := send(ctx, j.messenger, templateMessage(j.channel, header, body), stats); err != nil {
		return errors.Join(cause, fmt.Errorf("sending error message: %w", err))
	}
	return cause
}
