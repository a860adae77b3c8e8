package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mreport/internal/adapters/amplitude"
	"github.com/emiliopalmerini/mreport/internal/jobs"
	"github.com/emiliopalmerini/mreport/internal/report"
)

var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Post the daily per-user interactions digest",
	Long: `Export one day of raw events, group prompts and exports by user and
project, and post one thread per user to the details channel.

Examples:
  mreport interactions                      # yesterday
  mreport interactions --date 2024-03-12
  mreport interactions --dry-run`,
	Args: cobra.NoArgs,
	RunE: runInteractions,
}

// Flags
var (
	interactionsDate   string
	interactionsDryRun bool
)

func init() {
	interactionsCmd.Flags().StringVarP(&interactionsDate, "date", "d", "", "Day to report, YYYY-MM-DD (default: yesterday)")
	interactionsCmd.Flags().BoolVar(&interactionsDryRun, "dry-run", false, "Print the digest instead of posting it")
}

// parseDay parses a --date value in the local time zone. An empty value
// selects yesterday.
func parseDay(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return report.Yesterday(now).Start, nil
	}
	day, err := time.ParseInLocation(report.DisplayDateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return day, nil
}

func runInteractions(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	day, err := parseDay(interactionsDate, time.Now())
	if err != nil {
		return err
	}

	app, err := NewAppContext(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	if err := app.Config.ValidateInteractions(interactionsDryRun); err != nil {
		return err
	}

	amp, err := app.Amplitude()
	if err != nil {
		return err
	}
	messenger, err := app.Messenger(interactionsDryRun)
	if err != nil {
		return err
	}

	rc := app.Config.Report
	log := app.Log.With().Str("job", jobs.JobInteractions).Logger()
	job := jobs.NewInteractions(amp, amplitude.NewExtractor(), messenger, jobs.NewPacer(rc.MessageInterval), jobs.InteractionsConfig{
		Channel:      app.Config.Slack.DetailsChannelID,
		WorkDir:      rc.WorkDir,
		MessageLimit: rc.MessageLimit,
	}, log)

	stats, err := job.Run(ctx, day)
	app.Record(ctx, stats)
	return err
}
