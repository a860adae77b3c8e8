package cli

import (
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mreport/internal/jobs"
	"github.com/emiliopalmerini/mreport/internal/report"
)

var promptingCmd = &cobra.Command{
	Use:   "prompting",
	Short: "Post the average response time report",
	Long: `Query the average time taken by the assistant to answer prompts during
the last complete period, and post it to the analytics channel.

Examples:
  mreport prompting --period daily
  mreport prompting --period weekly --dry-run`,
	Args: cobra.NoArgs,
	RunE: runPrompting,
}

// Flags
var (
	promptingPeriod string
	promptingDryRun bool
)

func init() {
	promptingCmd.Flags().StringVarP(&promptingPeriod, "period", "p", string(report.Daily), "Report period: daily, weekly")
	promptingCmd.Flags().BoolVar(&promptingDryRun, "dry-run", false, "Print the report instead of posting it")
}

func runPrompting(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	period, err := report.ParsePeriod(promptingPeriod)
	if err != nil {
		return err
	}

	app, err := NewAppContext(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	if err := app.Config.ValidatePrompting(promptingDryRun); err != nil {
		return err
	}

	amp, err := app.Amplitude()
	if err != nil {
		return err
	}
	messenger, err := app.Messenger(promptingDryRun)
	if err != nil {
		return err
	}

	log := app.Log.With().Str("job", jobs.JobPrompting).Logger()
	job := jobs.NewPromptingTime(amp, messenger, app.Config.Slack.AnalyticsChannelID, log)

	stats, err := job.Run(ctx, period)
	app.Record(ctx, stats)
	return err
}
