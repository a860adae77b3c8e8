package cli

import (
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mreport/internal/jobs"
	"github.com/emiliopalmerini/mreport/internal/report"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Post the period-over-period metrics report",
	Long: `Collect every metric of the catalogue for the last complete period and
the period before it, and post the comparison to the analytics channel.

Examples:
  mreport analytics --period daily
  mreport analytics --period weekly --dry-run`,
	Args: cobra.NoArgs,
	RunE: runAnalytics,
}

// Flags
var (
	analyticsPeriod string
	analyticsDryRun bool
)

func init() {
	analyticsCmd.Flags().StringVarP(&analyticsPeriod, "period", "p", string(report.Daily), "Report period: daily, weekly")
	analyticsCmd.Flags().BoolVar(&analyticsDryRun, "dry-run", false, "Print the report instead of posting it")
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	period, err := report.ParsePeriod(analyticsPeriod)
	if err != nil {
		return err
	}

	app, err := NewAppContext(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	if err := app.Config.ValidateAnalytics(analyticsDryRun); err != nil {
		return err
	}

	catalogue, err := report.LoadCatalogue(app.Config.Report.Catalogue)
	if err != nil {
		return err
	}
	amp, err := app.Amplitude()
	if err != nil {
		return err
	}
	idp, err := app.Auth0()
	if err != nil {
		return err
	}
	messenger, err := app.Messenger(analyticsDryRun)
	if err != nil {
		return err
	}

	log := app.Log.With().Str("job", jobs.JobAnalytics).Logger()
	collector := report.NewCollector(catalogue, amp, idp, app.Config.Report.QueryConcurrency, log)
	job := jobs.NewAnalytics(collector, messenger, app.Config.Slack.AnalyticsChannelID, log)

	stats, err := job.Run(ctx, period)
	app.Record(ctx, stats)
	return err
}
