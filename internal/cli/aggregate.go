package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mreport/internal/activity"
	"github.com/emiliopalmerini/mreport/internal/adapters/htmlpreview"
	"github.com/emiliopalmerini/mreport/internal/chunker"
	"github.com/emiliopalmerini/mreport/internal/logger"
	"github.com/emiliopalmerini/mreport/internal/report"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate FILE...",
	Short: "Aggregate decoded export files offline",
	Long: `Read decoded Amplitude export files (JSON lines or a JSON array), group
prompts and exports by user and project, and print each user's thread as it
would be posted. Nothing is sent and no credentials are needed.

Examples:
  mreport aggregate export/*.json
  mreport aggregate events.json --limit 500 --html digest.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAggregate,
}

// Flags
var (
	aggregateLimit int
	aggregateHTML  string
)

func init() {
	aggregateCmd.Flags().IntVarP(&aggregateLimit, "limit", "n", chunker.DefaultLimit, "Maximum characters per thread message")
	aggregateCmd.Flags().StringVar(&aggregateHTML, "html", "", "Also write an HTML preview to this file")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		level = "warn"
	}
	log, err := logger.NewWithWriter(cmd.ErrOrStderr(), level, logger.FormatConsole)
	if err != nil {
		return err
	}

	users, err := activity.NewAggregator(log).AggregateFiles(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printThreads(out, users, aggregateLimit); err != nil {
		return err
	}

	if aggregateHTML != "" {
		if err := writePreview(cmd, aggregateHTML, users, aggregateLimit); err != nil {
			return err
		}
		fmt.Fprintf(out, "HTML preview written to %s\n", aggregateHTML)
	}
	return nil
}

func printThreads(w io.Writer, users []*activity.UserActivity, limit int) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, report.InteractionsEmptyMessage)
		return err
	}
	for i, u := range users {
		if _, err := fmt.Fprint(w, report.UserRootMessage(i+1, u.Email)); err != nil {
			return err
		}
		n := 0
		for chunk := range chunker.Chunks(activity.RenderUserActivity(u), limit) {
			n++
			if _, err := fmt.Fprintf(w, "--- message %d ---\n%s", n, chunk); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writePreview(cmd *cobra.Command, path string, users []*activity.UserActivity, limit int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}

	chunk := func(s string) []string { return chunker.Split(s, limit) }
	renderErr := htmlpreview.Page("User interactions", users, chunk).Render(cmd.Context(), f)
	closeErr := f.Close()
	if renderErr != nil {
		return fmt.Errorf("failed to render preview: %w", renderErr)
	}
	return closeErr
}
