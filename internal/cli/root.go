package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mreport",
	Short: "Scheduled analytics reports for Slack",
	Long: `mreport collects product analytics from Amplitude and Auth0 and posts
period-over-period reports and per-user interaction digests to Slack.

Credentials are read from the environment or from a .env file in the working
directory. Use --dry-run to print messages instead of posting them.`,
	SilenceUsage: true,
}

// logLevel overrides MREPORT_LOG_LEVEL when set.
var logLevel string

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(promptingCmd)
	rootCmd.AddCommand(interactionsCmd)
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(catalogueCmd)
}
