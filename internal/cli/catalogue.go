package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/mreport/internal/report"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "List the metrics of the analytics report",
	Long: `List every metric the analytics report collects, in report order.

Examples:
  mreport catalogue
  mreport catalogue --file custom.yaml
  mreport catalogue --yaml > custom.yaml`,
	Args: cobra.NoArgs,
	RunE: runCatalogue,
}

// Flags
var (
	catalogueFile string
	catalogueYAML bool
)

func init() {
	catalogueCmd.Flags().StringVarP(&catalogueFile, "file", "f", "", "Catalogue file (default: the built-in catalogue)")
	catalogueCmd.Flags().BoolVar(&catalogueYAML, "yaml", false, "Print the catalogue as YAML")
}

func runCatalogue(cmd *cobra.Command, args []string) error {
	catalogue, err := report.LoadCatalogue(catalogueFile)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if catalogueYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]report.Entry{"metrics": catalogue.Entries()}); err != nil {
			return fmt.Errorf("failed to encode catalogue: %w", err)
		}
		return enc.Close()
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tMETRIC\tSOURCE\tEVENT\tAGGREGATION\tTITLE")
	for _, e := range catalogue.Entries() {
		event := e.Query.EventType
		if event == "" {
			event = "-"
		}
		if n := len(e.Query.Filters); n > 0 {
			event += fmt.Sprintf(" (%d %s)", n, plural(n, "filter"))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Category, e.Metric, e.Source, event, e.Aggregation, e.Metric.Title())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%d metrics\n", catalogue.Len())
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

