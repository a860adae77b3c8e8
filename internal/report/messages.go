package report

import "fmt"

// AnalyticsHeader is the title of the metrics comparison report.
func AnalyticsHeader(w Window) string {
	return fmt.Sprintf("🗓️ (%s) Eddie %s Analytics", w.Label(), w.Period.Title())
}

// NoAnalyticsMessage replaces the report body when no metric has data.
func NoAnalyticsMessage(w Window) string {
	return fmt.Sprintf("> - *No %s metrics found for Date: %s*", w.Period, w.Label())
}

// AnalyticsErrorMessage replaces the report body when collection failed.
func AnalyticsErrorMessage(p Period) string {
	return fmt.Sprintf("> - *Error when preparing message for %s analytics*", p)
}

// PromptingHeader is the title of the response time report.
func PromptingHeader(w Window) string {
	return fmt.Sprintf("⏰ (%s) Eddie Prompting Time Analytics Report", w.Label())
}

// PromptingErrorMessage replaces the response time body when collection failed.
func PromptingErrorMessage(p Period) string {
	return fmt.Sprintf("> - *Error when preparing %s prompting time report*", p)
}

// InteractionsHeader is the title of the daily interactions digest.
func InteractionsHeader(day string) string {
	return fmt.Sprintf("🗓️ (%s) Daily User Interactions", day)
}

// Interactions digest bodies for the failure and empty cases.
const (
	InteractionsExportErrorMessage = "> - *Error when exporting events for daily summarizes user interactions analytics*"
	InteractionsErrorMessage       = "> - *Error when preparing data for daily summarizes user interactions analytics*"
	InteractionsEmptyMessage       = "> - *Export data not found*"
)

// UserRootMessage opens the thread of the i-th user in the digest.
func UserRootMessage(i int, identity string) string {
	return fmt.Sprintf("%d) 👤User: %s\n", i, identity)
}

// InteractionsFooter closes the list of user threads.
func InteractionsFooter(header string) string {
	return fmt.Sprintf(":checkered_flag: *End of Report:* %s", header)
}
