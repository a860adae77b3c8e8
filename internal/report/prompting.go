package report

import (
	"fmt"
	"strings"

	"github.com/emiliopalmerini/mreport/internal/ports"
	"github.com/emiliopalmerini/mreport/internal/util"
)

const (
	eventEddieResponse = "eddie_response"
	promptingIndent    = "            "
)

var responseTimeGroup = []ports.GroupBy{{Type: "event", Value: "timeTakenMs"}}

// FirstResponseQuery averages the response time of each user's first prompt.
var FirstResponseQuery = ports.EventQuery{
	EventType: eventEddieResponse,
	Filters: []ports.PropertyFilter{{
		Type:   "nth_time_hack",
		Key:    "nth_time_performed",
		Op:     "is",
		Values: []string{"1"},
	}},
	GroupBy: responseTimeGroup,
}

// AllResponsesQuery averages the response time of every prompt.
var AllResponsesQuery = ports.EventQuery{
	EventType: eventEddieResponse,
	GroupBy:   responseTimeGroup,
}

// PromptingTimes holds average response times in milliseconds.
type PromptingTimes struct {
	FirstResponseMs *float64
	AllResponsesMs  *float64
}

// Empty reports whether neither average is available.
func (p PromptingTimes) Empty() bool {
	return p.FirstResponseMs == nil && p.AllResponsesMs == nil
}

// RenderPromptingTimes renders the response time report body.
func RenderPromptingTimes(p PromptingTimes) string {
	var b strings.Builder
	b.WriteString("> 📝 *Average time taken for*:\n")
	fmt.Fprintf(&b, ">%s- *All eddie responses*: %s\n", promptingIndent, formatMillis(p.AllResponsesMs))
	fmt.Fprintf(&b, ">%s- *First eddie response for new users*: %s\n", promptingIndent, formatMillis(p.FirstResponseMs))
	return b.String()
}

func formatMillis(ms *float64) string {
	if ms == nil {
		return util.NoValue
	}
	return util.OrNoValue(util.FormatDuration(*ms / 1000))
}
