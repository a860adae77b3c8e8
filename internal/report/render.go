package report

import (
	"fmt"
	"strings"

	"github.com/emiliopalmerini/mreport/internal/util"
)

const (
	metricIndent       = "          "
	noDataText         = "No data found"
	noPreviousDataText = "(No data for previous period)"
)

// nestedMetrics render one level deeper, under their format's total.
var nestedMetrics = map[MetricName]bool{
	MetricExportMP4LandscapeNoCapts: true,
	MetricExportMP4LandscapeCapts:   true,
	MetricExportMP4VerticalNoCapts:  true,
	MetricExportMP4VerticalCapts:    true,
}

// RenderAnalytics renders current as quoted mrkdwn lines, comparing each
// metric with the same metric in previous.
func RenderAnalytics(current, previous ReportMetrics) string {
	var b strings.Builder

	for _, s := range current.sections {
		fmt.Fprintf(&b, "\n>*%s:*", s.category.Title())

		for _, m := range s.values {
			indent := metricIndent
			if nestedMetrics[m.Name] {
				indent += metricIndent
			}

			if m.Value == nil {
				fmt.Fprintf(&b, "\n>%s- *%s:* %s", indent, m.Name.Title(), noDataText)
				continue
			}

			prev, _ := previous.Lookup(s.category, m.Name)
			fmt.Fprintf(&b, "\n>%s- *%s:* %s %s", indent, m.Name.Title(), formatValue(m.Name, *m.Value), compare(*m.Value, prev))
		}
	}

	return b.String()
}

func compare(current float64, previous *float64) string {
	if previous == nil {
		return noPreviousDataText
	}
	change, ok := util.FormatPercentageChange(current, *previous)
	if !ok {
		return "(" + util.NoValue + ")"
	}
	return change
}

func formatValue(name MetricName, v float64) string {
	if name == MetricTotalVideoDuration {
		return util.OrNoValue(util.FormatDuration(v))
	}
	return util.FormatNumber(v)
}
