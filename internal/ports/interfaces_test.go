package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/mreport/internal/adapters/amplitude"
	"github.com/emiliopalmerini/mreport/internal/adapters/auth0"
	"github.com/emiliopalmerini/mreport/internal/adapters/console"
	"github.com/emiliopalmerini/mreport/internal/adapters/otel"
	"github.com/emiliopalmerini/mreport/internal/adapters/slack"
	"github.com/emiliopalmerini/mreport/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestEventExporterConformance(t *testing.T) {
	var _ ports.EventExporter = (*amplitude.Client)(nil)
}

func TestArchiveExtractorConformance(t *testing.T) {
	var _ ports.ArchiveExtractor = (*amplitude.Extractor)(nil)
}

func TestMetricsQuerierConformance(t *testing.T) {
	var _ ports.MetricsQuerier = (*amplitude.Client)(nil)
}

func TestIdentityCounterConformance(t *testing.T) {
	var _ ports.IdentityCounter = (*auth0.Client)(nil)
}

func TestSlackMessengerConformance(t *testing.T) {
	var _ ports.Messenger = (*slack.Messenger)(nil)
}

func TestConsoleMessengerConformance(t *testing.T) {
	var _ ports.Messenger = (*console.Messenger)(nil)
}

func TestRunMetricsExporterConformance(t *testing.T) {
	var _ ports.RunMetricsExporter = (*otel.Exporter)(nil)
	var _ ports.RunMetricsExporter = (*otel.NoOpExporter)(nil)
}

func TestRunStatsDuration(t *testing.T) {
	var s ports.RunStats
	if s.Duration() != 0 {
		t.Errorf("zero stats duration = %v", s.Duration())
	}
}
