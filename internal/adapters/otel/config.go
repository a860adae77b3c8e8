package otel

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string `envconfig:"MREPORT_OTEL_ENDPOINT"`
	Enabled  bool   `envconfig:"MREPORT_OTEL_ENABLED" default:"false"`
	Insecure bool   `envconfig:"MREPORT_OTEL_INSECURE" default:"false"`
}
