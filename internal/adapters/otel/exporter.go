package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

const (
	serviceName    = "mreport"
	serviceVersion = "1.0.0"
)

// Exporter exports job run metrics to an OTEL Collector.
type Exporter struct {
	provider *sdkmetric.MeterProvider
	meter    metric.Meter

	runsTotal     metric.Int64Counter
	durationHist  metric.Float64Histogram
	eventsTotal   metric.Int64Counter
	usersTotal    metric.Int64Counter
	messagesTotal metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

// newExporter registers the run instruments on provider.
func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	runsTotal, err := meter.Int64Counter(
		"mreport_runs_total",
		metric.WithDescription("Total number of report job runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"mreport_run_duration_seconds",
		metric.WithDescription("Report job run duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	eventsTotal, err := meter.Int64Counter(
		"mreport_events_processed_total",
		metric.WithDescription("Total analytics events aggregated"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	usersTotal, err := meter.Int64Counter(
		"mreport_users_total",
		metric.WithDescription("Total users included in interaction digests"),
		metric.WithUnit("{user}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating users counter: %w", err)
	}

	messagesTotal, err := meter.Int64Counter(
		"mreport_messages_sent_total",
		metric.WithDescription("Total chat messages sent"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating messages counter: %w", err)
	}

	return &Exporter{
		provider:      provider,
		meter:         meter,
		runsTotal:     runsTotal,
		durationHist:  durationHist,
		eventsTotal:   eventsTotal,
		usersTotal:    usersTotal,
		messagesTotal: messagesTotal,
	}, nil
}

// RecordRun records the outcome of a completed job run.
func (e *Exporter) RecordRun(ctx context.Context, s ports.RunStats) error {
	jobAttr := metric.WithAttributes(attribute.String("job", s.Job))

	e.runsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("job", s.Job),
		attribute.String("status", s.Status),
	))
	e.durationHist.Record(ctx, s.Duration().Seconds(), jobAttr)

	if s.EventsProcessed > 0 {
		e.eventsTotal.Add(ctx, s.EventsProcessed, jobAttr)
	}
	if s.Users > 0 {
		e.usersTotal.Add(ctx, s.Users, jobAttr)
	}
	if s.MessagesSent > 0 {
		e.messagesTotal.Add(ctx, s.MessagesSent, jobAttr)
	}

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
