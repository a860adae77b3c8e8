package report

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

// Collector runs the catalogue queries for a date range.
type Collector struct {
	catalogue   *Catalogue
	metrics     ports.MetricsQuerier
	identity    ports.IdentityCounter
	concurrency int
	log         zerolog.Logger
}

// NewCollector creates a Collector. concurrency bounds the number of
// in-flight queries; values below 1 run them one at a time.
func NewCollector(catalogue *Catalogue, metrics ports.MetricsQuerier, identity ports.IdentityCounter, concurrency int, log zerolog.Logger) *Collector {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Collector{
		catalogue:   catalogue,
		metrics:     metrics,
		identity:    identity,
		concurrency: concurrency,
		log:         log,
	}
}

// Collect queries every catalogue metric for r. The first failing query
// cancels the rest and its error is returned.
func (c *Collector) Collect(ctx context.Context, r ports.DateRange) (ReportMetrics, error) {
	entries := c.catalogue.Entries()
	results := make([]*float64, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, e := range entries {
		g.Go(func() error {
			v, err := c.query(gctx, e, r)
			if err != nil {
				return fmt.Errorf("failed to query %s: %w", e.Metric, err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ReportMetrics{}, err
	}

	b := NewBuilder()
	for i, e := range entries {
		b.Set(e.Category, e.Metric, results[i])
	}

	c.log.Debug().
		Str("start", r.Start.Format(DisplayDateLayout)).
		Str("end", r.End.Format(DisplayDateLayout)).
		Int("metrics", len(entries)).
		Msg("collected report metrics")

	return b.Build(), nil
}

func (c *Collector) query(ctx context.Context, e Entry, r ports.DateRange) (*float64, error) {
	switch e.Source {
	case SourceIdentity:
		n, err := c.identity.CountNewUsers(ctx, r)
		if err != nil {
			return nil, err
		}
		return Float(float64(n)), nil
	default:
		return c.metrics.Query(ctx, e.Query, r, e.Aggregation)
	}
}

// CollectPromptingTimes queries the average response times for r.
func CollectPromptingTimes(ctx context.Context, metrics ports.MetricsQuerier, r ports.DateRange) (PromptingTimes, error) {
	var times PromptingTimes

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := metrics.Query(gctx, FirstResponseQuery, r, ports.AggregationValueAvg)
		if err != nil {
			return fmt.Errorf("failed to query first response time: %w", err)
		}
		times.FirstResponseMs = v
		return nil
	})
	g.Go(func() error {
		v, err := metrics.Query(gctx, AllResponsesQuery, r, ports.AggregationValueAvg)
		if err != nil {
			return fmt.Errorf("failed to query response time: %w", err)
		}
		times.AllResponsesMs = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return PromptingTimes{}, err
	}
	return times, nil
}
