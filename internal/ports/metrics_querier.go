package ports

import (
	"context"
	"time"
)

// Aggregation selects how a metrics query folds matching events into a scalar.
type Aggregation string

const (
	AggregationTotals   Aggregation = "totals"
	AggregationSums     Aggregation = "sums"
	AggregationValueAvg Aggregation = "value_avg"
)

// Valid reports whether a is a known aggregation.
func (a Aggregation) Valid() bool {
	switch a {
	case AggregationTotals, AggregationSums, AggregationValueAvg:
		return true
	}
	return false
}

// PropertyFilter restricts a query to events whose property matches one of Values.
type PropertyFilter struct {
	Type   string   `json:"subprop_type" yaml:"subprop_type"`
	Key    string   `json:"subprop_key" yaml:"subprop_key"`
	Op     string   `json:"subprop_op" yaml:"subprop_op"`
	Values []string `json:"subprop_value" yaml:"subprop_value"`
}

// GroupBy names the property a sum or average is computed over.
type GroupBy struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// EventQuery selects the events a metric is computed from.
type EventQuery struct {
	EventType string           `json:"event_type" yaml:"event_type"`
	Filters   []PropertyFilter `json:"filters,omitempty" yaml:"filters,omitempty"`
	GroupBy   []GroupBy        `json:"group_by,omitempty" yaml:"group_by,omitempty"`
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// MetricsQuerier computes scalar metrics from the analytics backend.
type MetricsQuerier interface {
	// Query returns nil when the backend has no data for the range.
	Query(ctx context.Context, q EventQuery, r DateRange, agg Aggregation) (*float64, error)
}

// IdentityCounter counts accounts in the identity provider.
type IdentityCounter interface {
	// CountNewUsers returns the number of accounts created within r.
	CountNewUsers(ctx context.Context, r DateRange) (int64, error)
}
