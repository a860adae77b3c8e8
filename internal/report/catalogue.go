package report

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

//go:embed catalogue.yaml
var defaultCatalogue []byte

// Source names the backend a metric is read from.
type Source string

const (
	SourceAmplitude Source = "amplitude"
	SourceIdentity  Source = "identity"
)

// Entry describes how one report metric is computed.
type Entry struct {
	Category    Category          `yaml:"category"`
	Metric      MetricName        `yaml:"metric"`
	Source      Source            `yaml:"source"`
	Query       ports.EventQuery  `yaml:",inline"`
	Aggregation ports.Aggregation `yaml:"aggregation,omitempty"`
}

type catalogueFile struct {
	Metrics []Entry `yaml:"metrics"`
}

// UnmarshalYAML decodes a category from its catalogue key.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var key string
	if err := node.Decode(&key); err != nil {
		return err
	}
	parsed, err := ParseCategory(key)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes a category as its catalogue key.
func (c Category) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Catalogue is the validated list of metrics a report collects.
type Catalogue struct {
	entries []Entry
}

// DefaultCatalogue returns the catalogue built into the binary.
func DefaultCatalogue() (*Catalogue, error) {
	return ParseCatalogue(defaultCatalogue)
}

// LoadCatalogue reads a catalogue file, or returns the built-in catalogue
// when path is empty.
func LoadCatalogue(path string) (*Catalogue, error) {
	if path == "" {
		return DefaultCatalogue()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file: %w", err)
	}
	return ParseCatalogue(data)
}

// ParseCatalogue decodes and validates a YAML catalogue. Unknown fields are rejected.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var file catalogueFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	if err := validateCatalogue(file.Metrics); err != nil {
		return nil, fmt.Errorf("catalogue validation failed: %w", err)
	}
	return &Catalogue{entries: file.Metrics}, nil
}

func validateCatalogue(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("catalogue must list at least one metric")
	}

	seen := make(map[MetricName]bool, len(entries))
	for i := range entries {
		e := &entries[i]
		if !e.Metric.Known() {
			return fmt.Errorf("entry %d: unknown metric %q", i+1, e.Metric)
		}
		if seen[e.Metric] {
			return fmt.Errorf("duplicate metric: %s", e.Metric)
		}
		seen[e.Metric] = true

		if e.Metric.Category() != e.Category {
			return fmt.Errorf("metric %s belongs to %s, not %s", e.Metric, e.Metric.Category(), e.Category)
		}

		switch e.Source {
		case SourceAmplitude:
			if e.Query.EventType == "" {
				return fmt.Errorf("metric %s must specify an event_type", e.Metric)
			}
			if e.Aggregation == "" {
				e.Aggregation = ports.AggregationTotals
			}
			if !e.Aggregation.Valid() {
				return fmt.Errorf("metric %s has invalid aggregation %q", e.Metric, e.Aggregation)
			}
		case SourceIdentity:
		default:
			return fmt.Errorf("metric %s has invalid source %q", e.Metric, e.Source)
		}
	}
	return nil
}

// Entries returns the catalogue entries in collection order.
func (c *Catalogue) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of metrics in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.entries)
}
