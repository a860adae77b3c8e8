package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emiliopalmerini/mreport/internal/ports"
	"github.com/emiliopalmerini/mreport/internal/report"
)

var fixedNow = time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fakeMessenger struct {
	sent   []ports.Message
	failAt int // 1-based send that fails; 0 never fails
}

func (f *fakeMessenger) Send(_ context.Context, m ports.Message) (string, error) {
	if f.failAt > 0 && len(f.sent)+1 == f.failAt {
		f.failAt = 0
		return "", fmt.Errorf("slack unavailable")
	}
	f.sent = append(f.sent, m)
	return fmt.Sprintf("ts-%d", len(f.sent)), nil
}

type fakeCollector struct {
	byStart map[time.Time]report.ReportMetrics
	err     error
	ranges  []ports.DateRange
}

func (f *fakeCollector) Collect(_ context.Context, r ports.DateRange) (report.ReportMetrics, error) {
	f.ranges = append(f.ranges, r)
	if f.err != nil {
		return report.ReportMetrics{}, f.err
	}
	return f.byStart[r.Start], nil
}

type fakeQuerier struct {
	values map[string]*float64
	err    error
}

func (f *fakeQuerier) Query(_ context.Context, q ports.EventQuery, _ ports.DateRange, _ ports.Aggregation) (*float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := q.EventType
	if len(q.Filters) > 0 {
		key += "+first"
	}
	return f.values[key], nil
}

type fakeExporter struct {
	data       []byte
	err        error
	start, end time.Time
}

func (f *fakeExporter) Export(_ context.Context, start, end time.Time) ([]byte, error) {
	f.start, f.end = start, end
	return f.data, f.err
}

// fakeExtractor writes archive as a single file of events into dir.
type fakeExtractor struct {
	err error
	dir string
}

func (f *fakeExtractor) Extract(_ context.Context, archive []byte, dir string) ([]string, error) {
	f.dir = dir
	if f.err != nil {
		return nil, f.err
	}
	path := filepath.Join(dir, "events.json")
	if err := os.WriteFile(path, archive, 0644); err != nil {
		return nil, err
	}
	return []string{path}, nil
}

type noPacer struct{ waits int }

func (p *noPacer) Wait(ctx context.Context) error {
	p.waits++
	return ctx.Err()
}
