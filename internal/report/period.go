package report

import (
	"fmt"
	"time"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

// DisplayDateLayout is the date format used in message headers.
const DisplayDateLayout = "2006-01-02"

// Period is the length of a reporting window.
type Period string

const (
	Daily  Period = "daily"
	Weekly Period = "weekly"
)

// ParsePeriod validates a period name.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Daily, Weekly:
		return p, nil
	}
	return "", fmt.Errorf("invalid period %q: expected daily or weekly", s)
}

// Title returns the capitalised period name, e.g. "Daily".
func (p Period) Title() string {
	switch p {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	}
	return string(p)
}

// Window is the reporting range and the equal-length range it is compared with.
type Window struct {
	Period   Period
	Current  ports.DateRange
	Previous ports.DateRange
}

// Window returns the most recent complete window before now. A daily window
// is yesterday compared with the day before; a weekly window is last week,
// Monday to Sunday, compared with the week before.
func (p Period) Window(now time.Time) Window {
	today := startOfDay(now)

	switch p {
	case Weekly:
		sinceMonday := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -sinceMonday-7)
		return Window{
			Period:   p,
			Current:  ports.DateRange{Start: monday, End: monday.AddDate(0, 0, 6)},
			Previous: ports.DateRange{Start: monday.AddDate(0, 0, -7), End: monday.AddDate(0, 0, -1)},
		}
	default:
		yesterday := today.AddDate(0, 0, -1)
		dayBefore := today.AddDate(0, 0, -2)
		return Window{
			Period:   p,
			Current:  ports.DateRange{Start: yesterday, End: yesterday},
			Previous: ports.DateRange{Start: dayBefore, End: dayBefore},
		}
	}
}

// Label renders the current range for headers: "2024-03-04" for a single
// day, "2024-03-04 -> 2024-03-10" otherwise.
func (w Window) Label() string {
	return RangeLabel(w.Current)
}

// RangeLabel renders r for display.
func RangeLabel(r ports.DateRange) string {
	start := r.Start.Format(DisplayDateLayout)
	end := r.End.Format(DisplayDateLayout)
	if start == end {
		return start
	}
	return start + " -> " + end
}

// Yesterday returns the day before now as a single-day range.
func Yesterday(now time.Time) ports.DateRange {
	d := startOfDay(now).AddDate(0, 0, -1)
	return ports.DateRange{Start: d, End: d}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
