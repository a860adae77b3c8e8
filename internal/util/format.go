package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoValue is displayed wherever a formatter has nothing to show.
const NoValue = "N/A"

const (
	markerUp   = "➚"
	markerDown = "➘"
	markerFlat = "(≈0%)"
)

var byteUnits = []struct {
	name string
	size float64
}{
	{"TB", 1 << 40},
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
}

// FormatDuration renders a number of seconds as "1h1m1s".
// Zero-valued segments are left out, except that seconds are always shown
// when neither hours nor minutes are. Zero input reports no value.
func FormatDuration(seconds float64) (string, bool) {
	if seconds == 0 || math.IsNaN(seconds) {
		return "", false
	}

	minutes := math.Floor(seconds / 60)
	hours := math.Floor(minutes / 60)
	secs := seconds - minutes*60
	minutes -= hours * 60

	h := int64(math.RoundToEven(hours))
	m := int64(math.RoundToEven(minutes))
	s := int64(math.RoundToEven(secs))

	var b strings.Builder
	if h != 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m != 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s != 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String(), true
}

// FormatPercentageChange renders the change from prior to current, e.g. "(➚10.0%)".
// A zero current value reports no value; a zero prior value yields a fixed
// 100% marker in the direction of current.
func FormatPercentageChange(current, prior float64) (string, bool) {
	if current == 0 {
		return "", false
	}
	if prior == 0 {
		switch {
		case current > 0:
			return "(" + markerUp + "100%)", true
		case current < 0:
			return "(" + markerDown + "100%)", true
		default:
			return markerFlat, true
		}
	}

	difference := (current - prior) / prior * 100
	switch {
	case difference >= 0.1:
		return fmt.Sprintf("(%s%.1f%%)", markerUp, difference), true
	case difference < 0:
		return fmt.Sprintf("(%s%.1f%%)", markerDown, math.Abs(difference)), true
	default:
		return markerFlat, true
	}
}

// FormatBytes renders a byte count with the largest binary unit it reaches.
// Examples: 500 -> "500 B", 2048 -> "2.00 KB", 1073741824 -> "1.00 GB"
func FormatBytes(n int64) (string, bool) {
	if n == 0 {
		return "", false
	}
	for _, u := range byteUnits {
		if float64(n) >= u.size {
			return fmt.Sprintf("%.2f %s", float64(n)/u.size, u.name), true
		}
	}
	return fmt.Sprintf("%d B", n), true
}

// FormatNumber renders a metric value without trailing zeros.
// Examples: 5 -> "5", 12.5 -> "12.5"
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OrNoValue returns s, or NoValue when the formatter reported nothing.
func OrNoValue(s string, ok bool) string {
	if !ok {
		return NoValue
	}
	return s
}
