package report

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriod_Window(t *testing.T) {
	tests := []struct {
		name      string
		period    Period
		now       time.Time
		wantCur   [2]time.Time
		wantPrev  [2]time.Time
		wantLabel string
	}{
		{
			name:      "daily",
			period:    Daily,
			now:       time.Date(2024, 3, 13, 15, 4, 5, 0, time.UTC),
			wantCur:   [2]time.Time{date(2024, 3, 12), date(2024, 3, 12)},
			wantPrev:  [2]time.Time{date(2024, 3, 11), date(2024, 3, 11)},
			wantLabel: "2024-03-12",
		},
		{
			name:      "daily across month",
			period:    Daily,
			now:       time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC),
			wantCur:   [2]time.Time{date(2024, 2, 29), date(2024, 2, 29)},
			wantPrev:  [2]time.Time{date(2024, 2, 28), date(2024, 2, 28)},
			wantLabel: "2024-02-29",
		},
		{
			name:      "weekly midweek",
			period:    Weekly,
			now:       time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
			wantCur:   [2]time.Time{date(2024, 3, 4), date(2024, 3, 10)},
			wantPrev:  [2]time.Time{date(2024, 2, 26), date(2024, 3, 3)},
			wantLabel: "2024-03-04 -> 2024-03-10",
		},
		{
			name:      "weekly on monday",
			period:    Weekly,
			now:       time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
			wantCur:   [2]time.Time{date(2024, 3, 4), date(2024, 3, 10)},
			wantPrev:  [2]time.Time{date(2024, 2, 26), date(2024, 3, 3)},
			wantLabel: "2024-03-04 -> 2024-03-10",
		},
		{
			name:      "weekly on sunday",
			period:    Weekly,
			now:       time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC),
			wantCur:   [2]time.Time{date(2024, 2, 26), date(2024, 3, 3)},
			wantPrev:  [2]time.Time{date(2024, 2, 19), date(2024, 2, 25)},
			wantLabel: "2024-02-26 -> 2024-03-03",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.period.Window(tt.now)
			if !w.Current.Start.Equal(tt.wantCur[0]) || !w.Current.End.Equal(tt.wantCur[1]) {
				t.Errorf("current = %v..%v, want %v..%v", w.Current.Start, w.Current.End, tt.wantCur[0], tt.wantCur[1])
			}
			if !w.Previous.Start.Equal(tt.wantPrev[0]) || !w.Previous.End.Equal(tt.wantPrev[1]) {
				t.Errorf("previous = %v..%v, want %v..%v", w.Previous.Start, w.Previous.End, tt.wantPrev[0], tt.wantPrev[1])
			}
			if got := w.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"daily", "weekly"} {
		if _, err := ParsePeriod(s); err != nil {
			t.Errorf("ParsePeriod(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePeriod("monthly"); err == nil {
		t.Error("expected error for monthly")
	}
}

func TestMessages(t *testing.T) {
	w := Weekly.Window(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"analytics header", AnalyticsHeader(w), "🗓️ (2024-03-04 -> 2024-03-10) Eddie Weekly Analytics"},
		{"no metrics", NoAnalyticsMessage(w), "> - *No weekly metrics found for Date: 2024-03-04 -> 2024-03-10*"},
		{"analytics error", AnalyticsErrorMessage(Daily), "> - *Error when preparing message for daily analytics*"},
		{"prompting header", PromptingHeader(w), "⏰ (2024-03-04 -> 2024-03-10) Eddie Prompting Time Analytics Report"},
		{"prompting error", PromptingErrorMessage(Weekly), "> - *Error when preparing weekly prompting time report*"},
		{"interactions header", InteractionsHeader("2024-03-12"), "🗓️ (2024-03-12) Daily User Interactions"},
		{"user root", UserRootMessage(3, "ann@example.com"), "3) 👤User: ann@example.com\n"},
		{"footer", InteractionsFooter("H"), ":checkered_flag: *End of Report:* H"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
