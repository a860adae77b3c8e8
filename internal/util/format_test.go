package util

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		want   string
		wantOK bool
	}{
		{"zero", 0, "", false},
		{"seconds only", 45, "45s", true},
		{"minutes and seconds", 90, "1m30s", true},
		{"all segments", 3661, "1h1m1s", true},
		{"whole hour", 3600, "1h", true},
		{"whole minutes", 120, "2m", true},
		{"hour and seconds", 3605, "1h5s", true},
		{"fractional rounds", 45.4, "45s", true},
		{"sub-second keeps seconds", 0.3, "0s", true},
		{"many hours", 90061, "25h1m1s", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatDuration(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("FormatDuration(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPercentageChange(t *testing.T) {
	tests := []struct {
		name           string
		current, prior float64
		want           string
		wantOK         bool
	}{
		{"increase", 110, 100, "(➚10.0%)", true},
		{"decrease", 90, 100, "(➘10.0%)", true},
		{"from zero positive", 5, 0, "(➚100%)", true},
		{"from zero negative", -5, 0, "(➘100%)", true},
		{"both zero", 0, 0, "", false},
		{"current zero", 0, 10, "", false},
		{"unchanged", 100, 100, "(≈0%)", true},
		{"below threshold", 100.05, 100, "(≈0%)", true},
		{"just above threshold", 100.2, 100, "(➚0.2%)", true},
		{"doubled", 20, 10, "(➚100.0%)", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatPercentageChange(tt.current, tt.prior)
			if ok != tt.wantOK {
				t.Fatalf("FormatPercentageChange(%v, %v) ok = %v, want %v", tt.current, tt.prior, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("FormatPercentageChange(%v, %v) = %q, want %q", tt.current, tt.prior, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name   string
		in     int64
		want   string
		wantOK bool
	}{
		{"zero", 0, "", false},
		{"bytes", 500, "500 B", true},
		{"just below KB", 1023, "1023 B", true},
		{"kilobytes", 2048, "2.00 KB", true},
		{"megabytes", 5 * 1024 * 1024, "5.00 MB", true},
		{"gigabytes", 1073741824, "1.00 GB", true},
		{"terabytes", 3 << 40, "3.00 TB", true},
		{"fractional", 1536, "1.50 KB", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatBytes(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("FormatBytes(%d) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(5); got != "5" {
		t.Errorf("FormatNumber(5) = %q, want %q", got, "5")
	}
	if got := FormatNumber(12.5); got != "12.5" {
		t.Errorf("FormatNumber(12.5) = %q, want %q", got, "12.5")
	}
}

func TestOrNoValue(t *testing.T) {
	if got := OrNoValue(FormatBytes(0)); got != NoValue {
		t.Errorf("OrNoValue for missing = %q, want %q", got, NoValue)
	}
	if got := OrNoValue(FormatBytes(500)); got != "500 B" {
		t.Errorf("OrNoValue for present = %q, want %q", got, "500 B")
	}
}
