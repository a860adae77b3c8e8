package report

import "testing"

const ws = "          "

func TestRenderAnalytics(t *testing.T) {
	current := NewBuilder().
		Set(CategoryProjectCreation, MetricSinglecamProjectCreated, Float(5)).
		Set(CategoryProjectCreation, MetricMulticamProjectCreated, nil).
		Set(CategoryUserActivity, MetricNewUser, Float(0)).
		Set(CategoryUserActivity, MetricTotalVideoDuration, Float(3661)).
		Set(CategoryUserActivity, MetricFileUploaded, Float(12.5)).
		Set(CategoryExports, MetricExportMP4LandscapeCapts, Float(4)).
		Set(CategoryExports, MetricTotalExports, Float(10)).
		Build()
	previous := NewBuilder().
		Set(CategoryProjectCreation, MetricSinglecamProjectCreated, Float(0)).
		Set(CategoryUserActivity, MetricNewUser, Float(3)).
		Set(CategoryUserActivity, MetricTotalVideoDuration, Float(3000)).
		Set(CategoryUserActivity, MetricFileUploaded, Float(12.5)).
		Set(CategoryExports, MetricTotalExports, Float(20)).
		Build()

	want := "\n>*Project Creation:*" +
		"\n>" + ws + "- *Singlecam projects created:* 5 (➚100%)" +
		"\n>" + ws + "- *Multicam projects created:* No data found" +
		"\n>*User Activity:*" +
		"\n>" + ws + "- *New users:* 0 (N/A)" +
		"\n>" + ws + "- *Total video duration:* 1h1m1s (➚22.0%)" +
		"\n>" + ws + "- *Files uploaded:* 12.5 (≈0%)" +
		"\n>*Exports:*" +
		"\n>" + ws + ws + "- *Landscape with captions:* 4 (No data for previous period)" +
		"\n>" + ws + "- *Total exports:* 10 (➘50.0%)"

	if got := RenderAnalytics(current, previous); got != want {
		t.Errorf("RenderAnalytics mismatch\nwant: %q\ngot:  %q", want, got)
	}
}

func TestRenderAnalytics_EmptyPrevious(t *testing.T) {
	current := NewBuilder().Set(CategoryShareActivity, MetricOpenShareLink, Float(7)).Build()

	want := "\n>*Share Activity:*" +
		"\n>" + ws + "- *Share links opened:* 7 (No data for previous period)"
	if got := RenderAnalytics(current, ReportMetrics{}); got != want {
		t.Errorf("RenderAnalytics mismatch\nwant: %q\ngot:  %q", want, got)
	}
}

func TestRenderAnalytics_ZeroDuration(t *testing.T) {
	current := NewBuilder().Set(CategoryUserActivity, MetricTotalVideoDuration, Float(0)).Build()
	previous := NewBuilder().Set(CategoryUserActivity, MetricTotalVideoDuration, Float(60)).Build()

	want := "\n>*User Activity:*" +
		"\n>" + ws + "- *Total video duration:* N/A (N/A)"
	if got := RenderAnalytics(current, previous); got != want {
		t.Errorf("RenderAnalytics mismatch\nwant: %q\ngot:  %q", want, got)
	}
}

func TestRenderAnalytics_EmptyCurrent(t *testing.T) {
	if got := RenderAnalytics(ReportMetrics{}, ReportMetrics{}); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
