package activity

import "testing"

func TestRenderUserActivity(t *testing.T) {
	u := NewUserActivity("ann@example.com")
	u.AddProject(&ProjectInfo{
		ProjectID:   "p1",
		ProjectName: "Launch video",
		FileInfo:    "a.mp4 (2.00 MB)",
		Prompts:     []string{"remove silences", "add captions"},
		Exports: []ExportInfo{
			{ExportLayout: "landscape", ExportType: "mp4", OutputDuration: "1m30s"},
			{ExportType: "premiere"},
		},
	})
	u.AddProject(&ProjectInfo{
		ProjectID:   "p2",
		ProjectName: "Teaser",
		Prompts:     []string{"shorter"},
	})

	want := ":movie_camera: #1. *Project name:* Launch video\n" +
		"                - *File info:* a.mp4 (2.00 MB)\n" +
		"        :man-raising-hand: *Prompts:*\n" +
		"                 - #1: remove silences\n" +
		"                 - #2: add captions\n" +
		"        :inbox_tray: *Exports:*\n" +
		"                 - #1:  Format: landscape-mp4, duration: 1m30s\n" +
		"                 - #2:  Format: premiere\n" +
		":movie_camera: #2. *Project name:* Teaser\n" +
		"        :man-raising-hand: *Prompts:*\n" +
		"                 - #1: shorter\n"

	if got := RenderUserActivity(u); got != want {
		t.Errorf("RenderUserActivity mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderUserActivity_Empty(t *testing.T) {
	if got := RenderUserActivity(NewUserActivity("x")); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}
