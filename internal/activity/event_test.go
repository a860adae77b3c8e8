package activity

import (
	"encoding/json"
	"testing"
)

func TestRawEvent_UnmarshalJSON(t *testing.T) {
	var ev RawEvent
	line := `{"data_type":"event","event_type":"user_submit_prompt","user_id":null,"amplitude_id":123456789012,"event_properties":{"prompt":"hi"},"extra":true}`
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	assertEqual(t, "DataType", "event", ev.DataType)
	assertEqual(t, "EventType", EventUserSubmitPrompt, ev.EventType)
	assertEqual(t, "UserID", "", ev.UserID)
	assertEqual(t, "AmplitudeID", "123456789012", ev.AmplitudeID)
	assertEqual(t, "EventProperties", `{"prompt":"hi"}`, string(ev.EventProperties))

	if err := json.Unmarshal([]byte(`{"user_id":{"nested":true}}`), &ev); err == nil {
		t.Error("expected error for object user_id")
	}
}

func TestRawEvent_Identity(t *testing.T) {
	tests := []struct {
		name  string
		event RawEvent
		index int
		want  string
	}{
		{"user id", RawEvent{UserID: "ann@example.com", AmplitudeID: "1"}, 3, "ann@example.com"},
		{"amplitude id", RawEvent{AmplitudeID: "42"}, 3, "Anonymous (Amplitude ID-42)"},
		{"index fallback", RawEvent{}, 3, "Anonymous (Amplitude ID-3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, "Identity", tt.want, tt.event.Identity(tt.index))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		event        RawEvent
		wantKind     Kind
		wantPrompt   string
		wantExport   ExportInfo
		wantWarnings int
		wantErr      bool
	}{
		{
			name:       "submitted prompt",
			event:      RawEvent{EventType: EventUserSubmitPrompt, EventProperties: json.RawMessage(`{"projectId":"p","prompt":"trim it","promptSuggest":"ignored"}`)},
			wantKind:   KindPrompt,
			wantPrompt: "trim it",
		},
		{
			name:       "suggested prompt",
			event:      RawEvent{EventType: EventUserClickPromptSuggest, EventProperties: json.RawMessage(`{"projectId":"p","prompt":"ignored","promptSuggest":"add music"}`)},
			wantKind:   KindPrompt,
			wantPrompt: "add music",
		},
		{
			name:     "export with string duration",
			event:    RawEvent{EventType: EventFileExportSucceeded, EventProperties: json.RawMessage(`{"projectId":"p","layout":"vertical","exportType":"mp4","exportFileName":"out.mp4","outputDuration":"90"}`)},
			wantKind: KindExport,
			wantExport: ExportInfo{
				ExportLayout:   "vertical",
				ExportType:     "mp4",
				ExportFileName: "out.mp4",
				OutputDuration: "1m30s",
			},
		},
		{
			name:       "export with zero duration",
			event:      RawEvent{EventType: EventFileExportSucceeded, EventProperties: json.RawMessage(`{"projectId":"p","exportType":"davinci","outputDuration":0}`)},
			wantKind:   KindExport,
			wantExport: ExportInfo{ExportType: "davinci"},
		},
		{
			name:         "export with bad duration",
			event:        RawEvent{EventType: EventFileExportSucceeded, EventProperties: json.RawMessage(`{"projectId":"p","exportType":"mp4","outputDuration":[1]}`)},
			wantKind:     KindExport,
			wantExport:   ExportInfo{ExportType: "mp4"},
			wantWarnings: 1,
		},
		{
			name:     "missing properties",
			event:    RawEvent{EventType: EventUserSubmitPrompt},
			wantKind: KindPrompt,
		},
		{
			name:     "other event is not decoded",
			event:    RawEvent{EventType: "session_start", EventProperties: json.RawMessage(`not json`)},
			wantKind: KindOther,
		},
		{
			name:    "malformed properties",
			event:   RawEvent{EventType: EventUserSubmitPrompt, EventProperties: json.RawMessage(`[1,2]`)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.event)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqual(t, "Kind", tt.wantKind, got.Kind)
			assertEqual(t, "Prompt", tt.wantPrompt, got.Prompt)
			assertEqual(t, "Export", tt.wantExport, got.Export)
			assertEqual(t, "len(Warnings)", tt.wantWarnings, len(got.Warnings))
		})
	}
}

func assertEqual[T comparable](t *testing.T, field string, want, got T) {
	t.Helper()
	if want != got {
		t.Errorf("%s: expected %v, got %v", field, want, got)
	}
}
