package activity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/emiliopalmerini/mreport/internal/util"
)

// Export record discriminator and the event types the aggregator understands.
const (
	DataTypeEvent = "event"

	EventUserSubmitPrompt       = "user_submit_prompt"
	EventUserClickPromptSuggest = "user_click_prompt_suggest"
	EventFileExportSucceeded    = "file_export_succeeded"
)

// RawEvent is one record of an analytics export.
type RawEvent struct {
	DataType        string
	EventType       string
	UserID          string
	AmplitudeID     string
	EventProperties json.RawMessage
}

type rawEventJSON struct {
	DataType        looseString     `json:"data_type"`
	EventType       looseString     `json:"event_type"`
	UserID          looseString     `json:"user_id"`
	AmplitudeID     looseString     `json:"amplitude_id"`
	EventProperties json.RawMessage `json:"event_properties"`
}

// UnmarshalJSON accepts identifiers encoded as strings or numbers.
func (e *RawEvent) UnmarshalJSON(data []byte) error {
	var raw rawEventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = RawEvent{
		DataType:        string(raw.DataType),
		EventType:       string(raw.EventType),
		UserID:          string(raw.UserID),
		AmplitudeID:     string(raw.AmplitudeID),
		EventProperties: raw.EventProperties,
	}
	return nil
}

// Identity returns the key used to group the event into a UserActivity.
// index is the 1-based position of the record in the input and is used only
// when the record carries neither a user ID nor an Amplitude ID.
func (e RawEvent) Identity(index int) string {
	if e.UserID != "" {
		return e.UserID
	}
	id := e.AmplitudeID
	if id == "" {
		id = fmt.Sprint(index)
	}
	return fmt.Sprintf("Anonymous (Amplitude ID-%s)", id)
}

// Kind is the category of an event as far as activity tracking is concerned.
type Kind int

const (
	KindOther Kind = iota
	KindPrompt
	KindExport
)

// KindOf maps an event type to its Kind.
func KindOf(eventType string) Kind {
	switch eventType {
	case EventUserSubmitPrompt, EventUserClickPromptSuggest:
		return KindPrompt
	case EventFileExportSucceeded:
		return KindExport
	default:
		return KindOther
	}
}

// Event is the typed result of classifying a RawEvent.
type Event struct {
	Kind        Kind
	ProjectID   string
	ProjectName string
	// FileInfo is empty when the event carried no usable file metadata.
	FileInfo string
	Prompt   string
	Export   ExportInfo
	// Warnings lists fields that were present but could not be decoded.
	Warnings []error
}

type eventProperties struct {
	ProjectID       looseString     `json:"projectId"`
	ProjectName     looseString     `json:"projectName"`
	ProjectFileInfo json.RawMessage `json:"projectFileInfo"`
	Prompt          looseString     `json:"prompt"`
	PromptSuggest   looseString     `json:"promptSuggest"`
	Layout          looseString     `json:"layout"`
	ExportType      looseString     `json:"exportType"`
	OutputDuration  json.RawMessage `json:"outputDuration"`
	ExportFileName  looseString     `json:"exportFileName"`
}

// Classify decodes the properties relevant to the event's kind.
// Events of KindOther are returned without decoding anything. An error is
// returned only when the properties object itself cannot be decoded.
func Classify(e RawEvent) (Event, error) {
	ev := Event{Kind: KindOf(e.EventType)}
	if ev.Kind == KindOther {
		return ev, nil
	}

	var props eventProperties
	if !isNull(e.EventProperties) {
		if err := json.Unmarshal(e.EventProperties, &props); err != nil {
			return Event{Kind: KindOther}, fmt.Errorf("decoding event_properties: %w", err)
		}
	}

	ev.ProjectID = string(props.ProjectID)
	ev.ProjectName = string(props.ProjectName)

	fileInfo, err := parseFileInfo(props.ProjectFileInfo)
	if err != nil {
		ev.Warnings = append(ev.Warnings, fmt.Errorf("parsing projectFileInfo: %w", err))
	}
	ev.FileInfo = fileInfo

	switch ev.Kind {
	case KindPrompt:
		if e.EventType == EventUserSubmitPrompt {
			ev.Prompt = string(props.Prompt)
		} else {
			ev.Prompt = string(props.PromptSuggest)
		}
	case KindExport:
		duration, err := parseOutputDuration(props.OutputDuration)
		if err != nil {
			ev.Warnings = append(ev.Warnings, fmt.Errorf("parsing outputDuration: %w", err))
		}
		ev.Export = ExportInfo{
			ExportLayout:   string(props.Layout),
			ExportType:     string(props.ExportType),
			ExportFileName: string(props.ExportFileName),
			OutputDuration: duration,
		}
	}

	return ev, nil
}

// parseOutputDuration turns a number of seconds, possibly sent as a string,
// into a readable duration. Missing, empty and zero values yield "".
func parseOutputDuration(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}
	v, err := decodeScalar(raw)
	if err != nil {
		return "", err
	}
	seconds, err := util.ToFloat64(v)
	if err != nil {
		return "", err
	}
	d, _ := util.FormatDuration(seconds)
	return d, nil
}

func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// looseString decodes a JSON string, number or null into a string.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("expected a string or a number")
	}
	*s = looseString(n.String())
	return nil
}
