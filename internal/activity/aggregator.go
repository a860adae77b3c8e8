// Package activity folds analytics export records into per-user, per-project
// activity summaries.
package activity

import (
	"github.com/rs/zerolog"
)

// Aggregator turns export records into UserActivity summaries.
type Aggregator struct {
	log zerolog.Logger
}

// NewAggregator creates an Aggregator that reports skipped data to log.
func NewAggregator(log zerolog.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// AggregateFiles reads the decoded export files and aggregates their records.
func (a *Aggregator) AggregateFiles(paths []string) ([]*UserActivity, error) {
	events, err := ReadEvents(paths, a.log)
	if err != nil {
		return nil, err
	}
	return a.Aggregate(events), nil
}

// Aggregate folds events into a fresh store and returns its activities in
// first-committed order. Identities that produced no prompt or export are
// never committed.
func (a *Aggregator) Aggregate(events []RawEvent) []*UserActivity {
	store := NewUserActivityStore()

	for i, raw := range events {
		if raw.DataType != DataTypeEvent {
			continue
		}

		identity := raw.Identity(i + 1)
		ev, err := Classify(raw)
		if err != nil {
			a.log.Warn().Err(err).
				Str("identity", identity).
				Str("event_type", raw.EventType).
				Msg("skipping event with unreadable properties")
			continue
		}
		for _, w := range ev.Warnings {
			a.log.Warn().Err(w).
				Str("identity", identity).
				Str("event_type", raw.EventType).
				Str("project_id", ev.ProjectID).
				Msg("ignoring malformed event field")
		}
		if ev.Kind == KindOther {
			continue
		}

		userActivity := store.GetActivity(identity)
		apply(userActivity, ev)
		store.AddActivity(userActivity)
	}

	return store.Activities()
}

// apply records a prompt or export event on the user's project, creating the
// project on first sight.
func apply(u *UserActivity, ev Event) {
	project, ok := u.Project(ev.ProjectID)
	if !ok {
		project = &ProjectInfo{
			ProjectID:   ev.ProjectID,
			ProjectName: ev.ProjectName,
			Prompts:     []string{},
			Exports:     []ExportInfo{},
		}
	}
	if ev.FileInfo != "" {
		project.FileInfo = ev.FileInfo
	}

	switch ev.Kind {
	case KindPrompt:
		project.AddPrompt(ev.Prompt)
	case KindExport:
		project.AddExport(ev.Export)
	}

	u.AddProject(project)
}
