package jobs

import (
	"context"
	"time"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

// Job names, used in logs and run metrics.
const (
	JobAnalytics    = "analytics"
	JobPrompting    = "prompting"
	JobInteractions = "interactions"
)

// templateMessage builds the standard report message: a header, a mrkdwn body and a divider.
func templateMessage(channel, header, body string) ports.Message {
	return ports.Message{
		Channel: channel,
		Header:  header,
		Body:    body,
		Divider: true,
	}
}

func newStats(job string, start time.Time) ports.RunStats {
	return ports.RunStats{
		Job:       job,
		Status:    ports.RunStatusOK,
		StartedAt: start,
	}
}

// finish stamps the end of the run and marks it failed when err is set.
func finish(s *ports.RunStats, now func() time.Time, err error) {
	s.EndedAt = now()
	if err != nil {
		s.Status = ports.RunStatusFailed
	}
}

// send posts m and counts it on success.
func send(ctx context.Context, m ports.Messenger, msg ports.Message, s *ports.RunStats) (string, error) {
	id, err := m.Send(ctx, msg)
	if err != nil {
		return "", err
	}
	s.MessagesSent++
	return id, nil
}
