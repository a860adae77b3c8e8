// Package slack posts report messages with the Slack Web API.
package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

// Messenger posts messages with chat.postMessage.
type Messenger struct {
	api *slack.Client
}

// NewMessenger creates a Messenger. Extra client options are passed through
// to slack.New.
func NewMessenger(cfg Config, opts ...slack.Option) (*Messenger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Messenger{api: slack.New(cfg.BotToken, opts...)}, nil
}

// Send posts m and returns its timestamp, which doubles as the thread ID.
func (s *Messenger) Send(ctx context.Context, m ports.Message) (string, error) {
	opts := []slack.MsgOption{}

	if blocks := buildBlocks(m); len(blocks) > 0 {
		opts = append(opts,
			slack.MsgOptionBlocks(blocks...),
			slack.MsgOptionText(fallbackText(m), false),
		)
	} else {
		opts = append(opts, slack.MsgOptionText(m.Text, false))
	}
	if m.ThreadID != "" {
		opts = append(opts, slack.MsgOptionTS(m.ThreadID))
	}

	_, ts, err := s.api.PostMessageContext(ctx, m.Channel, opts...)
	if err != nil {
		return "", fmt.Errorf("posting message to %s: %w", m.Channel, err)
	}
	return ts, nil
}

// buildBlocks renders a header block, a mrkdwn section and an optional
// divider. Plain text messages have no blocks.
func buildBlocks(m ports.Message) []slack.Block {
	var blocks []slack.Block
	if m.Header != "" {
		blocks = append(blocks, slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, m.Header, true, false),
		))
	}
	if strings.TrimSpace(m.Body) != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, m.Body, false, false),
			nil, nil,
		))
	}
	if len(blocks) > 0 && m.Divider {
		blocks = append(blocks, slack.NewDividerBlock())
	}
	return blocks
}

func fallbackText(m ports.Message) string {
	if m.Text != "" {
		return m.Text
	}
	if m.Header != "" {
		return m.Header
	}
	return m.Body
}
