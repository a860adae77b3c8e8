package slack

import (
	"errors"
	"fmt"
)

// Config holds Slack bot configuration.
type Config struct {
	BotToken           string `envconfig:"SLACK_BOT_TOKEN"`
	AnalyticsChannelID string `envconfig:"SLACK_ANALYTICS_CHANNEL_ID"`
	DetailsChannelID   string `envconfig:"SLACK_DETAILS_CHANNEL_ID"`
}

// Validate reports a missing token. Channels are checked by the jobs that use them.
func (c Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("SLACK_BOT_TOKEN is required")
	}
	return nil
}

// RequireChannel returns an error naming env when id is empty.
func RequireChannel(id, env string) error {
	if id == "" {
		return fmt.Errorf("%s is required", env)
	}
	return nil
}
