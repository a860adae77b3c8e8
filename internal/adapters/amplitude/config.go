package amplitude

import (
	"errors"
	"fmt"
)

// DefaultBaseURL is the Amplitude Dashboard REST API root.
const DefaultBaseURL = "https://amplitude.com/api/2"

// Config holds Amplitude API configuration.
type Config struct {
	APIKey    string `envconfig:"AMPLITUDE_API_KEY"`
	SecretKey string `envconfig:"AMPLITUDE_SECRET_KEY"`
	ProjectID string `envconfig:"AMPLITUDE_PROJECT_ID"`
	BaseURL   string `envconfig:"AMPLITUDE_BASE_URL" default:"https://amplitude.com/api/2"`
}

// Validate reports missing credentials.
func (c Config) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, fmt.Errorf("AMPLITUDE_API_KEY is required"))
	}
	if c.SecretKey == "" {
		errs = append(errs, fmt.Errorf("AMPLITUDE_SECRET_KEY is required"))
	}
	return errors.Join(errs...)
}
