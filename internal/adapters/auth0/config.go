package auth0

import (
	"errors"
	"fmt"
)

// Config holds Auth0 Management API configuration.
type Config struct {
	Domain       string `envconfig:"AUTH0_DOMAIN"`
	ClientID     string `envconfig:"AUTH0_CLIENT_ID"`
	ClientSecret string `envconfig:"AUTH0_CLIENT_SECRET"`
}

// Validate reports missing settings.
func (c Config) Validate() error {
	var errs []error
	if c.Domain == "" {
		errs = append(errs, fmt.Errorf("AUTH0_DOMAIN is required"))
	}
	if c.ClientID == "" {
		errs = append(errs, fmt.Errorf("AUTH0_CLIENT_ID is required"))
	}
	if c.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("AUTH0_CLIENT_SECRET is required"))
	}
	return errors.Join(errs...)
}
