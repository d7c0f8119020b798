package client

import "time"

// Config holds configuration for the HTTP client.
type Config struct {
	// Timeout bounds every request, from dial to the last body byte.
	Timeout time.Duration `mapstructure:"timeout" default:"5s"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"image-verifier"`
}
