package server

import (
	"fmt"
	"net/url"
	"strings"
)

// Config describes the development server the verifier talks to.
type Config struct {
	// BaseURL is the scheme and authority of the server under test.
	BaseURL string `mapstructure:"base_url" default:"http://127.0.0.1:8081"`
	// ImagePath is the path that serves the single pixel image.
	ImagePath string `mapstructure:"image_path" default:"/image"`
}

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// Validate checks that BaseURL is an absolute http(s) URL and ImagePath is rooted.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", c.BaseURL, err)
	}
	switch u.Scheme {
	case SchemeHTTP, SchemeHTTPS:
	default:
		return fmt.Errorf("invalid base url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base url %q: missing host", c.BaseURL)
	}
	if !strings.HasPrefix(c.ImagePath, "/") {
		return fmt.Errorf("invalid image path %q: must start with /", c.ImagePath)
	}
	return nil
}
