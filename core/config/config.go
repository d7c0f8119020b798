package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"image-verifier/core/client"
	"image-verifier/core/logger"
	"image-verifier/core/server"
	"image-verifier/feature/verify"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the verifier.
type Config struct {
	// Server describes the development server under test.
	Server server.Config `mapstructure:"server"`
	// Client holds configuration for the HTTP client (timeout, user agent).
	Client client.Config `mapstructure:"client"`
	// Verify holds configuration for the verification run.
	Verify verify.Config `mapstructure:"verify"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from the environment, after applying the .env file
// found in dir, if any. Values from .env override the process environment.
func LoadConfig(dir string) (*Config, error) {
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	// server.base_url -> SERVER_BASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// registerDefaults walks t and registers every mapstructure key with the value of its
// default tag. Keys must be registered for AutomaticEnv to see them during Unmarshal.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
