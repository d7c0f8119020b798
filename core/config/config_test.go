package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8081", cfg.Server.BaseURL)
	assert.Equal(t, "/image", cfg.Server.ImagePath)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "image-verifier", cfg.Client.UserAgent)
	assert.Equal(t, "test_1x1_pixel.png", cfg.Verify.LocalImage)
	assert.False(t, cfg.Verify.Strict)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_BASE_URL", "http://localhost:9090")
	t.Setenv("CLIENT_TIMEOUT", "250ms")
	t.Setenv("VERIFY_STRICT", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", cfg.Server.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Client.Timeout)
	assert.True(t, cfg.Verify.Strict)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "VERIFY_LOCAL_IMAGE=fixtures/pixel.png\nSERVER_IMAGE_PATH=/pixel\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644))
	t.Cleanup(func() {
		os.Unsetenv("VERIFY_LOCAL_IMAGE")
		os.Unsetenv("SERVER_IMAGE_PATH")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "fixtures/pixel.png", cfg.Verify.LocalImage)
	assert.Equal(t, "/pixel", cfg.Server.ImagePath)
}

func TestLoadConfig_InvalidBaseURL(t *testing.T) {
	t.Setenv("SERVER_BASE_URL", "127.0.0.1:8081")

	cfg, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
