package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"legalgpt-portal/storage"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"GEMINI_API_KEY", "DATABASE_URL", "STORAGE_TYPE", "AWS_S3_BUCKET"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":7860", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:7860", cfg.API.BaseURL)
	assert.Equal(t, "/api/predict", cfg.API.Endpoint)
	assert.Equal(t, storage.TypeLocal, cfg.Storage.Type)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 3*time.Second, cfg.UI.ToastDuration)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("LEGALGPT_SERVER_ADDR", ":9000")
	t.Setenv("LEGALGPT_UI_TOAST_DURATION", "5s")
	t.Setenv("GEMINI_API_KEY", "from-alias")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.UI.ToastDuration)
	assert.Equal(t, "from-alias", cfg.Gemini.APIKey)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://legal.example.com
log:
  level: debug
storage:
  type: s3
  s3_bucket: snapshots
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "https://legal.example.com", cfg.API.BaseURL)
	assert.Equal(t, "/api/predict", cfg.API.Endpoint)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, storage.TypeS3, cfg.Storage.Type)
	assert.Equal(t, "snapshots", cfg.Storage.S3Bucket)
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("LEGALGPT_STORAGE_TYPE", "ftp")

	_, err := Load(viper.New(), "")
	assert.Error(t, err)
}

func TestRedacted(t *testing.T) {
	cfg := Config{APIKey: "k", Gemini: GeminiConfig{APIKey: "g", Model: "m"}}
	cfg.Storage.AWSSecretKey = "s"

	r := cfg.Redacted()
	assert.Equal(t, redacted, r.APIKey)
	assert.Equal(t, redacted, r.Gemini.APIKey)
	assert.Equal(t, redacted, r.Storage.AWSSecretKey)
	assert.Equal(t, "", r.Database.URL)
	assert.Equal(t, "m", r.Gemini.Model)
	assert.Equal(t, "k", cfg.APIKey)
}
