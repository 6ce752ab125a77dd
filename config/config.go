// Package config loads the portal configuration from defaults, an optional YAML file, a
// .env file and LEGALGPT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"legalgpt-portal/client"
	"legalgpt-portal/feedback"
	"legalgpt-portal/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "LEGALGPT"

// Config is the complete portal configuration
type Config struct {
	Server   ServerConfig     `mapstructure:"server" yaml:"server"`
	API      client.APIConfig `mapstructure:"api" yaml:"api"`
	APIKey   string           `mapstructure:"api_key" yaml:"api_key"`
	Gemini   GeminiConfig     `mapstructure:"gemini" yaml:"gemini"`
	Database DatabaseConfig   `mapstructure:"database" yaml:"database"`
	Storage  storage.Config   `mapstructure:"storage" yaml:"storage"`
	Cache    CacheConfig      `mapstructure:"cache" yaml:"cache"`
	Log      LogConfig        `mapstructure:"log" yaml:"log"`
	UI       UIConfig         `mapstructure:"ui" yaml:"ui"`
	MCP      MCPConfig        `mapstructure:"mcp" yaml:"mcp"`
}

// ServerConfig configures the HTTP backend
type ServerConfig struct {
	Addr       string  `mapstructure:"addr" yaml:"addr"`
	APIKeyHash string  `mapstructure:"api_key_hash" yaml:"api_key_hash"`
	RateLimit  float64 `mapstructure:"rate_limit" yaml:"rate_limit"`
	RateBurst  int     `mapstructure:"rate_burst" yaml:"rate_burst"`
}

// GeminiConfig configures the answer generator
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	Model  string `mapstructure:"model" yaml:"model"`
}

// DatabaseConfig configures consultation history. An empty URL disables history.
type DatabaseConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// CacheConfig configures the answer cache
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl" yaml:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" yaml:"cleanup_interval"`
}

// LogConfig configures logging
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// UIConfig configures the terminal client
type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration" yaml:"toast_duration"`
}

// MCPConfig configures the MCP server's HTTP transport
type MCPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":7860")
	v.SetDefault("server.api_key_hash", "")
	v.SetDefault("server.rate_limit", 2.0)
	v.SetDefault("server.rate_burst", 5)
	v.SetDefault("api.base_url", client.DefaultBaseURL)
	v.SetDefault("api.endpoint", client.DefaultEndpoint)
	v.SetDefault("api_key", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("database.url", "")
	v.SetDefault("storage.type", string(storage.TypeLocal))
	v.SetDefault("storage.local_path", "./storage/snapshots")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.aws_access_key", "")
	v.SetDefault("storage.aws_secret_key", "")
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("ui.toast_duration", feedback.DefaultToastDuration)
	v.SetDefault("mcp.addr", ":8081")
}

// conventional variable names accepted next to the LEGALGPT_* ones
var envAliases = map[string]string{
	"gemini.api_key":         "GEMINI_API_KEY",
	"database.url":           "DATABASE_URL",
	"storage.type":           "STORAGE_TYPE",
	"storage.local_path":     "STORAGE_LOCAL_PATH",
	"storage.s3_bucket":      "AWS_S3_BUCKET",
	"storage.s3_region":      "AWS_REGION",
	"storage.aws_access_key": "AWS_ACCESS_KEY_ID",
	"storage.aws_secret_key": "AWS_SECRET_ACCESS_KEY",
}

// Load reads configuration into v and decodes it. configFile overrides the default
// location $HOME/.legalgpt/config.yaml; a missing default file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range envAliases {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".legalgpt"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no component can run with
func (c *Config) Validate() error {
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if c.Server.RateBurst < 1 {
		return fmt.Errorf("server.rate_burst must be at least 1")
	}
	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("ui.toast_duration must be positive")
	}
	switch c.Storage.Type {
	case storage.TypeLocal, storage.TypeS3:
	default:
		return fmt.Errorf("unknown storage.type %q", c.Storage.Type)
	}
	return nil
}

const redacted = "********"

// Redacted returns a copy safe to print
func (c Config) Redacted() Config {
	mask := func(s *string) {
		if *s != "" {
			*s = redacted
		}
	}
	mask(&c.APIKey)
	mask(&c.Server.APIKeyHash)
	mask(&c.Gemini.APIKey)
	mask(&c.Database.URL)
	mask(&c.Storage.AWSAccessKey)
	mask(&c.Storage.AWSSecretKey)
	return c
}
