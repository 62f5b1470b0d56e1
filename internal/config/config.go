package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all client configuration loaded from environment variables.
type Config struct {
	API     APIConfig
	Cache   CacheConfig
	Session SessionConfig
	Mock    MockConfig
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `envconfig:"FEMEE_API_URL" default:"http://localhost:5000/api"`
	Timeout time.Duration `envconfig:"FEMEE_API_TIMEOUT" default:"30s"`
}

// CacheConfig holds query cache staleness settings.
type CacheConfig struct {
	TTL     time.Duration `envconfig:"FEMEE_CACHE_TTL" default:"5m"`
	UserTTL time.Duration `envconfig:"FEMEE_CACHE_USER_TTL" default:"10m"`
}

// SessionConfig holds session persistence settings.
type SessionConfig struct {
	Dir string `envconfig:"FEMEE_SESSION_DIR" default:""`
}

// MockConfig holds settings for the local development backend.
type MockConfig struct {
	Host string `envconfig:"MOCKAPI_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"MOCKAPI_PORT" default:"5000"`
}

// Address returns the mock server address in host:port format.
func (m *MockConfig) Address() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// Resolve returns the session directory, falling back to the user
// config directory when none is configured.
func (s *SessionConfig) Resolve() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve session dir: %w", err)
	}
	return filepath.Join(base, "femee"), nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
