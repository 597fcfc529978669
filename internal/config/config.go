package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds client-side settings loaded from the environment.
type Config struct {
	BaseURL        string        `env:"BOOKCAL_BASE_URL" envDefault:"http://ceprj.gachon.ac.kr:60001/api/api/v1"`
	Timeout        time.Duration `env:"BOOKCAL_TIMEOUT" envDefault:"30s"`
	CredentialsDir string        `env:"BOOKCAL_CREDENTIALS_DIR"`
	Debug          bool          `env:"BOOKCAL_DEBUG" envDefault:"false"`
}

// MockConfig holds settings for the development mock server.
type MockConfig struct {
	HTTPPort   string        `env:"MOCK_HTTP_PORT" envDefault:"60001"`
	JWTSecret  string        `env:"MOCK_JWT_SECRET" envDefault:"mock-secret"`
	AccessTTL  time.Duration `env:"MOCK_ACCESS_TTL" envDefault:"30m"`
	RefreshTTL time.Duration `env:"MOCK_REFRESH_TTL" envDefault:"720h"`
}

// LoadConfig reads client configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMockConfig reads mock server configuration from environment variables.
func LoadMockConfig() (*MockConfig, error) {
	var cfg MockConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
