package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=8000"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	VenueAPI VenueAPIConfig
}

// VenueAPIConfig points at the venue data provider. BaseURL must contain the
// {venue_slug} placeholder; /static and /dynamic are appended to it.
type VenueAPIConfig struct {
	BaseURL string        `env:"VENUE_API_BASE_URL, default=https://consumer-api.development.dev.woltapi.com/home-assignment-api/v1/venues/{venue_slug}"`
	Timeout time.Duration `env:"VENUE_API_TIMEOUT,  default=5s"`
	Retries int           `env:"VENUE_API_RETRIES,  default=1"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if cfg.VenueAPI.Retries < 0 {
		return nil, fmt.Errorf("VENUE_API_RETRIES must not be negative, got %d", cfg.VenueAPI.Retries)
	}
	return &cfg, nil
}
