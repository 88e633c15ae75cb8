package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"CareerCoin"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	Storage struct {
		Driver   string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
		Path     string `envconfig:"STORAGE_PATH" default:"careercoin.db"`
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"careercoin"`
	}

	Rewards struct {
		// CatalogFile is an optional TOML catalog. Empty means the built-in one.
		CatalogFile string `envconfig:"REWARDS_CATALOG_FILE"`
	}

	Streak struct {
		SweepAt string `envconfig:"STREAK_SWEEP_AT" default:"00:05"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

// ConnectionString builds the DSN for the configured driver. The memory driver has none.
func (c *Config) ConnectionString() string {
	switch c.Storage.Driver {
	case StoragePostgres:
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			c.Storage.User, c.Storage.Password, c.Storage.Host, c.Storage.Port, c.Storage.Name)
	case StorageSQLite:
		return "file:" + c.Storage.Path + "?_pragma=busy_timeout(5000)"
	default:
		return ""
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := time.Parse("15:04", c.Streak.SweepAt); err != nil {
		return fmt.Errorf("invalid streak sweep time %q: %w", c.Streak.SweepAt, err)
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
