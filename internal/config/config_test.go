package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/careercoin/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "CareerCoin", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, config.StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "00:05", cfg.Streak.SweepAt)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "file:careercoin.db?_pragma=busy_timeout(5000)", cfg.ConnectionString())
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://postgres:secret@db:5432/careercoin?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Driver", "STORAGE_DRIVER", "mongo"},
		{"SweepAt", "STREAK_SWEEP_AT", "midnight"},
		{"Port", "PORT", "eighty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestConnectionString_Memory(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ConnectionString())
}
