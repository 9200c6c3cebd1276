package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"NATID_ADDR", "NATID_LOG_LEVEL", "NATID_ESWATINI_REQUIRE_CHECKSUM", "NATID_BATCH_CONCURRENCY", "NATID_METRICS_ENABLED"} {
			t.Setenv(k, "")
		}
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.EswatiniRequireChecksum)
		assert.Equal(t, 8, cfg.BatchConcurrency)
		assert.True(t, cfg.MetricsEnabled)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("NATID_ADDR", ":9090")
		t.Setenv("NATID_LOG_LEVEL", "DEBUG")
		t.Setenv("NATID_ESWATINI_REQUIRE_CHECKSUM", "true")
		t.Setenv("NATID_BATCH_CONCURRENCY", "3")
		t.Setenv("NATID_METRICS_ENABLED", "false")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, Server{
			Addr:                    ":9090",
			LogLevel:                "debug",
			EswatiniRequireChecksum: true,
			BatchConcurrency:        3,
			MetricsEnabled:          false,
		}, cfg)
	})

	t.Run("malformed values", func(t *testing.T) {
		t.Setenv("NATID_BATCH_CONCURRENCY", "0")
		_, err := FromEnv()
		assert.Error(t, err)

		t.Setenv("NATID_BATCH_CONCURRENCY", "")
		t.Setenv("NATID_METRICS_ENABLED", "sometimes")
		_, err = FromEnv()
		assert.Error(t, err)
	})
}
