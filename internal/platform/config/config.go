package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAddr             = ":8080"
	defaultLogLevel         = "info"
	defaultBatchConcurrency = 8
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string

	// EswatiniRequireChecksum makes Luhn failures on Eswatini PINs fatal.
	EswatiniRequireChecksum bool
	BatchConcurrency        int
	MetricsEnabled          bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Unset variables fall back to defaults; malformed values are errors.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:             envOr("NATID_ADDR", defaultAddr),
		LogLevel:         strings.ToLower(envOr("NATID_LOG_LEVEL", defaultLogLevel)),
		BatchConcurrency: defaultBatchConcurrency,
		MetricsEnabled:   true,
	}

	var err error
	if cfg.EswatiniRequireChecksum, err = envBool("NATID_ESWATINI_REQUIRE_CHECKSUM", false); err != nil {
		return Server{}, err
	}
	if cfg.MetricsEnabled, err = envBool("NATID_METRICS_ENABLED", true); err != nil {
		return Server{}, err
	}
	if v := os.Getenv("NATID_BATCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Server{}, fmt.Errorf("NATID_BATCH_CONCURRENCY must be a positive integer, got %q", v)
		}
		cfg.BatchConcurrency = n
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}
