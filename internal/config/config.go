package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	SampleCount int
	OutputFile  string

	// Seed makes dataset generation reproducible. Nil means the process-wide
	// entropy-seeded source.
	Seed *uint64

	LogLevel  string
	LogFormat string

	// MetricsTextfile, when set, receives the Prometheus registry in text
	// exposition format after the run.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	sampleCount, err := strconv.Atoi(sharedcfg.EnvOrDefault("HEATRISK_SAMPLE_COUNT", "5000"))
	if err != nil || sampleCount <= 0 {
		return nil, errors.New("invalid HEATRISK_SAMPLE_COUNT: must be a positive integer")
	}

	seed, err := parseSeed()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		SampleCount:     sampleCount,
		OutputFile:      strings.TrimSpace(sharedcfg.EnvOrDefault("HEATRISK_OUTPUT_FILE", "HeatIndexModel.h")),
		Seed:            seed,
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	if cfg.OutputFile == "" {
		return nil, errors.New("HEATRISK_OUTPUT_FILE is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("invalid LOG_FORMAT: must be json or text")
	}

	return cfg, nil
}

func parseSeed() (*uint64, error) {
	s := strings.TrimSpace(os.Getenv("HEATRISK_SEED"))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, errors.New("invalid HEATRISK_SEED: must be an unsigned integer")
	}
	return &v, nil
}
