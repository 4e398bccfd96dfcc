package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOutputFile = "build/HeatRisk.h"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.SampleCount)
	assert.Equal(t, "HeatIndexModel.h", cfg.OutputFile)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HEATRISK_SAMPLE_COUNT", "250")
	t.Setenv("HEATRISK_OUTPUT_FILE", testOutputFile)
	t.Setenv("HEATRISK_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/heatrisk.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.SampleCount)
	assert.Equal(t, testOutputFile, cfg.OutputFile)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/var/lib/node_exporter/heatrisk.prom", cfg.MetricsTextfile)
}

func TestLoad_ZeroSeedIsExplicit(t *testing.T) {
	t.Setenv("HEATRISK_SEED", "0")
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(0), *cfg.Seed)
}

func TestLoad_InvalidSampleCount(t *testing.T) {
	for _, v := range []string{"0", "-10", "many", "1.5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("HEATRISK_SAMPLE_COUNT", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "HEATRISK_SAMPLE_COUNT")
		})
	}
}

func TestLoad_BlankOutputFile(t *testing.T) {
	t.Setenv("HEATRISK_OUTPUT_FILE", "   ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEATRISK_OUTPUT_FILE")
}

func TestLoad_InvalidSeed(t *testing.T) {
	t.Setenv("HEATRISK_SEED", "-1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEATRISK_SEED")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
