package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weightscope/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WEIGHTS_DIR", "/tmp/models")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/models", cfg.Paths.WeightsDir)
	assert.Equal(t, "plots", cfg.Paths.PlotsDir)
	assert.Equal(t, 50000, cfg.Decode.MaxBinaryRecords)
	assert.Equal(t, 100000, cfg.Decode.MaxTextLines)
	assert.Equal(t, 0.6, cfg.Classify.DopaminergicWeight)
	assert.Equal(t, -0.25, cfg.Classify.InhibitoryWeight)
	assert.Equal(t, 0.001, cfg.Classify.Tolerance)
	assert.Equal(t, 5, cfg.Diagnostic.LowDiversityMin)
	assert.Equal(t, 50, cfg.Report.HistogramBins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEIGHTS_DIR", "/data/weights")
	t.Setenv("PLOTS_DIR", "/data/plots")
	t.Setenv("MAX_BINARY_RECORDS", "1000")
	t.Setenv("MAX_TEXT_LINES", "2000")
	t.Setenv("DOPAMINERGIC_WEIGHT", "0.7")
	t.Setenv("LOW_DIVERSITY_MIN", "8")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/data/plots", cfg.Paths.PlotsDir)
	assert.Equal(t, 1000, cfg.Decode.MaxBinaryRecords)
	assert.Equal(t, 2000, cfg.Decode.MaxTextLines)
	assert.Equal(t, 0.7, cfg.Classify.DopaminergicWeight)
	assert.Equal(t, 8, cfg.Diagnostic.LowDiversityMin)
}

func TestLoad_MalformedEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("WEIGHTS_DIR", "/tmp/models")
	t.Setenv("MAX_BINARY_RECORDS", "lots")

	cfg := Load()
	assert.Equal(t, 50000, cfg.Decode.MaxBinaryRecords)
}

func TestValidate_RequiresWeightsDir(t *testing.T) {
	t.Setenv("WEIGHTS_DIR", "")

	cfg := Load()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestValidate_RejectsBadThresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero binary cap", func(c *Config) { c.Decode.MaxBinaryRecords = 0 }},
		{"negative line cap", func(c *Config) { c.Decode.MaxTextLines = -1 }},
		{"zero tolerance", func(c *Config) { c.Classify.Tolerance = 0 }},
		{"zero diversity minimum", func(c *Config) { c.Diagnostic.LowDiversityMin = 0 }},
		{"zero histogram bins", func(c *Config) { c.Report.HistogramBins = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WEIGHTS_DIR", "/tmp/models")
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
