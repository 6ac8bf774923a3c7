package config

import (
	"os"
	"strconv"

	"weightscope/domain/verdict"
	"weightscope/domain/weights"
	"weightscope/internal/errors"
)

// Config represents the complete analyzer configuration. Every policy
// constant of the pipeline lives here so thresholds can be tuned without
// touching decoder or classifier code.
type Config struct {
	Paths      PathConfig
	Decode     DecodeConfig
	Classify   ClassifyConfig
	Diagnostic DiagnosticConfig
	Report     ReportConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	// WeightsDir is the directory scanned for *_weights.bin / *_weights.txt
	// files. Required; there is no built-in default.
	WeightsDir string

	// PlotsDir receives the combined histogram image, created if absent.
	PlotsDir string

	// XLSXFile, when set, receives the per-class statistics spreadsheet.
	XLSXFile string
}

// DecodeConfig bounds the work either decoder may perform
type DecodeConfig struct {
	MaxBinaryRecords int // binary records read past the header
	MaxTextLines     int // non-blank, non-comment text lines inspected
}

// ClassifyConfig holds the value-based classification constants
type ClassifyConfig struct {
	DopaminergicWeight float64
	InhibitoryWeight   float64
	Tolerance          float64
}

// Policy converts the config into the domain classification policy
func (c ClassifyConfig) Policy() weights.ClassifyPolicy {
	return weights.ClassifyPolicy{
		DopaminergicWeight: c.DopaminergicWeight,
		InhibitoryWeight:   c.InhibitoryWeight,
		Tolerance:          c.Tolerance,
	}
}

// DiagnosticConfig holds the diversity diagnostic thresholds
type DiagnosticConfig struct {
	LowDiversityMin int
}

// Policy converts the config into the domain diagnostic policy
func (c DiagnosticConfig) Policy() verdict.Policy {
	return verdict.Policy{LowDiversityMin: c.LowDiversityMin}
}

// ReportConfig holds rendering settings
type ReportConfig struct {
	HistogramBins int
}

// Load reads configuration from environment variables. Callers may override
// individual fields (CLI flags do) before calling Validate.
func Load() *Config {
	defaults := weights.DefaultClassifyPolicy()
	return &Config{
		Paths: PathConfig{
			WeightsDir: getEnvOrDefault("WEIGHTS_DIR", ""),
			PlotsDir:   getEnvOrDefault("PLOTS_DIR", "plots"),
			XLSXFile:   getEnvOrDefault("REPORT_XLSX", ""),
		},
		Decode: DecodeConfig{
			MaxBinaryRecords: getEnvIntOrDefault("MAX_BINARY_RECORDS", 50000),
			MaxTextLines:     getEnvIntOrDefault("MAX_TEXT_LINES", 100000),
		},
		Classify: ClassifyConfig{
			DopaminergicWeight: getEnvFloatOrDefault("DOPAMINERGIC_WEIGHT", defaults.DopaminergicWeight),
			InhibitoryWeight:   getEnvFloatOrDefault("INHIBITORY_WEIGHT", defaults.InhibitoryWeight),
			Tolerance:          getEnvFloatOrDefault("WEIGHT_TOLERANCE", defaults.Tolerance),
		},
		Diagnostic: DiagnosticConfig{
			LowDiversityMin: getEnvIntOrDefault("LOW_DIVERSITY_MIN", verdict.DefaultPolicy().LowDiversityMin),
		},
		Report: ReportConfig{
			HistogramBins: getEnvIntOrDefault("HISTOGRAM_BINS", 50),
		},
	}
}

// Validate checks required fields and threshold sanity
func (c *Config) Validate() error {
	if c.Paths.WeightsDir == "" {
		return errors.ConfigInvalid("WEIGHTS_DIR is required (or pass --dir)")
	}
	if c.Decode.MaxBinaryRecords <= 0 {
		return errors.ConfigInvalid("MAX_BINARY_RECORDS must be positive")
	}
	if c.Decode.MaxTextLines <= 0 {
		return errors.ConfigInvalid("MAX_TEXT_LINES must be positive")
	}
	if c.Classify.Tolerance <= 0 {
		return errors.ConfigInvalid("WEIGHT_TOLERANCE must be positive")
	}
	if c.Diagnostic.LowDiversityMin < 1 {
		return errors.ConfigInvalid("LOW_DIVERSITY_MIN must be at least 1")
	}
	if c.Report.HistogramBins <= 0 {
		return errors.ConfigInvalid("HISTOGRAM_BINS must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
