package config

import (
	"os"
	"strings"

	"github.com/ccollicutt/imagelinks/pkg/output"
)

// Default values for configuration.
const (
	DefaultLogsDir  = "."
	DefaultFormat   = string(output.FormatSQL)
	DefaultLogLevel = "info"
)

// Environment variable names.
const (
	EnvLogsDir  = "IMAGELINKS_LOGS_DIR"
	EnvFormat   = "IMAGELINKS_FORMAT"
	EnvLogLevel = "IMAGELINKS_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogsDir:   DefaultLogsDir,
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		BatchSize: output.DefaultBatchSize,
		Channels:  []string{},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvLogsDir); dir != "" {
		c.LogsDir = dir
	}
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = strings.ToLower(format)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
