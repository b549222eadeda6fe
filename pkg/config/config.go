package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/imagelinks/pkg/output"
	"github.com/ccollicutt/imagelinks/pkg/parser"
)

// Read loads defaults, the file at path if path is not empty, and environment
// overrides. The result is not validated so that flags can still be applied.
func Read(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Validate checks a configuration, fills in derived defaults and resolves paths.
// Directory and format errors are fatal before any extraction starts.
func Validate(cfg *Config) error {
	if len(cfg.Channels) == 0 {
		return errors.New("channels: at least one channel is required")
	}
	for i, ch := range cfg.Channels {
		if strings.TrimSpace(ch) == "" {
			return fmt.Errorf("channels[%d]: empty channel name", i)
		}
		cfg.Channels[i] = strings.ToLower(ch)
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	cfg.format = format
	cfg.Format = string(format)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	cfg.level = level

	logsDir, err := parser.CheckLogsDir(expandEnvVar(cfg.LogsDir))
	if err != nil {
		return fmt.Errorf("logs_dir: %w", err)
	}
	cfg.LogsDir = logsDir

	out := expandEnvVar(cfg.Output)
	if out == "" {
		out = format.DefaultPath()
	}
	if cfg.Output, err = filepath.Abs(out); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if cfg.BatchSize < 0 {
		return fmt.Errorf("batch_size: must be >= 0, got %d", cfg.BatchSize)
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = output.DefaultBatchSize
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
