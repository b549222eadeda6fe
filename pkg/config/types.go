// Package config provides configuration loading and validation for imagelinks.
package config

import (
	"github.com/sirupsen/logrus"

	"github.com/ccollicutt/imagelinks/pkg/output"
)

// Config holds the settings of an extraction run. It is loaded from an
// optional YAML file, then environment variables, then command-line flags.
type Config struct {
	// LogsDir is the Chatterino logs root, containing the Twitch directory.
	LogsDir string `yaml:"logs_dir"`

	// Format is one of pretty-json, json or sql.
	Format string `yaml:"format"`

	// Output is the file to write. Defaults to ./images.db or ./images.json.
	Output string `yaml:"output,omitempty"`

	// Channels are channel names or glob patterns.
	Channels []string `yaml:"channels,omitempty"`

	// SkipPrompt answers yes to the confirmation prompt.
	SkipPrompt bool `yaml:"skip_prompt,omitempty"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`

	// BatchSize is the number of rows per INSERT for the sql format.
	BatchSize int `yaml:"batch_size,omitempty"`

	// populated during validation
	format output.Format
	level  logrus.Level
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() output.Format {
	return c.format
}

// Level returns the validated log level.
func (c *Config) Level() logrus.Level {
	return c.level
}
