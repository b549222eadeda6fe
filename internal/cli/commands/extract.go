package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/imagelinks/pkg/config"
	"github.com/ccollicutt/imagelinks/pkg/links"
	"github.com/ccollicutt/imagelinks/pkg/output"
	"github.com/ccollicutt/imagelinks/pkg/parser"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitAborted = 1
	ExitError   = 2
)

// ExitCode is set by commands to indicate the result
var ExitCode = ExitOK

// ExtractOptions holds command-line options for the extract command.
type ExtractOptions struct {
	ConfigFile string
	LogsDir    string
	Format     string
	Output     string
	Channels   []string
	SkipPrompt bool
	LogLevel   string
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract -c CHANNEL [CHANNEL...]",
		Short: "Extract image links from channel logs",
		Long: `Get all image links posted in one or more channels and save them.

Channels may contain glob wildcards (e.g. 'xqc*'). Extra arguments after
the flags are treated as more channels.

When saving 1000 or more image links there is a confirmation prompt.

Exit codes:
  0 - Links saved
  1 - Aborted at the confirmation prompt
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "Optional YAML config file")
	cmd.Flags().StringVarP(&opts.LogsDir, "logs-dir", "l", config.DefaultLogsDir, "The directory of Chatterino logs, containing folder 'Twitch'")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", config.DefaultFormat, "Output file format ("+output.FormatNames("|")+")")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "The file to store the output in (default ./images.db or ./images.json)")
	cmd.Flags().StringSliceVarP(&opts.Channels, "channels", "c", nil, "One or more channels to get links from")
	cmd.Flags().BoolVarP(&opts.SkipPrompt, "yes", "y", false, "When prompted for anything, assume yes")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Read(ctx, opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg, opts, args)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.Level())

	writer, err := output.NewWriter(output.Options{
		Format:    cfg.OutputFormat(),
		Path:      cfg.Output,
		Channels:  cfg.Channels,
		BatchSize: cfg.BatchSize,
		Log:       log,
	})
	if err != nil {
		return err
	}

	records, err := collectLinks(ctx, cfg, log)
	if err != nil {
		return err
	}
	log.Infof("Total number of links: %d", len(records))

	if ShouldConfirm(len(records), cfg.SkipPrompt) {
		prompt := fmt.Sprintf("Write all %d links as %s to '%s' (Y/n): ",
			len(records), cfg.OutputFormat().Describe(), cfg.Output)

		ok, err := confirm(NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()), prompt)
		if err != nil {
			return err
		}
		if !ok {
			log.Error("Aborting.")
			ExitCode = ExitAborted
			return nil
		}
	}

	saved, err := writer.Write(ctx, records)
	if err != nil {
		return fmt.Errorf("saving links: %w", err)
	}

	log.Infof("Saved %d as %s to %s.", saved, writer.Name(), filepath.Base(cfg.Output))
	return nil
}

// collectLinks finds, extracts and filters the links of the configured channels.
func collectLinks(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) ([]links.Record, error) {
	files, err := parser.FindLogFiles(cfg.LogsDir, cfg.Channels, log)
	if err != nil {
		return nil, fmt.Errorf("finding log files: %w", err)
	}
	log.WithField("files", len(files)).Debug("Found log files")

	records, err := parser.NewExtractor(log).ExtractAll(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("extracting links: %w", err)
	}

	return links.Filter(records), nil
}

func confirm(c Confirmer, prompt string) (bool, error) {
	ok, err := c.Confirm(prompt)
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return ok, nil
}

// applyFlags overrides config values with flags the user set explicitly.
// Positional arguments are extra channels.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *ExtractOptions, args []string) {
	flags := cmd.Flags()

	if flags.Changed("logs-dir") {
		cfg.LogsDir = opts.LogsDir
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("yes") {
		cfg.SkipPrompt = opts.SkipPrompt
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}

	channels := append(append([]string{}, opts.Channels...), args...)
	if len(channels) > 0 {
		cfg.Channels = channels
	}
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log
}
