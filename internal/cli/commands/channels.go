package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/imagelinks/pkg/config"
	"github.com/ccollicutt/imagelinks/pkg/parser"
)

// NewChannelsCommand creates the channels command.
func NewChannelsCommand() *cobra.Command {
	var logsDir string

	cmd := &cobra.Command{
		Use:   "channels <pattern>...",
		Short: "List the channels a pattern resolves to",
		Long: `List the channel log directories matching each pattern, without extracting.

Checks:
  - Logs directory existence
  - Pattern validity
  - Number of log files per channel`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChannels(cmd, args, logsDir)
		},
	}

	cmd.Flags().StringVarP(&logsDir, "logs-dir", "l", config.DefaultLogsDir, "The directory of Chatterino logs, containing folder 'Twitch'")

	return cmd
}

func runChannels(cmd *cobra.Command, patterns []string, logsDir string) error {
	root, err := parser.CheckLogsDir(logsDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, pattern := range patterns {
		names, err := parser.MatchChannels(root, pattern)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "%s:\n", pattern)
		if len(names) == 0 {
			_, _ = fmt.Fprintf(out, "  (no logs)\n")
			continue
		}

		for _, name := range names {
			entries, err := os.ReadDir(parser.ChannelDir(root, name))
			if err != nil {
				return fmt.Errorf("reading logs of %q: %w", name, err)
			}

			count := 0
			for _, e := range entries {
				if !e.IsDir() && filepath.Ext(e.Name()) == ".log" {
					count++
				}
			}
			_, _ = fmt.Fprintf(out, "  - %s (%d log files)\n", name, count)
		}
	}

	return nil
}
