// Package cli provides the command-line interface for imagelinks.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/imagelinks/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return commands.ExitError
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imagelinks",
		Short: "Extract image links from Chatterino chat logs",
		Long: `imagelinks gets the image links posted in one or more Twitch channels
from logs created by Chatterino, and stores them as JSON or an SQLite database.

Supported hosts:
  - imgur.com
  - gyazo.com
  - i.nuuls.com

Logs are read from <logs-dir>/Twitch/Channels/<channel>/<channel>-YYYY-MM-DD.log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewChannelsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
