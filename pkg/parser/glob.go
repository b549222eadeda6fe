package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ChannelDir returns where Chatterino keeps the logs of a Twitch channel.
func ChannelDir(logsRoot, channel string) string {
	return filepath.Join(logsRoot, "Twitch", "Channels", channel)
}

// CheckLogsDir returns the absolute logs root, or ErrLogsDirNotFound.
func CheckLogsDir(logsRoot string) (string, error) {
	abs, err := filepath.Abs(logsRoot)
	if err != nil {
		return "", fmt.Errorf("resolving logs directory %q: %w", logsRoot, err)
	}

	st, err := os.Stat(abs)
	if err != nil || !st.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrLogsDirNotFound, abs)
	}
	return abs, nil
}

// MatchChannels returns the channel directory names matching pattern, sorted.
// The pattern may contain glob wildcards.
func MatchChannels(logsRoot, pattern string) ([]string, error) {
	dirs, err := filepath.Glob(ChannelDir(logsRoot, strings.ToLower(pattern)))
	if err != nil {
		return nil, fmt.Errorf("invalid channel pattern %q: %w", pattern, err)
	}

	var names []string
	for _, d := range dirs {
		if st, err := os.Stat(d); err == nil && st.IsDir() {
			names = append(names, filepath.Base(d))
		}
	}

	sort.Strings(names)
	return names, nil
}

// FindLogFiles lists the files under each channel pattern in a deduplicated,
// sorted list. Channels without logs are logged and skipped.
func FindLogFiles(logsRoot string, channels []string, log logrus.FieldLogger) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, channel := range channels {
		channel = strings.ToLower(channel)

		names, err := MatchChannels(logsRoot, channel)
		if err != nil {
			return nil, err
		}

		if len(names) == 0 {
			log.Warnf("Channel '%s' does not have logs.", channel)
			continue
		}
		if strings.ContainsAny(channel, "*?[") {
			log.Infof("Channels captured from '%s': %s", channel, strings.Join(names, ", "))
		}

		for _, name := range names {
			files, err := filepath.Glob(filepath.Join(ChannelDir(logsRoot, name), "*"))
			if err != nil {
				return nil, fmt.Errorf("listing logs of %q: %w", name, err)
			}

			for _, f := range files {
				if st, err := os.Stat(f); err != nil || st.IsDir() {
					continue
				}
				if !seen[f] {
					seen[f] = true
					result = append(result, f)
				}
			}
		}
	}

	// Sort for deterministic ordering
	sort.Strings(result)
	return result, nil
}
