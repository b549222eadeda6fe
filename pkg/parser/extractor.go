package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/ccollicutt/imagelinks/pkg/links"
)

// Extractor pulls link records out of log files.
// It holds no state between files.
type Extractor struct {
	matcher *Matcher
	log     logrus.FieldLogger
}

// NewExtractor creates an Extractor that logs to log.
func NewExtractor(log logrus.FieldLogger) *Extractor {
	return &Extractor{
		matcher: NewMatcher(),
		log:     log.WithField("component", "extractor"),
	}
}

// ExtractAll extracts records from every path. Files that fail are logged
// and skipped; only context cancellation stops the batch.
func (e *Extractor) ExtractAll(ctx context.Context, paths []string) ([]links.Record, error) {
	var records []links.Record

	for _, path := range paths {
		found, err := e.Extract(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			e.log.WithError(err).WithField("file", filepath.Base(path)).Warn("Skipping log file")
			continue
		}
		records = append(records, found...)
	}

	return records, nil
}

// Extract returns the link records in a single log file. The file name must
// carry the channel and date. Content that is not UTF-8 yields no records.
func (e *Extractor) Extract(ctx context.Context, path string) ([]links.Record, error) {
	info, err := ParseFilename(path)
	if err != nil {
		return nil, err
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	log := e.log.WithField("file", filepath.Base(path))

	if !utf8.Valid(data) {
		log.Info("Unable to decode file - skipping")
		return nil, nil
	}

	var records []links.Record

	for _, line := range strings.Split(string(data), "\n") {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line = strings.TrimSuffix(line, "\r")

		// Comments note things like logging start time and timezone.
		if strings.HasPrefix(line, "#") {
			continue
		}

		records = append(records, e.extractLine(log, line, info)...)
	}

	log.WithField("links", len(records)).Debug("Extracted links")
	return records, nil
}

func (e *Extractor) extractLine(log logrus.FieldLogger, line string, info FileInfo) []links.Record {
	matches := e.matcher.FindAll(line)
	if len(matches) == 0 {
		return nil
	}

	meta, err := ParseLine(line, info.Date)
	if err != nil {
		log.WithError(err).Debugf("Unable to parse line: %s", line)
		return nil
	}

	// Names with spaces are system and bot notices, not chatters.
	if strings.Contains(meta.User, " ") {
		return nil
	}

	records := make([]links.Record, 0, len(matches))
	for _, m := range matches {
		r, err := links.NewRecord(m.Text, m.Type, m.SpecificID, meta.User, info.Channel, meta.Message, meta.PostedAt)
		if err != nil {
			log.WithError(err).Debugf("Skipping link in line: %s", line)
			continue
		}
		records = append(records, r)
	}

	return records
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- paths come from the logs directory
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
