package output

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ccollicutt/imagelinks/pkg/links"
)

// ErrUnknownFormat is returned for an output format that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how records are written.
type Format string

const (
	FormatJSON       Format = "json"
	FormatPrettyJSON Format = "pretty-json"
	FormatSQL        Format = "sql"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatPrettyJSON, FormatJSON, FormatSQL}
}

// FormatNames joins the supported format names with sep.
func FormatNames(sep string) string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, sep)
}

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (use %s)", ErrUnknownFormat, s, FormatNames(", "))
}

// IsDocument reports whether f writes a JSON document.
func (f Format) IsDocument() bool {
	return f == FormatJSON || f == FormatPrettyJSON
}

// DefaultPath is the output file used when none is given.
func (f Format) DefaultPath() string {
	if f.IsDocument() {
		return "./images.json"
	}
	return "./images.db"
}

// Describe names the format for the confirmation prompt.
func (f Format) Describe() string {
	if f == FormatSQL {
		return "an SQLite3 database"
	}
	return string(f)
}

// Writer persists a batch of link records.
type Writer interface {
	// Write stores the records and returns how many were written.
	Write(ctx context.Context, records []links.Record) (int, error)

	// Name returns the format name.
	Name() string
}

// Options configures a Writer.
type Options struct {
	Format Format

	// Path is the output file.
	Path string

	// Channels are the requested channel patterns, recorded in documents.
	Channels []string

	// BatchSize is the number of rows per INSERT for the sql format.
	BatchSize int

	Log logrus.FieldLogger
}

// NewWriter returns the Writer for opts.Format.
func NewWriter(opts Options) (Writer, error) {
	switch {
	case opts.Format.IsDocument():
		return NewDocumentWriter(opts.Path, opts.Channels, opts.Format == FormatPrettyJSON), nil
	case opts.Format == FormatSQL:
		return NewSQLWriter(opts.Path, opts.BatchSize, opts.Log), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}
