// Package parser reads Chatterino log files and extracts image link records.
package parser

import (
	"errors"
	"time"
)

var (
	// ErrBadFilename is returned when a log file name is not <channel>-<YYYY>-<MM>-<DD>.log.
	ErrBadFilename = errors.New("log file name does not match pattern")

	// ErrMalformedLine is returned when a line has no usable timestamp or user prefix.
	ErrMalformedLine = errors.New("malformed log line")

	// ErrLogsDirNotFound is returned when the logs root directory is missing.
	ErrLogsDirNotFound = errors.New("logs directory does not exist")
)

// FileInfo is the context carried by a log file's name.
type FileInfo struct {
	// Channel is lower-cased.
	Channel string

	// Date is midnight UTC of the logged day.
	Date time.Time
}

// LineInfo is the metadata parsed from the prefix of a chat line.
type LineInfo struct {
	User    string
	Message string

	// PostedAt is the file date plus the line's time of day.
	PostedAt time.Time
}
