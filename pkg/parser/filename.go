package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// e.g. "quinndt-2021-05-26.log"
var filenamePattern = regexp.MustCompile(`^([^-]*)-(\d{4}-\d{2}-\d{2})\.log$`)

// ParseFilename extracts the channel and date from a log file path.
func ParseFilename(path string) (FileInfo, error) {
	base := filepath.Base(path)

	m := filenamePattern.FindStringSubmatch(base)
	if m == nil {
		return FileInfo{}, fmt.Errorf("%w: %q", ErrBadFilename, base)
	}

	// time.Parse rejects impossible dates such as 2021-02-30
	date, err := time.Parse("2006-01-02", m[2])
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: %q: %v", ErrBadFilename, base, err)
	}

	return FileInfo{
		Channel: strings.ToLower(m[1]),
		Date:    date,
	}, nil
}
