package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Lines start with "[HH:MM:SS]". The clock sits at characters 1 to 9.
const (
	clockStart = 1
	clockEnd   = 9
	stampWidth = 10
)

// parseClock reads the time of day from a line and places it on date.
func parseClock(line []rune, date time.Time) (time.Time, error) {
	window := sliceRunes(line, clockStart, clockEnd)

	hour, rest, _ := strings.Cut(window, ":")
	minute, second, _ := strings.Cut(rest, ":")

	h, err := clockField(hour, 23)
	if err != nil {
		return time.Time{}, fmt.Errorf("hour: %w", err)
	}
	m, err := clockField(minute, 59)
	if err != nil {
		return time.Time{}, fmt.Errorf("minute: %w", err)
	}
	s, err := clockField(second, 59)
	if err != nil {
		return time.Time{}, fmt.Errorf("second: %w", err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, time.UTC), nil
}

func clockField(s string, limit int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	if n < 0 || n > limit {
		return 0, fmt.Errorf("%d out of range 0-%d", n, limit)
	}
	return n, nil
}

// sliceRunes is line[start:end] by character, clamped to the line length.
func sliceRunes(line []rune, start, end int) string {
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	return string(line[start:end])
}
