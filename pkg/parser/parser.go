package parser

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Chatterino separates the stamp from the name with two spaces; some lines use one.
const maxSeparatorSpaces = 2

// ParseLine parses the user, message and posting time from a chat line.
// date is the day the log file covers.
func ParseLine(line string, date time.Time) (*LineInfo, error) {
	runes := []rune(line)

	rest := sliceRunes(runes, stampWidth, len(runes))
	for i := 0; i < maxSeparatorSpaces && strings.HasPrefix(rest, " "); i++ {
		rest = rest[1:]
	}

	user, message, _ := strings.Cut(rest, ": ")

	if !isASCII(user) {
		// Heuristic, not a real parse: CJK display names are logged as
		// "<display name> <username>". Display names with spaces of their
		// own pick the wrong token.
		parts := strings.Split(user, " ")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: non-ASCII name %q has no username", ErrMalformedLine, user)
		}
		user = parts[1]
	}

	postedAt, err := parseClock(runes, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return &LineInfo{
		User:     user,
		Message:  message,
		PostedAt: postedAt,
	}, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
