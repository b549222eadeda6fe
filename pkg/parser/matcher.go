package parser

import (
	"regexp"
	"strings"

	"github.com/ccollicutt/imagelinks/pkg/links"
)

// Match is one image link found in a line.
type Match struct {
	// Text is the matched substring, e.g. "https://imgur.com/abc123.jpg".
	Text       string
	Type       links.LinkType
	SpecificID string
}

// Matcher finds links to supported image hosts.
type Matcher struct {
	pattern *regexp.Regexp
	hosts   int
}

// NewMatcher builds a matcher for the given link types, or all of them if none are given.
func NewMatcher(types ...links.LinkType) *Matcher {
	if len(types) == 0 {
		types = links.AllLinkTypes()
	}

	hosts := make([]string, len(types))
	for i, t := range types {
		prefix := `(?:i\.)?`
		if t.RequiresSubdomain() {
			prefix = `i\.`
		}
		hosts[i] = prefix + "(" + regexp.QuoteMeta(t.Domain()) + ")"
	}

	// Capture groups 1..n are the hosts, n+1 is the specific id.
	expr := `(?:https?://)?(?:` + strings.Join(hosts, "|") + `)/([\p{L}\p{N}_-]*)(?:\.[\p{L}\p{N}_]*)?`

	return &Matcher{
		pattern: regexp.MustCompile(expr),
		hosts:   len(types),
	}
}

// FindAll returns every link in line, in order of appearance.
func (m *Matcher) FindAll(line string) []Match {
	var matches []Match

	idGroup := m.hosts + 1
	for _, loc := range m.pattern.FindAllStringSubmatchIndex(line, -1) {
		domain := ""
		for g := 1; g <= m.hosts; g++ {
			if loc[2*g] >= 0 {
				domain = line[loc[2*g]:loc[2*g+1]]
				break
			}
		}

		t, err := links.LinkTypeFromDomain(domain)
		if err != nil {
			continue
		}

		matches = append(matches, Match{
			Text:       line[loc[0]:loc[1]],
			Type:       t,
			SpecificID: line[loc[2*idGroup]:loc[2*idGroup+1]],
		})
	}

	return matches
}
