// Package links defines the image link record extracted from chat logs.
package links

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownLinkType is returned when a domain does not belong to a supported host.
var ErrUnknownLinkType = errors.New("unknown link type")

// DateLayout is how posting times are rendered in output.
const DateLayout = "2006-01-02T15:04:05"

// LinkType identifies a supported image host.
type LinkType int

const (
	Imgur LinkType = iota + 1
	Gyazo
	Nuuls
)

// hostInfo is the data attached to each LinkType.
type hostInfo struct {
	domain string
	// requireSubdomain means only the i.<domain> form is matched.
	requireSubdomain bool
	rawTemplate      string
	// excluded path segments are valid matches that are not a single image.
	excluded []string
}

var hosts = map[LinkType]hostInfo{
	Imgur: {
		domain:      "imgur.com",
		rawTemplate: "https://i.imgur.com/%s.png",
		// /a/ and /gallery/ are albums, /upload is the upload page
		excluded: []string{"a", "gallery", "upload"},
	},
	Gyazo: {
		domain:      "gyazo.com",
		rawTemplate: "https://i.gyazo.com/%s.png",
		// /thumb/<size>/<id> are resized variants
		excluded: []string{"thumb"},
	},
	Nuuls: {
		domain:           "nuuls.com",
		requireSubdomain: true,
		rawTemplate:      "https://i.nuuls.com/%s.png",
	},
}

// AllLinkTypes returns every supported link type in declaration order.
func AllLinkTypes() []LinkType {
	return []LinkType{Imgur, Gyazo, Nuuls}
}

// LinkTypeFromDomain maps a host domain such as "imgur.com" to its LinkType.
func LinkTypeFromDomain(domain string) (LinkType, error) {
	for _, t := range AllLinkTypes() {
		if hosts[t].domain == domain {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLinkType, domain)
}

// Valid reports whether t is one of the supported link types.
func (t LinkType) Valid() bool {
	_, ok := hosts[t]
	return ok
}

// Domain returns the host domain, e.g. "imgur.com".
func (t LinkType) Domain() string {
	return hosts[t].domain
}

// RequiresSubdomain reports whether links are only recognised with the i. prefix.
func (t LinkType) RequiresSubdomain() bool {
	return hosts[t].requireSubdomain
}

// String returns the domain, which is also the serialized form.
func (t LinkType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("LinkType(%d)", int(t))
	}
	return t.Domain()
}

// RawLink builds the direct image URL for an id. The .png suffix works for
// every supported host regardless of the real image format.
func (t LinkType) RawLink(specificID string) string {
	return fmt.Sprintf(hosts[t].rawTemplate, specificID)
}

// Excludes reports whether specificID is a known non-image path for this host.
func (t LinkType) Excludes(specificID string) bool {
	for _, e := range hosts[t].excluded {
		if e == specificID {
			return true
		}
	}
	return false
}

// Record is one image link posted in a chat log.
type Record struct {
	// Link is the exact text matched in the log line.
	Link string

	Type       LinkType
	SpecificID string

	User    string
	Channel string
	Message string

	// PostedAt combines the log file date with the line's time of day.
	PostedAt time.Time
}

// Key is the natural key of a record. Two records with equal keys are the same post.
type Key struct {
	SpecificID string
	Type       LinkType
	PostedAt   time.Time
	User       string
	Channel    string
	Message    string
}

// NewRecord validates the fields and returns a Record.
func NewRecord(link string, t LinkType, specificID, user, channel, message string, postedAt time.Time) (Record, error) {
	if !t.Valid() {
		return Record{}, fmt.Errorf("%w: %d", ErrUnknownLinkType, int(t))
	}
	if link == "" {
		return Record{}, errors.New("link is required")
	}
	if user == "" {
		return Record{}, errors.New("user is required")
	}
	if channel == "" {
		return Record{}, errors.New("channel is required")
	}
	if postedAt.IsZero() {
		return Record{}, errors.New("posted time is required")
	}

	return Record{
		Link:       link,
		Type:       t,
		SpecificID: specificID,
		User:       user,
		Channel:    channel,
		Message:    message,
		PostedAt:   postedAt,
	}, nil
}

// RawLink returns the canonical direct image URL.
func (r Record) RawLink() string {
	return r.Type.RawLink(r.SpecificID)
}

// Key returns the record's natural key.
func (r Record) Key() Key {
	return Key{
		SpecificID: r.SpecificID,
		Type:       r.Type,
		PostedAt:   r.PostedAt,
		User:       r.User,
		Channel:    r.Channel,
		Message:    r.Message,
	}
}

func (r Record) String() string {
	return fmt.Sprintf("[%s] #%s %s: %s", r.PostedAt.Format(DateLayout), r.Channel, r.User, r.RawLink())
}
