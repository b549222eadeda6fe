// Package output writes extracted link records as a JSON document or an SQLite table.
package output

import (
	"github.com/ccollicutt/imagelinks/pkg/links"
)

// CreatedLayout is how the document creation time is rendered.
const CreatedLayout = "2006-01-02T15:04:05.000000"

// Document is the JSON output envelope.
type Document struct {
	// Total is the number of links.
	Total int `json:"total"`

	// Created is when the document was generated, local time.
	Created string `json:"created"`

	// Channels are the channel patterns that were requested.
	Channels []string `json:"channels"`

	Links []DocumentLink `json:"links"`
}

// DocumentLink is a record as it appears in a Document.
type DocumentLink struct {
	Link       string `json:"link"`
	User       string `json:"user"`
	Date       string `json:"date"`
	Channel    string `json:"channel"`
	SpecificID string `json:"specific_id"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	RawLink    string `json:"raw_link"`
}

// NewDocumentLink converts a record for serialization.
func NewDocumentLink(r links.Record) DocumentLink {
	return DocumentLink{
		Link:       r.Link,
		User:       r.User,
		Date:       r.PostedAt.Format(links.DateLayout),
		Channel:    r.Channel,
		SpecificID: r.SpecificID,
		Message:    r.Message,
		Type:       r.Type.String(),
		RawLink:    r.RawLink(),
	}
}
