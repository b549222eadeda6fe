package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ccollicutt/imagelinks/pkg/links"
)

// DocumentWriter writes records as a single JSON document.
type DocumentWriter struct {
	path     string
	channels []string
	pretty   bool
	now      func() time.Time
}

// NewDocumentWriter creates a writer for path. pretty indents the output.
func NewDocumentWriter(path string, channels []string, pretty bool) *DocumentWriter {
	return &DocumentWriter{
		path:     path,
		channels: channels,
		pretty:   pretty,
		now:      time.Now,
	}
}

// Name returns the format name.
func (w *DocumentWriter) Name() string {
	if w.pretty {
		return string(FormatPrettyJSON)
	}
	return string(FormatJSON)
}

// Write creates or truncates the output file and encodes the records into it.
func (w *DocumentWriter) Write(ctx context.Context, records []links.Record) (int, error) {
	f, err := os.Create(w.path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", w.path, err)
	}

	if err := w.Encode(ctx, f, records); err != nil {
		_ = f.Close()
		return 0, err
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", w.path, err)
	}

	return len(records), nil
}

// Encode renders the document to out.
func (w *DocumentWriter) Encode(ctx context.Context, out io.Writer, records []links.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := Document{
		Total:    len(records),
		Created:  w.now().Format(CreatedLayout),
		Channels: w.channels,
		Links:    make([]DocumentLink, 0, len(records)),
	}
	if doc.Channels == nil {
		doc.Channels = []string{}
	}
	for _, r := range records {
		doc.Links = append(doc.Links, NewDocumentLink(r))
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	if w.pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}
