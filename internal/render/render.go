// Package render formats a rendered list container for output.
package render

import (
	"fmt"

	"github.com/dshills/recipectl/internal/view"
)

// Document is a snapshot of one list container ready to be formatted.
type Document struct {
	Title  string      `json:"title"`
	ListID string      `json:"list_id"`
	Items  []view.Item `json:"items"`
	// Detailed marks lists whose items carry a body (recipes).
	Detailed bool `json:"-"`
}

// Snapshot captures the current contents of l.
func Snapshot(title string, l *view.List, detailed bool) *Document {
	items := l.Items()
	if items == nil {
		items = []view.Item{}
	}
	return &Document{Title: title, ListID: l.ID, Items: items, Detailed: detailed}
}

// Renderer formats a Document into bytes for output.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
}

// Formats lists the accepted format names.
var Formats = []string{"text", "md", "json", "html", "xlsx"}

// NewRenderer returns a Renderer for the given format string.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return &textRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "html":
		return &htmlRenderer{}, nil
	case "xlsx":
		return &xlsxRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, md, json, html, xlsx", format)
	}
}
