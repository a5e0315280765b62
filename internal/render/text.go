package render

import (
	"bytes"
	"strings"
)

type textRenderer struct{}

// Render writes one title per line; bodies follow their title indented by
// four spaces with a blank line between entries.
func (r *textRenderer) Render(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	for i, it := range doc.Items {
		if doc.Detailed && i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(it.Title)
		buf.WriteString("\n")
		if it.Body == "" {
			continue
		}
		for _, line := range strings.Split(it.Body, "\n") {
			buf.WriteString("    ")
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
