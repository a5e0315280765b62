package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
)

type htmlRenderer struct{}

// Render converts the markdown form to HTML and wraps it in a section
// carrying the container's element id.
func (r *htmlRenderer) Render(doc *Document) ([]byte, error) {
	md, err := (&markdownRenderer{}).Render(doc)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := goldmark.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "<section id=\"%s\">\n", html.EscapeString(doc.ListID))
	out.Write(body.Bytes())
	out.WriteString("</section>\n")
	return out.Bytes(), nil
}
