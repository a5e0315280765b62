package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

type markdownRenderer struct{}

// Items with a body become "### title" plus an indented paragraph inside the
// list item, which is the heading-and-paragraph shape the recipe page uses.
var mdTemplate = template.Must(template.New("list").Funcs(template.FuncMap{
	"esc":    escapeMarkdown,
	"indent": indent,
}).Parse(`# {{ esc .Title }}
{{ range .Items }}
{{- if .Body }}
- ### {{ esc .Title }}

{{ indent (esc .Body) }}
{{- else }}
- {{ esc .Title }}
{{- end }}
{{- end }}
`))

func (r *markdownRenderer) Render(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
)

// blockMarker matches what would open a list, heading underline or fence
// at the start of a line once leading indentation is dropped.
var blockMarker = regexp.MustCompile(`^(?:\d+[.)]|[-+=~])`)

// escapeMarkdown backslash-escapes characters that would otherwise change
// how a name or instruction renders. Each line loses its leading
// indentation and any list, setext or fence marker it starts with is
// escaped, so text always renders as a plain paragraph.
func escapeMarkdown(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = mdEscaper.Replace(strings.TrimLeft(line, " \t"))
		if loc := blockMarker.FindStringIndex(line); loc != nil {
			// the marker's last byte is the punctuation to escape
			line = line[:loc[1]-1] + `\` + line[loc[1]-1:]
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// indent prefixes every non-empty line with two spaces so it stays inside
// the enclosing list item.
func indent(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
