// Package diff previews how a recipe update changes its instructions.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Instructions returns a line diff from before to after. Removed lines are
// prefixed with "-", added lines with "+" and unchanged lines with a space.
// Both sides are normalized first so CRLF and trailing whitespace do not
// show up as changes. Identical inputs yield "".
func Instructions(before, after string) string {
	before, after = normalize(before), normalize(after)
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}

// normalize trims trailing whitespace from each line, converts CRLF to LF
// and guarantees a single trailing newline.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n") + "\n"
}
