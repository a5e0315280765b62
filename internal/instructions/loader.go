// Package instructions reads recipe instructions supplied as a file.
package instructions

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxBytes bounds how much text is accepted from one source.
const MaxBytes = 64 << 10

// Load reads instructions from path, or from stdin when path is "-".
// Line endings are normalized to LF and trailing newlines dropped;
// surrounding whitespace is otherwise left for the page to trim.
func Load(path string, stdin io.Reader) (string, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("reading instructions file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading instructions: %w", err)
	}
	if len(data) > MaxBytes {
		return "", fmt.Errorf("instructions exceed %d bytes", MaxBytes)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimRight(text, "\n"), nil
}

// LineCount returns the number of lines in text, not counting a trailing
// newline.
func LineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(text, "\n"), "\n") + 1
}
