// Package redact keeps bearer tokens and other credentials out of log lines
// and error messages.
package redact

import (
	"net/http"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

// patterns holds secret-detection regexes in priority order.
var patterns = []*regexp.Regexp{
	// JWT tokens (three base64url segments)
	regexp.MustCompile(`eyJ[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+`),
	// Bearer credentials of any length
	regexp.MustCompile(`(?i)(Bearer\s+)[A-Za-z0-9\-._~+/]+=*`),
	// JSON or form token fields
	regexp.MustCompile(`(?i)("?(?:auth[-_]?token|access_token|token)"?\s*[:=]\s*"?)[^"\s,}]+`),
	// Inline password assignments
	regexp.MustCompile(`(?i)(password\s*[:=]\s*)\S+`),
}

// Redact replaces known secret patterns in input with [REDACTED], keeping
// any leading label such as "Bearer ".
func Redact(input string) string {
	for i, re := range patterns {
		if i == 0 {
			input = re.ReplaceAllString(input, redacted)
			continue
		}
		input = re.ReplaceAllString(input, "${1}"+redacted)
	}
	return input
}

// Header returns a copy of h that is safe to log: the Authorization value is
// reduced to its scheme and cookies are dropped.
func Header(h http.Header) http.Header {
	out := h.Clone()
	if out == nil {
		return http.Header{}
	}
	if v := out.Get("Authorization"); v != "" {
		scheme, _, _ := strings.Cut(v, " ")
		out.Set("Authorization", scheme+" "+redacted)
	}
	out.Del("Cookie")
	out.Del("Set-Cookie")
	return out
}

// Token masks a credential for display, keeping at most the first four
// characters.
func Token(tok string) string {
	r := []rune(tok)
	switch {
	case len(r) == 0:
		return ""
	case len(r) <= 8:
		return redacted
	default:
		return string(r[:4]) + "…" + redacted
	}
}
