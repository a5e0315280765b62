// Package page holds the capabilities a page controller is given: form
// fields it reads and clears, a way to alert the user, and a way to navigate
// away.
package page

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Field is a single form input.
type Field struct {
	mu    sync.Mutex
	value string
}

// NewField returns a Field holding v.
func NewField(v string) *Field { return &Field{value: v} }

// Set replaces the field's value.
func (f *Field) Set(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Value returns the raw value.
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Trimmed returns the value with surrounding whitespace removed.
func (f *Field) Trimmed() string { return strings.TrimSpace(f.Value()) }

// Clear empties the field.
func (f *Field) Clear() { f.Set("") }

// Alerter shows a blocking user-facing message.
type Alerter interface {
	Alert(msg string)
}

// Navigator moves the user to another page.
type Navigator interface {
	Redirect(target string)
}

// TerminalAlerter writes alerts to w in red.
type TerminalAlerter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminalAlerter returns an Alerter writing to w.
func NewTerminalAlerter(w io.Writer) *TerminalAlerter {
	return &TerminalAlerter{w: w}
}

func (a *TerminalAlerter) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(a.w, "ALERT: ")
	fmt.Fprintln(a.w, msg)
}

// Redirector records the last redirect target instead of leaving the process.
type Redirector struct {
	mu     sync.Mutex
	target string
}

func (r *Redirector) Redirect(target string) {
	r.mu.Lock()
	r.target = target
	r.mu.Unlock()
}

// Target returns the last redirect target, or "" if none happened.
func (r *Redirector) Target() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

// Recorder is an Alerter that keeps every message, for tests.
type Recorder struct {
	mu     sync.Mutex
	alerts []string
}

func (r *Recorder) Alert(msg string) {
	r.mu.Lock()
	r.alerts = append(r.alerts, msg)
	r.mu.Unlock()
}

// Alerts returns the messages seen so far.
func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}
