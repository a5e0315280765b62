package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestField_TrimAndClear(t *testing.T) {
	f := NewField("  Salt \n")
	if got := f.Trimmed(); got != "Salt" {
		t.Errorf("Trimmed = %q", got)
	}
	if got := f.Value(); got != "  Salt \n" {
		t.Errorf("Value should be raw, got %q", got)
	}
	f.Clear()
	if f.Value() != "" {
		t.Errorf("Clear left %q", f.Value())
	}
}

func TestTerminalAlerter(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	NewTerminalAlerter(&buf).Alert("Ingredient not found.")
	if got := buf.String(); !strings.Contains(got, "ALERT: Ingredient not found.") {
		t.Errorf("got %q", got)
	}
}

func TestRedirector(t *testing.T) {
	var r Redirector
	if r.Target() != "" {
		t.Error("expected no target before redirect")
	}
	r.Redirect("../login/login-page.html")
	if r.Target() != "../login/login-page.html" {
		t.Errorf("Target = %q", r.Target())
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Alert("a")
	r.Alert("b")
	got := r.Alerts()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Alerts = %v", got)
	}
}
