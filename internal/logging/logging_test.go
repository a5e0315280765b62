package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "json", &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("fetched", "count", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "fetched", rec["msg"])
	assert.EqualValues(t, 3, rec["count"])
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("verbose", "text", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestColorHandler_Line(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "text", &buf)
	require.NoError(t, err)

	log.With("page", "recipes").WithGroup("req").Warn("request failed", "status", 500)

	out := buf.String()
	assert.Contains(t, out, "WRN request failed")
	assert.Contains(t, out, " page=recipes")
	assert.Contains(t, out, " req.status=500")
	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestColorHandler_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewColorHandler(&buf, slog.LevelWarn))

	log.Info("quiet")
	assert.Empty(t, buf.String())

	log.Error("loud")
	assert.Contains(t, buf.String(), "ERR loud")
}

func TestColorHandler_GroupAttr(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewColorHandler(&buf, slog.LevelInfo))

	log.Info("sent", slog.Group("http", "method", "GET", "path", "/recipes"))
	assert.Contains(t, buf.String(), " http.method=GET http.path=/recipes")
}
