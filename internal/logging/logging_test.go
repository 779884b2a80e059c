package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		"info":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		" error ": log.ErrorLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("replayed log", "source", "a.mjson")
	logger.Warn("log ended early", "source", "b.mjson")

	out := buf.String()
	if strings.Contains(out, "a.mjson") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "log ended early") || !strings.Contains(out, "b.mjson") {
		t.Errorf("warn line missing: %q", out)
	}
}
