package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"":        DefaultLevel,
		"debug":   log.DebugLevel,
		" WARN ":  log.WarnLevel,
		"error":   log.ErrorLevel,
		"verbose": DefaultLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "tier", "grade1")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "tier=grade1") {
		t.Fatalf("expected warn line with fields: %s", out)
	}
}

func TestOpenFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "spellace.log")
	file, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	_ = file.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}
