package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	Info("nothing %d", 1)
	Error("nothing %s", "here")
	Debug("nothing")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calc.log")

	got, err := Init(path, "debug")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}

	Debug("evaluated %s", "2+2")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "evaluated 2+2") {
		t.Fatalf("log does not contain message:\n%s", data)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if _, err := Init(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
