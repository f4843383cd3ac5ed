package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v, want WARN", l.Level())
	}
	if l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be filtered at the default level")
	}
}

func TestSetDebug(t *testing.T) {
	l, err := New(Options{Debug: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Level() != slog.LevelDebug {
		t.Fatalf("Level() = %v, want DEBUG", l.Level())
	}
	l.SetDebug(false)
	if l.Level() != slog.LevelWarn {
		t.Errorf("after SetDebug(false) Level() = %v, want WARN", l.Level())
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hhvm_exporter.log")
	l, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Warn("admin endpoint unavailable", "url", "http://localhost:9002/check-health")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if rec["msg"] != "admin endpoint unavailable" || rec["level"] != "WARN" {
		t.Errorf("record = %v", rec)
	}
}
