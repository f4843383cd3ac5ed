package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_InvalidFlags(t *testing.T) {
	if code := run([]string{"--no-such-flag"}); code != 2 {
		t.Errorf("run() = %d, want 2 for an unknown flag", code)
	}
}

func TestRun_InvalidAdminURL(t *testing.T) {
	if code := run([]string{"--admin-url", "ftp://localhost:9002"}); code != 1 {
		t.Errorf("run() = %d, want 1 for an invalid admin url", code)
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if code := run([]string{"--config", path}); code != 1 {
		t.Errorf("run() = %d, want 1 for a missing config file", code)
	}
}

func TestRun_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hhvm_exporter.yaml")
	if err := os.WriteFile(path, []byte("web:\n  listen_address: nope\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if code := run([]string{"--config", path}); code != 1 {
		t.Errorf("run() = %d, want 1 for an invalid config file", code)
	}
}
