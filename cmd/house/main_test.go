package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogsStartupFailure(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "house.log")
	cfgFile := filepath.Join(dir, "config.yaml")
	yaml := "lighting:\n  ambient_color: not-a-color\n" +
		"assets:\n  dir: " + dir + "\n" +
		"logging:\n  log_file: " + logFile + "\n"
	if err := os.WriteFile(cfgFile, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := flag.Set("config", cfgFile); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { flag.Set("config", "") })

	if code := run(); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "failed to create app") {
		t.Errorf("log missing failure entry:\n%s", data)
	}
}

func TestRunRejectsMissingConfig(t *testing.T) {
	if err := flag.Set("config", filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { flag.Set("config", "") })

	if code := run(); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}
