package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// A missing explicit config file falls through to defaults.
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.ProjectPaths) != 1 || cfg.ProjectPaths[0] != "." {
		t.Errorf("ProjectPaths = %v, want [.]", cfg.ProjectPaths)
	}
	if cfg.PropertiesFile != "sonar-project.properties" {
		t.Errorf("PropertiesFile = %q", cfg.PropertiesFile)
	}
	if cfg.ResolveTimeoutSeconds != DefaultResolveTimeoutSeconds {
		t.Errorf("ResolveTimeoutSeconds = %d", cfg.ResolveTimeoutSeconds)
	}
	if cfg.WatchIntervalSeconds != DefaultWatchIntervalSeconds {
		t.Errorf("WatchIntervalSeconds = %d", cfg.WatchIntervalSeconds)
	}
	if !cfg.Output.Color || cfg.Output.Width != 80 {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `project_paths:
  - /proj/a
  - /proj/b
properties_file: custom.properties
watch_interval_seconds: 120
output:
  color: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.ProjectPaths) != 2 || cfg.ProjectPaths[1] != "/proj/b" {
		t.Errorf("ProjectPaths = %v", cfg.ProjectPaths)
	}
	if cfg.PropertiesFile != "custom.properties" {
		t.Errorf("PropertiesFile = %q", cfg.PropertiesFile)
	}
	if cfg.WatchIntervalSeconds != 120 {
		t.Errorf("WatchIntervalSeconds = %d", cfg.WatchIntervalSeconds)
	}
	if cfg.Output.Color {
		t.Error("output.color should be overridden to false")
	}
	// Unset keys keep their defaults.
	if cfg.ResolveTimeoutSeconds != DefaultResolveTimeoutSeconds {
		t.Errorf("ResolveTimeoutSeconds = %d", cfg.ResolveTimeoutSeconds)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandPath("~/projects/demo"); got != filepath.Join(home, "projects/demo") {
		t.Errorf("expandPath = %q", got)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute paths pass through, got %q", got)
	}
}
