package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soli0222/valentine-cli/internal/prompt"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Prompt.Question != prompt.DefaultQuestion {
		t.Fatalf("question = %q, want %q", cfg.Prompt.Question, prompt.DefaultQuestion)
	}
	if !cfg.UI.Color {
		t.Fatal("ui.color should default to true")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Fatalf("log = %+v, want info/console", cfg.Log)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `prompt:
  question: "Coffee tomorrow? (yes/no)"
ui:
  color: false
log:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Prompt.Question != "Coffee tomorrow? (yes/no)" {
		t.Fatalf("question = %q", cfg.Prompt.Question)
	}
	if cfg.UI.Color {
		t.Fatal("ui.color = true, want false")
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("log.format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	t.Setenv("VALENTINE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log.level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty question", body: "prompt:\n  question: \"   \"\n"},
		{name: "bad level", body: "log:\n  level: loud\n"},
		{name: "bad format", body: "log:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config, got nil")
	}
}
