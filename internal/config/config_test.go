package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `[app]
name = "MyApp"
header = "Header text"
footer = "Footer text"
markdown = true

[log]
level = "debug"

[ui]
accent = "39"
code_theme = "dracula"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Name != "MyApp" {
		t.Errorf("expected app.name 'MyApp', got %q", cfg.App.Name)
	}
	if !cfg.App.Markdown {
		t.Error("expected app.markdown true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log.level 'debug', got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("expected default log.format 'text', got %q", cfg.Log.Format)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("expected ui.accent '39', got %q", cfg.UI.Accent)
	}
	if cfg.UI.CodeTheme != "dracula" {
		t.Errorf("expected ui.code_theme 'dracula', got %q", cfg.UI.CodeTheme)
	}

	text := cfg.Text()
	if text.AppName() != "MyApp" || text.HelpHeader() != "Header text" || text.HelpFooter() != "Footer text" {
		t.Errorf("unexpected help text %+v", text)
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "paramz.yaml")

	content := `app:
  name: MyApp
  footer: |
    See the docs.
log:
  format: json
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Name != "MyApp" {
		t.Errorf("expected app.name 'MyApp', got %q", cfg.App.Name)
	}
	if cfg.App.Footer != "See the docs.\n" {
		t.Errorf("unexpected footer %q", cfg.App.Footer)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "warn" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "invalid toml", file: "config.toml", content: `this is not valid toml {{{{`},
		{name: "unknown toml key", file: "config.toml", content: "[app]\ntitle = \"x\"\n"},
		{name: "unknown yaml key", file: "config.yml", content: "app:\n  title: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := LoadFrom(configPath); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadAllowMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := LoadAllowMissing(missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected exists=false")
	}
	if resolved != missing {
		t.Errorf("expected resolved path %q, got %q", missing, resolved)
	}
	if cfg.App.Name != "paramz" {
		t.Errorf("expected default app name, got %q", cfg.App.Name)
	}
}

func TestResolveConfigPath(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv(EnvConfigPath, envPath)

	if got := ResolveConfigPath("/explicit/config.toml"); got != "/explicit/config.toml" {
		t.Errorf("explicit path should win, got %q", got)
	}
	if got := ResolveConfigPath(""); got != envPath {
		t.Errorf("expected env path %q, got %q", envPath, got)
	}

	t.Setenv(EnvConfigPath, "")
	if got := ResolveConfigPath(""); got != DefaultPath() {
		t.Errorf("expected default path, got %q", got)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))

	// Load should return the default config when the file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Text().AppName() != "paramz" {
		t.Errorf("expected default app name, got %q", cfg.Text().AppName())
	}
}

func TestXDGPath(t *testing.T) {
	path, err := XDGPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should end with .config/paramz/config.toml
	if !strings.HasSuffix(path, filepath.Join(".config", "paramz", "config.toml")) {
		t.Errorf("unexpected XDG path %s", path)
	}
}
