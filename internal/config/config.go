// Package config handles the paramz application profile.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "PARAMZ_CONFIG"

// Config represents the paramz configuration.
type Config struct {
	// App holds the texts shown on generated help pages.
	App AppConfig `toml:"app" yaml:"app"`

	// Log controls diagnostic logging.
	Log LogConfig `toml:"log" yaml:"log"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui" yaml:"ui"`
}

// AppConfig describes the application a help page is rendered for. It
// provides the AppName, HelpHeader and HelpFooter callbacks of the parser.
type AppConfig struct {
	Name   string `toml:"name" yaml:"name"`
	Header string `toml:"header" yaml:"header"`
	Footer string `toml:"footer" yaml:"footer"`

	// Markdown renders header and footer as markdown.
	Markdown bool `toml:"markdown" yaml:"markdown"`
}

func (a AppConfig) AppName() string    { return strings.TrimSpace(a.Name) }
func (a AppConfig) HelpHeader() string { return a.Header }
func (a AppConfig) HelpFooter() string { return a.Footer }

// LogConfig selects the slog level (debug, info, warn, error) and handler
// format (text, json).
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for help output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent" yaml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	// Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme" yaml:"code_theme"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		App: AppConfig{Name: "paramz"},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// Text returns the help texts of the configured application.
func (c *Config) Text() AppConfig {
	if c == nil {
		return AppConfig{}
	}
	return c.App
}

// Load loads the configuration from the resolved default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	cfg, _, _, err := LoadAllowMissing("")
	return cfg, err
}

// LoadAllowMissing resolves path and loads it. A missing file yields the
// default config with exists set to false.
func LoadAllowMissing(path string) (cfg *Config, resolved string, exists bool, err error) {
	resolved = ResolveConfigPath(path)
	if _, statErr := os.Stat(resolved); os.IsNotExist(statErr) {
		return Default(), resolved, false, nil
	}
	cfg, err = LoadFrom(resolved)
	if err != nil {
		return nil, resolved, true, err
	}
	return cfg, resolved, true, nil
}

// LoadFrom loads the configuration from a specific path. Files ending in
// .yaml or .yml are read as YAML, everything else as TOML. Missing fields
// keep their defaults.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	if isYAML(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return config, nil
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse config %s: unknown key %q", path, undecoded[0].String())
	}
	return config, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ResolveConfigPath resolves the config path with precedence:
//  1. explicitConfigPath
//  2. $PARAMZ_CONFIG
//  3. DefaultPath
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/paramz/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "paramz", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/paramz/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "paramz", "config.toml"), nil
}
