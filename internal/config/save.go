package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/paramz/internal/atomicfile"
)

type persistedConfig struct {
	App *persistedApp `toml:"app,omitempty" yaml:"app,omitempty"`
	Log *persistedLog `toml:"log,omitempty" yaml:"log,omitempty"`
	UI  *persistedUI  `toml:"ui,omitempty" yaml:"ui,omitempty"`
}

type persistedApp struct {
	Name     *string `toml:"name,omitempty" yaml:"name,omitempty"`
	Header   *string `toml:"header,omitempty" yaml:"header,omitempty"`
	Footer   *string `toml:"footer,omitempty" yaml:"footer,omitempty"`
	Markdown *bool   `toml:"markdown,omitempty" yaml:"markdown,omitempty"`
}

type persistedLog struct {
	Level  *string `toml:"level,omitempty" yaml:"level,omitempty"`
	Format *string `toml:"format,omitempty" yaml:"format,omitempty"`
}

type persistedUI struct {
	Accent    *string `toml:"accent,omitempty" yaml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty" yaml:"code_theme,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func persisted(cfg *Config) persistedConfig {
	var out persistedConfig

	app := persistedApp{
		Name:   nonEmptyPtr(cfg.App.Name),
		Header: nonEmptyPtr(cfg.App.Header),
		Footer: nonEmptyPtr(cfg.App.Footer),
	}
	if cfg.App.Markdown {
		markdown := true
		app.Markdown = &markdown
	}
	if app != (persistedApp{}) {
		out.App = &app
	}

	log := persistedLog{
		Level:  nonEmptyPtr(cfg.Log.Level),
		Format: nonEmptyPtr(cfg.Log.Format),
	}
	if log != (persistedLog{}) {
		out.Log = &log
	}

	ui := persistedUI{
		Accent:    nonEmptyPtr(cfg.UI.Accent),
		CodeTheme: nonEmptyPtr(cfg.UI.CodeTheme),
	}
	if ui != (persistedUI{}) {
		out.UI = &ui
	}
	return out
}

// SaveTo writes the config to a specific path atomically, as YAML when the
// path ends in .yaml or .yml and as TOML otherwise. An existing file keeps
// its permissions.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	out := persisted(cfg)

	var buf bytes.Buffer
	if isYAML(path) {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	} else if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

const defaultConfig = `# paramz configuration

[app]
# Application name shown in the usage line of generated help.
name = "paramz"
# Text printed above and below the option list.
# header = "Greets the world."
# footer = "Report issues at https://github.com/aidanlsb/paramz"
#
# Render header and footer as markdown (styled on terminals,
# flattened to plain text otherwise).
# markdown = false

[log]
# debug | info | warn | error
level = "warn"
# text | json
format = "text"

# Optional UI accent color for help output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

// CreateDefaultAt creates a default config file at path if it doesn't
// exist. It reports whether a file was written.
func CreateDefaultAt(path string) (string, bool, error) {
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("failed to check config file: %w", err)
	}

	if err := atomicfile.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}
