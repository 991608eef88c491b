// Package config handles didact configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the didact configuration.
type Config struct {
	// DefaultTutorial is opened by "open" without arguments and by a panel hard reset.
	DefaultTutorial string `toml:"default_tutorial"`

	// DisableDefaultNotifications suppresses the default success message after a
	// link's command runs. Completion overrides and errors are still shown.
	DisableDefaultNotifications bool `toml:"disable_default_notifications"`

	// Workspace lists the open workspace folders. The first is the project root.
	Workspace []string `toml:"workspace"`

	// ExtensionPath is the install directory of the extension that owns the links
	// being run. It anchors srcFilePath parameters.
	ExtensionPath string `toml:"extension_path"`

	// DataDir holds the tutorial registry database.
	DataDir string `toml:"data_dir"`

	// StateFile overrides the panel state location.
	StateFile string `toml:"state_file"`

	// LogLevel sets the diagnostic channel level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// Extensions maps installed extension identifiers to their directories.
	Extensions map[string]string `toml:"extensions"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path.
// Returns a default config if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	config.normalize(filepath.Dir(path))
	return &config, nil
}

// normalize trims values and anchors relative paths at the config directory.
func (c *Config) normalize(dir string) {
	c.DefaultTutorial = strings.TrimSpace(c.DefaultTutorial)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.ExtensionPath = anchor(dir, c.ExtensionPath)
	c.DataDir = anchor(dir, c.DataDir)

	folders := c.Workspace[:0]
	for _, folder := range c.Workspace {
		if folder = anchor(dir, folder); folder != "" {
			folders = append(folders, folder)
		}
	}
	c.Workspace = folders

	for id, extDir := range c.Extensions {
		c.Extensions[id] = anchor(dir, extDir)
	}
}

func anchor(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, filepath.FromSlash(p))
}

// DefaultPath returns the default config file path.
// Checks ~/.config/didact/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "didact", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "didact", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// ResolveConfigPath resolves the effective config path from an optional override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// ResolveDataDir returns the directory for the tutorial registry. It defaults to
// the config directory.
func ResolveDataDir(configPath string, cfg *Config) string {
	if cfg != nil && cfg.DataDir != "" {
		return cfg.DataDir
	}
	return filepath.Dir(ResolveConfigPath(configPath))
}

const defaultConfig = `# Didact Configuration

# Tutorial opened by "didact open" without arguments and by a panel reset.
# default_tutorial = "/path/to/getting-started.didact.md"

# Hide the "Didact just executed ..." message after each link.
# disable_default_notifications = false

# Workspace folders. projectFilePath links resolve against the first one.
# workspace = ["/path/to/project"]

# Install directory used for srcFilePath links.
# extension_path = "/path/to/extension"

# log_level = "warn"

# Installed extensions for extFilePath links and extension requirement checks.
# [extensions]
# "redhat.vscode-didact" = "/path/to/vscode-didact"

# [ui]
# accent = "39"
# code_theme = "monokai"
`

// CreateDefault writes a commented default config file at path unless one exists.
func CreateDefault(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
