package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/didact/internal/atomicfile"
)

type persistedConfig struct {
	DefaultTutorial             *string              `toml:"default_tutorial,omitempty"`
	DisableDefaultNotifications *bool                `toml:"disable_default_notifications,omitempty"`
	Workspace                   []string             `toml:"workspace,omitempty"`
	ExtensionPath               *string              `toml:"extension_path,omitempty"`
	DataDir                     *string              `toml:"data_dir,omitempty"`
	StateFile                   *string              `toml:"state_file,omitempty"`
	LogLevel                    *string              `toml:"log_level,omitempty"`
	Extensions                  map[string]string    `toml:"extensions,omitempty"`
	UI                          *persistedUISettings `toml:"ui,omitempty"`
}

type persistedUISettings struct {
	Accent    *string `toml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the config to a specific path atomically. Unset values are omitted.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		DefaultTutorial: nonEmptyPtr(cfg.DefaultTutorial),
		ExtensionPath:   nonEmptyPtr(cfg.ExtensionPath),
		DataDir:         nonEmptyPtr(cfg.DataDir),
		StateFile:       nonEmptyPtr(cfg.StateFile),
		LogLevel:        nonEmptyPtr(cfg.LogLevel),
	}
	if cfg.DisableDefaultNotifications {
		disabled := true
		out.DisableDefaultNotifications = &disabled
	}
	if len(cfg.Workspace) > 0 {
		out.Workspace = append([]string(nil), cfg.Workspace...)
	}
	if len(cfg.Extensions) > 0 {
		out.Extensions = cfg.Extensions
	}

	accent := nonEmptyPtr(cfg.UI.Accent)
	codeTheme := nonEmptyPtr(cfg.UI.CodeTheme)
	if accent != nil || codeTheme != nil {
		out.UI = &persistedUISettings{
			Accent:    accent,
			CodeTheme: codeTheme,
		}
	}

	err := atomicfile.Write(path, 0o644, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(out)
	})
	if err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// ExtensionIDs returns the configured extension identifiers, sorted.
func (c *Config) ExtensionIDs() []string {
	ids := make([]string, 0, len(c.Extensions))
	for id := range c.Extensions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
