package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveStatePath(t *testing.T) {
	configPath := filepath.Join("/home", "me", ".config", "didact", "config.toml")
	configDir := filepath.Dir(configPath)

	tests := []struct {
		name     string
		explicit string
		cfg      *Config
		want     string
	}{
		{name: "explicit wins", explicit: "/tmp/s.toml", cfg: &Config{StateFile: "other.toml"}, want: "/tmp/s.toml"},
		{name: "relative config value", cfg: &Config{StateFile: "panels.toml"}, want: filepath.Join(configDir, "panels.toml")},
		{name: "absolute config value", cfg: &Config{StateFile: "/var/didact/state.toml"}, want: filepath.Clean("/var/didact/state.toml")},
		{name: "sibling default", cfg: &Config{}, want: filepath.Join(configDir, "state.toml")},
		{name: "nil config", want: filepath.Join(configDir, "state.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStatePath(tt.explicit, configPath, tt.cfg); got != tt.want {
				t.Fatalf("ResolveStatePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	empty, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if empty.Version != StateVersion || len(empty.Panels) != 0 {
		t.Fatalf("unexpected empty state %#v", empty)
	}

	state := &State{
		ActivePanel: "p1",
		Panels: []PanelState{{
			ID:           "p1",
			SourceKind:   "file",
			Location:     "/t/intro.didact.md",
			Title:        "Intro",
			Markdown:     "# Intro\n",
			HTML:         "<h1 id=\"intro\">Intro</h1>\n",
			Requirements: map[string]bool{"maven-status": true},
		}},
	}
	if err := SaveState(path, state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if loaded.ActivePanel != "p1" || len(loaded.Panels) != 1 {
		t.Fatalf("unexpected state %#v", loaded)
	}
	got := loaded.Panels[0]
	if got.HTML != state.Panels[0].HTML || got.Title != "Intro" || !got.Requirements["maven-status"] {
		t.Fatalf("panel not preserved: %#v", got)
	}
}

func TestLoadStateRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := SaveState(path, &State{}); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}
	if err := writeRaw(path, "version = 99\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadState(path); err == nil {
		t.Fatalf("expected version error")
	}
}

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
