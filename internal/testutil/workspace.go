// Package testutil provides reusable test helpers: a temporary workspace
// builder, recording fakes for the host capabilities, and a parser for the
// CLI's JSON envelope.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestWorkspace is a temporary directory holding tutorials and project files.
type TestWorkspace struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestWorkspace creates a workspace builder.
// Call Build() to create the actual directory.
func NewTestWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()
	return &TestWorkspace{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file relative to the workspace root.
func (w *TestWorkspace) WithFile(path, content string) *TestWorkspace {
	w.files[path] = content
	return w
}

// Build creates the directory and all configured files.
func (w *TestWorkspace) Build() *TestWorkspace {
	w.t.Helper()
	w.Path = w.t.TempDir()
	for path, content := range w.files {
		w.WriteFile(path, content)
	}
	return w
}

// Abs returns the absolute path of relPath inside the workspace.
func (w *TestWorkspace) Abs(relPath string) string {
	return filepath.Join(w.Path, filepath.FromSlash(relPath))
}

// WriteFile writes a file, creating directories as needed.
func (w *TestWorkspace) WriteFile(relPath, content string) string {
	w.t.Helper()
	fullPath := w.Abs(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		w.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
	return fullPath
}

// ReadFile reads a file from the workspace.
func (w *TestWorkspace) ReadFile(relPath string) string {
	w.t.Helper()
	content, err := os.ReadFile(w.Abs(relPath))
	if err != nil {
		w.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// AssertFileContains fails the test if the file does not contain substr.
func (w *TestWorkspace) AssertFileContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// SimpleTutorial returns a small tutorial with one requirement link per
// requirement command.
func SimpleTutorial() string {
	return `# Simple Example

Check [the shell](didact://?commandId=didact.cliCommandSuccessful&text=shell-status$$true)
and [the output](didact://?commandId=didact.requirementCheck&text=echo-status$$echo%20hello$$hello).
Is [the workspace](didact://?commandId=didact.workspaceFolderExistsCheck&text=workspace-status) open?

[Copy](didact://?commandId=didact.copyToClipboard&text=npm%20install) a command.
`
}
