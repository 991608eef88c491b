// Package host provides the terminal implementations of the capabilities a
// didact link needs: workspace folders, installed extensions, a line prompter
// and a notification channel.
package host

import (
	"sort"
	"strings"
	"sync"

	"github.com/aidanlsb/didact/internal/protocol"
)

// Workspace is the set of open workspace folders.
type Workspace struct {
	Folders []string
}

// Root returns the first workspace folder.
func (w *Workspace) Root() (string, bool) {
	if w == nil || len(w.Folders) == 0 || w.Folders[0] == "" {
		return "", false
	}
	return w.Folders[0], true
}

// Extensions is a registry of installed extensions. Identifiers are matched
// case-insensitively. It is safe for concurrent use.
type Extensions struct {
	mu   sync.RWMutex
	byID map[string]protocol.Extension
}

// NewExtensions creates a registry from an id -> install directory map.
func NewExtensions(dirs map[string]string) *Extensions {
	e := &Extensions{byID: make(map[string]protocol.Extension, len(dirs))}
	for id, dir := range dirs {
		e.Register(id, dir)
	}
	return e
}

// Register adds or replaces an extension.
func (e *Extensions) Register(id, dir string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.byID[strings.ToLower(id)] = protocol.Extension{ID: id, Dir: dir}
}

// Lookup returns the extension registered under id.
func (e *Extensions) Lookup(id string) (protocol.Extension, bool) {
	if e == nil {
		return protocol.Extension{}, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	ext, ok := e.byID[strings.ToLower(strings.TrimSpace(id))]
	return ext, ok
}

// IDs returns the registered identifiers, sorted.
func (e *Extensions) IDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.byID))
	for _, ext := range e.byID {
		ids = append(ids, ext.ID)
	}
	sort.Strings(ids)
	return ids
}
