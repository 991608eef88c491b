package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aidanlsb/didact/internal/protocol"
)

// ErrCommandNotFound is returned when executing an unregistered command ID.
var ErrCommandNotFound = errors.New("command not found")

// Handler executes a command with its resolved link arguments.
type Handler func(ctx context.Context, args protocol.ArgList) error

// Handlers maps command IDs to their handlers. It is safe for concurrent use.
type Handlers struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewHandlers creates an empty handler registry.
func NewHandlers() *Handlers {
	return &Handlers{handlers: make(map[string]Handler)}
}

// Register registers a handler for a command, replacing any previous one.
func (h *Handlers) Register(id string, handler Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[id] = handler
}

// Lookup returns the handler registered for id.
func (h *Handlers) Lookup(id string) (Handler, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	handler, ok := h.handlers[id]
	return handler, ok
}

// IDs returns the registered command IDs, sorted.
func (h *Handlers) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.handlers))
	for id := range h.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Execute runs the handler for id. A panicking handler is reported as an error.
func (h *Handlers) Execute(ctx context.Context, id string, args protocol.ArgList) (err error) {
	handler, ok := h.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, id)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command %s panicked: %v", id, r)
		}
	}()
	return handler(ctx, args)
}

// StringArg returns the string form of argument i.
func StringArg(args protocol.ArgList, i int) (string, error) {
	if i < 0 || i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i+1)
	}
	switch a := args[i].(type) {
	case protocol.TextArg:
		return a.Text, nil
	case protocol.PathArg:
		return a.Path, nil
	default:
		return a.String(), nil
	}
}

// PathArg returns argument i as a filesystem path. Text arguments are taken as
// paths verbatim.
func PathArg(args protocol.ArgList, i int) (string, error) {
	if i < 0 || i >= len(args) {
		return "", fmt.Errorf("missing path argument %d", i+1)
	}
	switch a := args[i].(type) {
	case protocol.PathArg:
		return a.Path, nil
	case protocol.TextArg:
		if a.Text == "" {
			return "", fmt.Errorf("argument %d is an empty path", i+1)
		}
		return a.Text, nil
	default:
		return "", fmt.Errorf("argument %d is a %s, not a path", i+1, a.Kind())
	}
}
