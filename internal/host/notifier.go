package host

import (
	"fmt"
	"io"
	"sync"

	"github.com/aidanlsb/didact/internal/ui"
)

// TerminalNotifier prints notifications: info to Out, errors to Err.
type TerminalNotifier struct {
	Out io.Writer
	Err io.Writer

	mu sync.Mutex
}

// Info shows an informational message.
func (n *TerminalNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Out != nil {
		fmt.Fprintln(n.Out, ui.Info(msg))
	}
}

// Error shows an error message.
func (n *TerminalNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	w := n.Err
	if w == nil {
		w = n.Out
	}
	if w != nil {
		fmt.Fprintln(w, ui.Error(msg))
	}
}

// Notification is one recorded message.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// CollectingNotifier records notifications instead of printing them, for
// structured output.
type CollectingNotifier struct {
	mu    sync.Mutex
	items []Notification
}

// Info records an informational message.
func (c *CollectingNotifier) Info(msg string) { c.add("info", msg) }

// Error records an error message.
func (c *CollectingNotifier) Error(msg string) { c.add("error", msg) }

func (c *CollectingNotifier) add(level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, Notification{Level: level, Message: msg})
}

// Notifications returns a copy of the recorded messages in order.
func (c *CollectingNotifier) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.items...)
}
