package protocol

import "context"

// Workspace exposes the folders open in the host.
type Workspace interface {
	// Root returns the first workspace folder, if any.
	Root() (string, bool)
}

// Extension is an installed extension known to the host.
type Extension struct {
	ID  string
	Dir string
}

// ExtensionRegistry looks up installed extensions by identifier.
type ExtensionRegistry interface {
	Lookup(id string) (Extension, bool)
}

// InputRequest describes one line of text to collect from the user.
type InputRequest struct {
	Prompt      string
	Placeholder string
}

// Prompter collects one line of input. Implementations return ErrInputCancelled
// (or any other error) when the user backs out.
type Prompter interface {
	Prompt(ctx context.Context, req InputRequest) (string, error)
}

// CommandExecutor runs a registered command with positional arguments.
type CommandExecutor interface {
	Execute(ctx context.Context, id string, args ArgList) error
}

// Notifier shows messages to the user. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Info(string)  {}
func (nopNotifier) Error(string) {}
