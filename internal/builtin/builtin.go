// Package builtin implements the commands a tutorial can invoke through didact
// links: opening tutorials and files, clipboard helpers, and requirement checks
// that record their status on the active tutorial panel.
package builtin

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/ui"
)

// Deps are the collaborators the built-in commands use.
type Deps struct {
	Panels     *panel.Manager
	Workspace  protocol.Workspace
	Extensions protocol.ExtensionRegistry
	Out        io.Writer

	// Clipboard defaults to the system clipboard.
	Clipboard func(text string) error
	// Shell runs a command line and returns its combined output. Defaults to sh -c
	// (cmd /C on Windows).
	Shell func(ctx context.Context, command string) ([]byte, error)
	// RunLink processes a didact link. validateAllRequirements needs it.
	RunLink func(ctx context.Context, link string) error
	// Concurrency bounds parallel requirement checks. Zero means 4.
	Concurrency int

	// Render prints opened tutorials as rendered markdown instead of raw text.
	Render bool
	Width  int

	Log *zap.Logger
}

type handlers struct {
	Deps
}

// Register adds every built-in command to h.
func Register(h *commands.Handlers, deps Deps) {
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}
	if deps.Shell == nil {
		deps.Shell = runShell
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	// Requirement checks run concurrently and share Out.
	deps.Out = &lockedWriter{w: deps.Out}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Concurrency <= 0 {
		deps.Concurrency = 4
	}
	b := &handlers{Deps: deps}

	h.Register("didact.startDidact", b.startDidact)
	h.Register("didact.openFile", b.openFile)
	h.Register("didact.copyToClipboard", b.copyToClipboard)
	h.Register("didact.copyFileTextToClipboard", b.copyFileTextToClipboard)
	h.Register("didact.cliCommandSuccessful", b.cliCommandSuccessful)
	h.Register("didact.requirementCheck", b.requirementCheck)
	h.Register("didact.extensionRequirementCheck", b.extensionRequirementCheck)
	h.Register("didact.workspaceFolderExistsCheck", b.workspaceFolderExistsCheck)
	h.Register("didact.validateAllRequirements", b.validateAllRequirements)
	h.Register("didact.echo", b.echo)
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func runShell(ctx context.Context, command string) ([]byte, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}
	return cmd.CombinedOutput()
}

func (b *handlers) startDidact(ctx context.Context, args protocol.ArgList) error {
	if b.Panels == nil {
		return fmt.Errorf("tutorial panels are not available")
	}
	ref, err := commands.PathArg(args, 0)
	if err != nil {
		return err
	}
	p, err := b.Panels.Open(ctx, ref)
	if err != nil {
		return err
	}
	return b.show(p)
}

// show prints the tutorial of p.
func (b *handlers) show(p *panel.Panel) error {
	if !b.Render {
		fmt.Fprintln(b.Out, ui.Header(p.Title()))
		return nil
	}
	rendered, err := ui.RenderMarkdown(p.Markdown(), b.Width)
	if err != nil {
		return fmt.Errorf("render tutorial: %w", err)
	}
	_, err = io.WriteString(b.Out, rendered)
	return err
}

func (b *handlers) openFile(_ context.Context, args protocol.ArgList) error {
	path, err := commands.PathArg(args, 0)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(b.Out, ui.FilePath(path))
	_, err = b.Out.Write(data)
	return err
}

func (b *handlers) copyToClipboard(_ context.Context, args protocol.ArgList) error {
	text, err := commands.StringArg(args, 0)
	if err != nil {
		return err
	}
	return b.Clipboard(text)
}

func (b *handlers) copyFileTextToClipboard(_ context.Context, args protocol.ArgList) error {
	path, err := commands.PathArg(args, 0)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return b.Clipboard(string(data))
}

func (b *handlers) echo(_ context.Context, args protocol.ArgList) error {
	for _, arg := range args {
		fmt.Fprintln(b.Out, arg.String())
	}
	return nil
}
