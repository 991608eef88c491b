package host

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/ui"
)

// ErrNotInteractive is returned when input is required but stdin is not a terminal.
var ErrNotInteractive = errors.New("input is not a terminal")

// TerminalPrompter reads answers line by line.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer

	// RequireTTY refuses to prompt when In is a file that is not a terminal.
	// Without it, piped input is read silently with no prompt text.
	RequireTTY bool

	once    sync.Once
	reader  *bufio.Reader
	pending chan lineResult
	mu      sync.Mutex
}

type lineResult struct {
	line string
	err  error
}

// Prompt writes the prompt and waits for one line. End of input and context
// cancellation both cancel the prompt.
func (p *TerminalPrompter) Prompt(ctx context.Context, req protocol.InputRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	interactive := p.interactive()
	if p.RequireTTY && !interactive {
		return "", fmt.Errorf("%w: %w", protocol.ErrInputCancelled, ErrNotInteractive)
	}
	p.once.Do(func() {
		p.reader = bufio.NewReader(p.In)
	})

	if p.Out != nil && interactive {
		fmt.Fprintf(p.Out, "%s %s ", req.Prompt, ui.Hint("("+req.Placeholder+"):"))
	}

	// A read abandoned by a cancelled prompt stays pending and its line
	// answers the next prompt.
	if p.pending == nil {
		p.pending = make(chan lineResult, 1)
		go func(ch chan<- lineResult) {
			line, err := p.reader.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}(p.pending)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", protocol.ErrInputCancelled, ctx.Err())
	case res := <-p.pending:
		p.pending = nil
		answer := strings.TrimRight(res.line, "\r\n")
		switch {
		case res.err == nil:
			return answer, nil
		case errors.Is(res.err, io.EOF) && answer != "":
			return answer, nil
		case errors.Is(res.err, io.EOF):
			return "", protocol.ErrInputCancelled
		default:
			return "", fmt.Errorf("%w: %v", protocol.ErrInputCancelled, res.err)
		}
	}
}

// interactive reports whether In is a terminal. Readers that are not files
// count as interactive.
func (p *TerminalPrompter) interactive() bool {
	f, ok := p.In.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
