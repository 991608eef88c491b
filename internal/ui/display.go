package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback width when the output is not a terminal.
const DefaultTermWidth = 100

// DisplayContext describes where tutorial output is written.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext inspects w. Only an *os.File attached to a terminal
// reports its real width.
func NewDisplayContext(w io.Writer) *DisplayContext {
	ctx := &DisplayContext{TermWidth: DefaultTermWidth}
	f, ok := w.(*os.File)
	if !ok {
		return ctx
	}
	fd := f.Fd()
	if !term.IsTerminal(fd) {
		return ctx
	}
	ctx.IsTTY = true
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		ctx.TermWidth = width
	}
	return ctx
}

// MarkdownWidth returns the word-wrap width for rendered tutorials.
func (d *DisplayContext) MarkdownWidth() int {
	width := d.TermWidth - 2*MarkdownRenderMargin
	if width < 20 {
		return 20
	}
	return width
}
