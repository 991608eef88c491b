// Package render turns tutorial documents into HTML and extracts the pieces the
// panel manager needs: headings, titles and embedded didact links.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrUnsupportedFormat is returned for tutorial formats that cannot be rendered.
var ErrUnsupportedFormat = errors.New("unsupported tutorial format")

// Renderer converts tutorial markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with GFM tables, strikethrough, task lists and
// linkify, typographic replacements, {attribute} syntax and raw HTML passthrough.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithAttribute(),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// RenderToHTML renders markdown content to an HTML fragment.
func (r *Renderer) RenderToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderFile renders content according to the extension of path. Front matter is
// stripped before rendering.
func (r *Renderer) RenderFile(path string, content string) (string, error) {
	switch Format(path) {
	case FormatMarkdown:
		_, body, err := SplitFrontmatter(content)
		if err != nil {
			return "", err
		}
		return r.RenderToHTML(body)
	case FormatAsciiDoc:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	default:
		return r.RenderToHTML(content)
	}
}

// DocumentFormat identifies a tutorial markup language.
type DocumentFormat int

const (
	FormatUnknown DocumentFormat = iota
	FormatMarkdown
	FormatAsciiDoc
)

// Format classifies path by extension. Tutorials conventionally end in
// ".didact.md" or ".didact.adoc".
func Format(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".adoc", ".asciidoc":
		return FormatAsciiDoc
	default:
		return FormatUnknown
	}
}
