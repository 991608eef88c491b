package render

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aidanlsb/didact/internal/protocol"
)

var linkPrefix = protocol.Scheme + "://"

// ExtractDidactLinks returns the destinations of markdown links and autolinks that
// use the didact scheme, in document order.
func ExtractDidactLinks(content string) []string {
	var links []string

	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		var dest string
		switch link := n.(type) {
		case *ast.Link:
			dest = string(link.Destination)
		case *ast.AutoLink:
			dest = string(link.URL(source))
		default:
			return ast.WalkContinue, nil
		}
		if strings.HasPrefix(dest, linkPrefix) {
			links = append(links, dest)
		}
		return ast.WalkContinue, nil
	})

	return links
}
