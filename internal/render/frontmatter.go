package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the optional YAML header of a tutorial.
type Frontmatter struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// FrontmatterBounds returns the index of the closing '---' line.
// It only detects frontmatter when the first line is '---'.
// If frontmatter is present but unclosed, endLine is -1.
func FrontmatterBounds(lines []string) (endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i, true
		}
	}
	return -1, true
}

// SplitFrontmatter separates front matter from the document body. Content
// without closed front matter is returned unchanged with a nil Frontmatter.
func SplitFrontmatter(content string) (*Frontmatter, string, error) {
	lines := strings.Split(content, "\n")
	endLine, ok := FrontmatterBounds(lines)
	if !ok || endLine == -1 {
		return nil, content, nil
	}

	var fm Frontmatter
	raw := strings.Join(lines[1:endLine], "\n")
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter as YAML: %w", err)
	}
	return &fm, strings.Join(lines[endLine+1:], "\n"), nil
}

// ParseFrontmatter returns the front matter of content, or nil when absent.
func ParseFrontmatter(content string) (*Frontmatter, error) {
	fm, _, err := SplitFrontmatter(content)
	return fm, err
}
