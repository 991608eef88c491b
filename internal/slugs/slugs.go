// Package slugs builds stable identifiers for registered tutorials.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

var tutorialSuffixes = []string{".didact.md", ".didact.adoc", ".md", ".adoc"}

// ComponentSlug converts a tutorial name or category to a URL-safe slug.
// Tutorial file suffixes are dropped first.
func ComponentSlug(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, suffix := range tutorialSuffixes {
		if strings.HasSuffix(lower, suffix) {
			s = s[:len(s)-len(suffix)]
			break
		}
	}
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	}
	return slugged
}

// TutorialID identifies a registered tutorial: "<category>/<name>".
func TutorialID(category, name string) string {
	return ComponentSlug(category) + "/" + ComponentSlug(name)
}
