// Package shellquote quotes didact links for pasting into a POSIX shell.
package shellquote

import "strings"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteIfNeeded quotes s when a shell would split or expand it. Didact links
// nearly always need quoting: "&" and "$$" are shell syntax.
func QuoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n&$?*;|<>()[]{}#!~`\"'\\") {
		return Quote(s)
	}
	return s
}
