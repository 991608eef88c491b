// Package protocol interprets didact:// links.
//
// A link names a command to run plus the arguments to run it with. Arguments are
// resolved from query parameters (project, extension and cross-extension file paths,
// literal text, text typed in by the user, numbers), assembled into an ordered
// argument list, and handed to a command executor. Success and failure are reported
// through a notifier.
package protocol

import (
	"net/url"
	"strings"
)

// Query parameter names understood by the link protocol.
const (
	KeyCommandID       = "commandId"
	KeyProjectFilePath = "projectFilePath"
	KeySrcFilePath     = "srcFilePath"
	KeyExtFilePath     = "extFilePath"
	KeyCompletion      = "completion"
	KeyError           = "error"
	KeyText            = "text"
	KeyUser            = "user"
	KeyNumber          = "number"
)

// Scheme is the URI scheme of didact links.
const Scheme = "didact"

// Query holds the raw, still-encoded query parameters of a link. Repeated keys keep
// every occurrence in the order they appeared.
type Query map[string][]string

// ParseQuery splits the query part of rawLink. Everything after the first '?' and
// before an optional '#' is treated as the query string. Parsing never fails.
func ParseQuery(rawLink string) Query {
	q := Query{}

	rest := rawLink
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}
	_, rawQuery, ok := strings.Cut(rest, "?")
	if !ok {
		return q
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = decodeComponent(key)
		q[key] = append(q[key], value)
	}
	return q
}

// Value returns the decoded value for key. When the key occurs more than once the
// first occurrence wins. A value with a malformed escape is returned undecoded.
func (q Query) Value(key string) (string, bool) {
	values, ok := q[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return decodeComponent(values[0]), true
}

// nonEmpty is Value with empty values treated as missing.
func (q Query) nonEmpty(key string) (string, bool) {
	v, ok := q.Value(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Has reports whether key carries a non-empty value.
func (q Query) Has(key string) bool {
	_, ok := q.nonEmpty(key)
	return ok
}

func decodeComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
