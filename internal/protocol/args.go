package protocol

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ArgKind identifies which variant an Arg is.
type ArgKind int

const (
	KindPath ArgKind = iota + 1
	KindText
	KindNumber
)

func (k ArgKind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Arg is one positional argument passed to a dispatched command.
// It is one of PathArg, TextArg or NumberArg.
type Arg interface {
	Kind() ArgKind
	String() string
}

// PathArg is a resolved filesystem path.
type PathArg struct {
	Path string
}

func (PathArg) Kind() ArgKind { return KindPath }

// String renders the path as a file URI.
func (a PathArg) String() string {
	p := filepath.ToSlash(a.Path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// TextArg is a literal string, either taken from the link or typed in by the user.
type TextArg struct {
	Text string
}

func (TextArg) Kind() ArgKind { return KindText }

func (a TextArg) String() string { return a.Text }

// NumberArg is a numeric argument. Value may be NaN.
type NumberArg struct {
	Value float64
}

func (NumberArg) Kind() ArgKind { return KindNumber }

func (a NumberArg) String() string { return FormatNumber(a.Value) }

// ArgList is the ordered argument list for one command invocation.
type ArgList []Arg

// String joins the arguments with commas.
func (l ArgList) String() string {
	parts := make([]string, len(l))
	for i, arg := range l {
		parts[i] = arg.String()
	}
	return strings.Join(parts, ",")
}

// Strings returns the string form of every argument.
func (l ArgList) Strings() []string {
	out := make([]string, len(l))
	for i, arg := range l {
		out[i] = arg.String()
	}
	return out
}
