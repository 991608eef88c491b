package protocol

import (
	"path/filepath"
	"strings"
)

// Delimiter separates the pieces of a text or user parameter.
const Delimiter = "$$"

// ResolveProjectPath joins rel onto the first workspace folder.
// It is not resolvable when no workspace is open.
func ResolveProjectPath(ws Workspace, rel string) (PathArg, bool) {
	if ws == nil {
		return PathArg{}, false
	}
	root, ok := ws.Root()
	if !ok || root == "" {
		return PathArg{}, false
	}
	return PathArg{Path: filepath.Join(root, rel)}, true
}

// ResolveSourcePath joins rel onto the calling extension's install directory.
func ResolveSourcePath(base, rel string) (PathArg, bool) {
	if base == "" {
		return PathArg{}, false
	}
	return PathArg{Path: filepath.Join(base, rel)}, true
}

// ResolveExtensionPath resolves "<extensionId>/<relative/path>". Only the first '/'
// separates the identifier; the rest is the path inside that extension.
func ResolveExtensionPath(reg ExtensionRegistry, spec string) (PathArg, bool) {
	if reg == nil || spec == "" {
		return PathArg{}, false
	}
	id, rel, _ := strings.Cut(spec, "/")
	if id == "" {
		return PathArg{}, false
	}
	ext, ok := reg.Lookup(id)
	if !ok {
		return PathArg{}, false
	}
	return PathArg{Path: filepath.Join(ext.Dir, rel)}, true
}

// SplitDelimited splits text on "$$". Text without a delimiter yields one element.
func SplitDelimited(text string) []string {
	return strings.Split(text, Delimiter)
}
