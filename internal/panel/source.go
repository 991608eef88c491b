package panel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// SourceKind says where a tutorial is loaded from.
type SourceKind string

const (
	SourceFile   SourceKind = "file"
	SourceRemote SourceKind = "remote"
)

var (
	// ErrEmptySource is returned for an empty tutorial reference.
	ErrEmptySource = errors.New("empty tutorial reference")
	// ErrUnsupportedSource is returned for references that name no known source.
	ErrUnsupportedSource = errors.New("unsupported tutorial reference")
)

// Source is a resolved tutorial location. Two panels with equal sources show
// the same tutorial.
type Source struct {
	Kind     SourceKind
	Location string
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Location
}

// Name returns the last element of the location, used as the fallback title.
func (s Source) Name() string {
	if s.Kind == SourceRemote {
		if u, err := url.Parse(s.Location); err == nil && u.Path != "" {
			return path.Base(u.Path)
		}
		return s.Location
	}
	return filepath.Base(s.Location)
}

// ParseSource resolves a tutorial reference. Accepted forms:
//
//	/abs/or/relative/path.didact.md
//	file:///abs/path.didact.md
//	https://host/path.didact.md
//	<anything>?extension=<path relative to extensionBase>
//	<anything>?https=<host/path>   (also ?http=)
func ParseSource(ref, extensionBase string) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Source{}, ErrEmptySource
	}

	lower := strings.ToLower(ref)
	switch {
	case strings.HasPrefix(lower, "file://"):
		u, err := url.Parse(ref)
		if err != nil {
			return Source{}, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
		}
		return Source{Kind: SourceFile, Location: filepath.Clean(filepath.FromSlash(u.Path))}, nil
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		return Source{Kind: SourceRemote, Location: ref}, nil
	}

	if _, rawQuery, ok := strings.Cut(ref, "?"); ok {
		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return Source{}, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
		}
		if rel := values.Get("extension"); rel != "" {
			if extensionBase == "" {
				return Source{}, fmt.Errorf("%w: %s needs an extension path", ErrUnsupportedSource, ref)
			}
			return Source{Kind: SourceFile, Location: filepath.Join(extensionBase, filepath.FromSlash(rel))}, nil
		}
		for _, scheme := range []string{"https", "http"} {
			if target := values.Get(scheme); target != "" {
				if !strings.Contains(target, "://") {
					target = scheme + "://" + target
				}
				return Source{Kind: SourceRemote, Location: target}, nil
			}
		}
		return Source{}, fmt.Errorf("%w: %s", ErrUnsupportedSource, ref)
	}

	abs, err := filepath.Abs(ref)
	if err != nil {
		return Source{}, fmt.Errorf("resolve %s: %w", ref, err)
	}
	return Source{Kind: SourceFile, Location: abs}, nil
}

// Loader reads tutorial content.
type Loader struct {
	Client *http.Client
}

const maxRemoteTutorialBytes = 8 << 20

// Load returns the content of src.
func (l *Loader) Load(ctx context.Context, src Source) (string, error) {
	switch src.Kind {
	case SourceFile:
		data, err := os.ReadFile(src.Location)
		if err != nil {
			return "", fmt.Errorf("read tutorial: %w", err)
		}
		return string(data), nil
	case SourceRemote:
		return l.fetch(ctx, src.Location)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, src)
	}
}

func (l *Loader) fetch(ctx context.Context, target string) (string, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("fetch tutorial: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch tutorial: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch tutorial %s: %s", target, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteTutorialBytes))
	if err != nil {
		return "", fmt.Errorf("fetch tutorial: %w", err)
	}
	return string(data), nil
}
