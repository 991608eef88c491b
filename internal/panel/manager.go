package panel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aidanlsb/didact/internal/config"
	"github.com/aidanlsb/didact/internal/render"
)

var (
	// ErrNoActivePanel is returned when an operation needs an active panel.
	ErrNoActivePanel = errors.New("no active tutorial panel")
	// ErrPanelNotFound is returned for an unknown panel id.
	ErrPanelNotFound = errors.New("panel not found")
	// ErrNoDefaultTutorial is returned by HardReset when no default is configured.
	ErrNoDefaultTutorial = errors.New("no default tutorial configured")
)

// Options configures a Manager.
type Options struct {
	// ExtensionBase anchors "?extension=" references.
	ExtensionBase string
	// DefaultTutorial is the reference HardReset returns to.
	DefaultTutorial string
	Client          *http.Client
	Log             *zap.Logger
}

// Manager owns the open panels. It is safe for concurrent use.
type Manager struct {
	opts     Options
	renderer *render.Renderer
	loader   *Loader

	mu       sync.Mutex
	panels   []*Panel
	activeID string
}

// NewManager creates a manager with no open panels.
func NewManager(opts Options) *Manager {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Manager{
		opts:     opts,
		renderer: render.NewRenderer(),
		loader:   &Loader{Client: opts.Client},
	}
}

type document struct {
	title    string
	markdown string
	html     string
}

// Open shows the tutorial named by ref. If it is already open, its panel is
// activated and returned instead of opening a second copy.
func (m *Manager) Open(ctx context.Context, ref string) (*Panel, error) {
	src, err := ParseSource(ref, m.opts.ExtensionBase)
	if err != nil {
		return nil, err
	}

	if p := m.activateBySource(src); p != nil {
		m.opts.Log.Debug("tutorial already open", zap.String("panel", p.id), zap.Stringer("source", src))
		return p, nil
	}

	doc, err := m.load(ctx, src)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another caller may have opened the same tutorial while this one loaded.
	for _, p := range m.panels {
		if p.Source() == src {
			m.activeID = p.id
			return p, nil
		}
	}
	p := &Panel{id: uuid.NewString()}
	p.reset(src, doc)
	m.panels = append(m.panels, p)
	m.activeID = p.id
	m.opts.Log.Info("opened tutorial", zap.String("panel", p.id), zap.String("title", doc.title), zap.Stringer("source", src))
	return p, nil
}

func (m *Manager) activateBySource(src Source) *Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.panels {
		if p.Source() == src {
			m.activeID = p.id
			return p
		}
	}
	return nil
}

func (m *Manager) load(ctx context.Context, src Source) (document, error) {
	content, err := m.loader.Load(ctx, src)
	if err != nil {
		return document{}, err
	}
	html, err := m.renderer.RenderFile(src.Name(), content)
	if err != nil {
		return document{}, err
	}

	title := render.FirstHeadingText(content)
	if title == "" {
		if fm, err := render.ParseFrontmatter(content); err == nil && fm != nil && fm.Title != "" {
			title = fm.Title
		}
	}
	if title == "" {
		title = src.Name()
	}
	return document{title: title, markdown: content, html: html}, nil
}

// Active returns the active panel, or nil.
func (m *Manager) Active() *Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(m.activeID)
}

// Activate makes the panel with id active.
func (m *Manager) Activate(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.find(id) == nil {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	m.activeID = id
	return nil
}

// Get returns the panel with id.
func (m *Manager) Get(id string) (*Panel, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.find(id)
	return p, p != nil
}

func (m *Manager) find(id string) *Panel {
	if id == "" {
		return nil
	}
	for _, p := range m.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// Count returns the number of open panels.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.panels)
}

// List returns summaries of the open panels in opening order.
func (m *Manager) List() []Summary {
	m.mu.Lock()
	panels := append([]*Panel(nil), m.panels...)
	activeID := m.activeID
	m.mu.Unlock()

	out := make([]Summary, 0, len(panels))
	for _, p := range panels {
		out = append(out, p.summary(p.id == activeID))
	}
	return out
}

// Close removes a panel. Closing the active panel activates the most recently
// opened remaining one.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.panels {
		if p.id != id {
			continue
		}
		m.panels = append(m.panels[:i], m.panels[i+1:]...)
		if m.activeID == id {
			m.activeID = ""
			if n := len(m.panels); n > 0 {
				m.activeID = m.panels[n-1].id
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
}

// CloseAll removes every panel.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panels = nil
	m.activeID = ""
}

// HardReset points the active panel back at the default tutorial, dropping its
// requirement statuses. With no active panel the default is opened.
func (m *Manager) HardReset(ctx context.Context) (*Panel, error) {
	if m.opts.DefaultTutorial == "" {
		return nil, ErrNoDefaultTutorial
	}
	active := m.Active()
	if active == nil {
		return m.Open(ctx, m.opts.DefaultTutorial)
	}

	src, err := ParseSource(m.opts.DefaultTutorial, m.opts.ExtensionBase)
	if err != nil {
		return nil, err
	}
	doc, err := m.load(ctx, src)
	if err != nil {
		return nil, err
	}
	active.reset(src, doc)
	m.opts.Log.Info("reset tutorial panel", zap.String("panel", active.id), zap.Stringer("source", src))
	return active, nil
}

// Save writes the open panels to the state file at path.
func (m *Manager) Save(path string) error {
	m.mu.Lock()
	state := &config.State{ActivePanel: m.activeID}
	for _, p := range m.panels {
		p.mu.RLock()
		state.Panels = append(state.Panels, config.PanelState{
			ID:           p.id,
			SourceKind:   string(p.source.Kind),
			Location:     p.source.Location,
			Title:        p.title,
			Markdown:     p.markdown,
			HTML:         p.html,
			Requirements: copyStatuses(p.requirements),
		})
		p.mu.RUnlock()
	}
	m.mu.Unlock()

	return config.SaveState(path, state)
}

// Restore replaces the open panels with those saved at path. Panels come back
// exactly as saved; sources are not re-read.
func (m *Manager) Restore(path string) error {
	state, err := config.LoadState(path)
	if err != nil {
		return err
	}

	panels := make([]*Panel, 0, len(state.Panels))
	for _, ps := range state.Panels {
		if ps.ID == "" {
			continue
		}
		panels = append(panels, &Panel{
			id:           ps.ID,
			source:       Source{Kind: SourceKind(ps.SourceKind), Location: ps.Location},
			title:        ps.Title,
			markdown:     ps.Markdown,
			html:         ps.HTML,
			requirements: copyStatuses(ps.Requirements),
		})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.panels = panels
	m.activeID = ""
	if m.find(state.ActivePanel) != nil {
		m.activeID = state.ActivePanel
	}
	return nil
}

func copyStatuses(in map[string]bool) map[string]bool {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
