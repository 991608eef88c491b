// Package panel tracks open tutorial panels: which tutorials are shown, which
// one is active, and the requirement statuses recorded against each.
package panel

import (
	"sync"

	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/render"
)

// Panel is one open tutorial. It is safe for concurrent use.
type Panel struct {
	id string

	mu           sync.RWMutex
	source       Source
	title        string
	markdown     string
	html         string
	requirements map[string]bool
}

func (p *Panel) ID() string { return p.id }

func (p *Panel) Source() Source {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.source
}

// Title is the first heading of the tutorial, or its file name.
func (p *Panel) Title() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.title
}

func (p *Panel) HTML() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.html
}

func (p *Panel) Markdown() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.markdown
}

// SetRequirement records the status of a requirement label.
func (p *Panel) SetRequirement(label string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.requirements == nil {
		p.requirements = make(map[string]bool)
	}
	p.requirements[label] = ok
}

// Requirement returns the recorded status of label.
func (p *Panel) Requirement(label string) (ok bool, checked bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ok, checked = p.requirements[label]
	return ok, checked
}

// Requirements returns a copy of the recorded statuses.
func (p *Panel) Requirements() map[string]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]bool, len(p.requirements))
	for label, ok := range p.requirements {
		out[label] = ok
	}
	return out
}

// RequirementLinks returns the tutorial's links that invoke requirement commands.
func (p *Panel) RequirementLinks() []string {
	var out []string
	for _, raw := range render.ExtractDidactLinks(p.Markdown()) {
		link, err := protocol.ParseLink(raw)
		if err != nil || !commands.IsRequirementCommand(link.CommandID) {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// RequirementLabels returns the labels of the tutorial's requirement links in
// document order, without duplicates. The label is the first text piece.
func (p *Panel) RequirementLabels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, raw := range p.RequirementLinks() {
		link, err := protocol.ParseLink(raw)
		if err != nil {
			continue
		}
		texts := link.Texts()
		if len(texts) == 0 || texts[0] == "" || seen[texts[0]] {
			continue
		}
		seen[texts[0]] = true
		labels = append(labels, texts[0])
	}
	return labels
}

// Summary is a snapshot of a panel for listings.
type Summary struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Source       string          `json:"source"`
	Active       bool            `json:"active"`
	Requirements map[string]bool `json:"requirements,omitempty"`
}

func (p *Panel) summary(active bool) Summary {
	return Summary{
		ID:           p.id,
		Title:        p.Title(),
		Source:       p.Source().Location,
		Active:       active,
		Requirements: p.Requirements(),
	}
}

func (p *Panel) reset(src Source, doc document) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = src
	p.title = doc.title
	p.markdown = doc.markdown
	p.html = doc.html
	p.requirements = nil
}
