package builtin

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/ui"
)

func (b *handlers) activePanel() (*panel.Panel, error) {
	if b.Panels == nil {
		return nil, panel.ErrNoActivePanel
	}
	p := b.Panels.Active()
	if p == nil {
		return nil, panel.ErrNoActivePanel
	}
	return p, nil
}

// record stores a requirement status on the active panel and prints it.
func (b *handlers) record(p *panel.Panel, label string, ok bool) {
	p.SetRequirement(label, ok)
	b.Log.Debug("requirement checked", zap.String("label", label), zap.Bool("ok", ok))
	fmt.Fprintln(b.Out, ui.Requirement(label, &ok))
}

func (b *handlers) cliCommandSuccessful(ctx context.Context, args protocol.ArgList) error {
	p, err := b.activePanel()
	if err != nil {
		return err
	}
	label, err := commands.StringArg(args, 0)
	if err != nil {
		return err
	}
	command, err := commands.StringArg(args, 1)
	if err != nil {
		return err
	}

	_, runErr := b.Shell(ctx, command)
	b.record(p, label, runErr == nil)
	return nil
}

func (b *handlers) requirementCheck(ctx context.Context, args protocol.ArgList) error {
	p, err := b.activePanel()
	if err != nil {
		return err
	}
	label, err := commands.StringArg(args, 0)
	if err != nil {
		return err
	}
	command, err := commands.StringArg(args, 1)
	if err != nil {
		return err
	}
	expected, err := commands.StringArg(args, 2)
	if err != nil {
		return err
	}

	out, runErr := b.Shell(ctx, command)
	b.record(p, label, runErr == nil && strings.Contains(string(out), expected))
	return nil
}

func (b *handlers) extensionRequirementCheck(_ context.Context, args protocol.ArgList) error {
	p, err := b.activePanel()
	if err != nil {
		return err
	}
	label, err := commands.StringArg(args, 0)
	if err != nil {
		return err
	}
	id, err := commands.StringArg(args, 1)
	if err != nil {
		return err
	}

	found := false
	if b.Extensions != nil {
		_, found = b.Extensions.Lookup(id)
	}
	b.record(p, label, found)
	return nil
}

func (b *handlers) workspaceFolderExistsCheck(_ context.Context, args protocol.ArgList) error {
	p, err := b.activePanel()
	if err != nil {
		return err
	}
	label, err := commands.StringArg(args, 0)
	if err != nil {
		return err
	}

	open := false
	if b.Workspace != nil {
		_, open = b.Workspace.Root()
	}
	b.record(p, label, open)
	return nil
}

// validateAllRequirements runs every requirement link of the active tutorial.
func (b *handlers) validateAllRequirements(ctx context.Context, _ protocol.ArgList) error {
	p, err := b.activePanel()
	if err != nil {
		return err
	}
	if b.RunLink == nil {
		return fmt.Errorf("link runner is not available")
	}

	links := p.RequirementLinks()
	b.Log.Info("validating requirements", zap.String("panel", p.ID()), zap.Int("links", len(links)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Concurrency)
	for _, link := range links {
		g.Go(func() error {
			return b.RunLink(gctx, link)
		})
	}
	return g.Wait()
}
