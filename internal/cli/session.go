package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aidanlsb/didact/internal/builtin"
	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/config"
	"github.com/aidanlsb/didact/internal/host"
	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/tutorials"
	"github.com/aidanlsb/didact/internal/ui"
)

type sessionOptions struct {
	Config        *config.Config
	ConfigPath    string
	StatePath     string
	Workspace     []string
	ExtensionPath string
	Log           *zap.Logger
}

// session holds the collaborators of one CLI invocation.
type session struct {
	cfg        *config.Config
	configPath string
	statePath  string
	log        *zap.Logger

	workspace     *host.Workspace
	extensions    *host.Extensions
	extensionBase string
	panels        *panel.Manager
	handlers      *commands.Handlers
	processor     *protocol.Processor

	// In JSON mode notifications and command output are collected for the
	// response instead of printed.
	collected *host.CollectingNotifier
	output    *bytes.Buffer

	store *tutorials.Store
}

func newSession(opts sessionOptions) (*session, error) {
	c := opts.Config
	s := &session{
		cfg:        c,
		configPath: opts.ConfigPath,
		statePath:  opts.StatePath,
		log:        opts.Log,
		extensions: host.NewExtensions(c.Extensions),
	}

	folders := c.Workspace
	if len(opts.Workspace) > 0 {
		folders = opts.Workspace
	}
	s.workspace = &host.Workspace{Folders: folders}

	s.extensionBase = c.ExtensionPath
	if opts.ExtensionPath != "" {
		s.extensionBase = opts.ExtensionPath
	}

	s.panels = panel.NewManager(panel.Options{
		ExtensionBase:   s.extensionBase,
		DefaultTutorial: c.DefaultTutorial,
		Client:          &http.Client{Timeout: 30 * time.Second},
		Log:             s.log,
	})
	if err := s.panels.Restore(s.statePath); err != nil {
		return nil, err
	}

	var notifier protocol.Notifier
	var out io.Writer = stdout
	if isJSONOutput() {
		s.collected = &host.CollectingNotifier{}
		s.output = &bytes.Buffer{}
		notifier = s.collected
		out = s.output
	} else {
		notifier = &host.TerminalNotifier{Out: stdout, Err: stderr}
	}

	s.handlers = commands.NewHandlers()
	s.processor = &protocol.Processor{
		Workspace:  s.workspace,
		Extensions: s.extensions,
		Prompter:   &host.TerminalPrompter{In: stdin, Out: stderr, RequireTTY: isJSONOutput()},
		Commands:   s.handlers,
		Notifier:   notifier,
		Log:        s.log,
		Options: func() protocol.DispatchOptions {
			return protocol.DispatchOptions{DisableDefaultNotifications: c.DisableDefaultNotifications}
		},
	}
	builtin.Register(s.handlers, builtin.Deps{
		Panels:     s.panels,
		Workspace:  s.workspace,
		Extensions: s.extensions,
		Out:        out,
		RunLink: func(ctx context.Context, link string) error {
			return s.processor.ProcessLink(ctx, link, s.extensionBase)
		},
		Render: !isJSONOutput(),
		Width:  ui.NewDisplayContext(stdout).MarkdownWidth(),
		Log:    s.log,
	})

	s.log.Debug("session ready",
		zap.String("config", s.configPath),
		zap.String("state", s.statePath),
		zap.Strings("workspace", folders),
		zap.Int("panels", s.panels.Count()),
	)
	return s, nil
}

// runLink processes one didact link with the session's extension base.
func (s *session) runLink(ctx context.Context, link string) error {
	return s.processor.ProcessLink(ctx, link, s.extensionBase)
}

// notifications returns what was collected in JSON mode.
func (s *session) notifications() []host.Notification {
	if s.collected == nil {
		return nil
	}
	return s.collected.Notifications()
}

// commandOutput returns what commands printed in JSON mode.
func (s *session) commandOutput() string {
	if s.output == nil {
		return ""
	}
	return s.output.String()
}

// tutorialStore opens the tutorial registry on first use.
func (s *session) tutorialStore() (*tutorials.Store, error) {
	if s.store != nil {
		return s.store, nil
	}
	store, err := tutorials.Open(config.ResolveDataDir(s.configPath, s.cfg))
	if err != nil {
		return nil, err
	}
	s.store = store
	return store, nil
}

func (s *session) saveState() error {
	return s.panels.Save(s.statePath)
}

func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn("failed to close tutorial registry", zap.Error(err))
		}
	}
	_ = s.log.Sync()
}
