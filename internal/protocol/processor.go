package protocol

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrMissingCommandID is returned for links without a commandId parameter.
var ErrMissingCommandID = errors.New("no command id provided")

// Link is the synchronous parse of a didact link.
type Link struct {
	Raw               string
	CommandID         string
	CompletionMessage string
	ErrorMessage      string
	Query             Query
}

// ParseLink extracts the command id and message overrides from raw.
func ParseLink(raw string) (*Link, error) {
	q := ParseQuery(raw)
	id, ok := q.nonEmpty(KeyCommandID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCommandID, raw)
	}
	link := &Link{
		Raw:       raw,
		CommandID: id,
		Query:     q,
	}
	link.CompletionMessage, _ = q.nonEmpty(KeyCompletion)
	link.ErrorMessage, _ = q.nonEmpty(KeyError)
	return link, nil
}

// Texts returns the literal pieces of the text parameter, or nil when absent.
func (l *Link) Texts() []string {
	text, ok := l.Query.nonEmpty(KeyText)
	if !ok {
		return nil
	}
	return SplitDelimited(text)
}

// Processor runs didact links end to end: parse, resolve arguments, collect user
// input, dispatch.
type Processor struct {
	Workspace  Workspace
	Extensions ExtensionRegistry
	Prompter   Prompter
	Commands   CommandExecutor
	Notifier   Notifier
	Log        *zap.Logger

	// Options is consulted each time a command is dispatched. Nil means defaults.
	Options func() DispatchOptions
}

// ProcessLink runs rawLink. extensionBasePath is the install directory of the
// extension that owns the link and may be empty.
//
// A missing command id is returned as an error and nothing is dispatched. Every
// other failure is shown to the user and ProcessLink returns nil.
func (p *Processor) ProcessLink(ctx context.Context, rawLink, extensionBasePath string) error {
	if rawLink == "" {
		return nil
	}
	log := p.logger()
	log.Info("processing command inputs",
		zap.String("link", rawLink),
		zap.String("extension_path", extensionBasePath),
	)

	link, err := ParseLink(rawLink)
	if err != nil {
		return err
	}

	args := make(ArgList, 0, 4)
	if path, ok := p.resolvePath(link.Query, extensionBasePath); ok {
		args = append(args, path)
	}

	if texts := link.Texts(); texts != nil {
		for _, text := range texts {
			args = append(args, TextArg{Text: text})
		}
	} else if user, ok := link.Query.nonEmpty(KeyUser); ok {
		answers, err := CollectUserInput(ctx, p.Prompter, SplitDelimited(user))
		if err != nil {
			p.reportInputFailure(link, err)
		} else {
			for _, answer := range answers {
				args = append(args, TextArg{Text: answer})
			}
		}
	}

	if number, ok := link.Query.nonEmpty(KeyNumber); ok {
		args = append(args, ResolveNumber(number))
	}

	log.Debug("resolved link",
		zap.String("command", link.CommandID),
		zap.Strings("args", args.Strings()),
	)

	d := &Dispatcher{Commands: p.Commands, Notifier: p.notifier(), Log: log}
	d.Dispatch(ctx, Invocation{
		CommandID:         link.CommandID,
		Args:              args,
		CompletionMessage: link.CompletionMessage,
		ErrorMessage:      link.ErrorMessage,
	}, p.options())
	return nil
}

// resolvePath picks the path parameter by presence: project, then src (only with
// a base path), then ext. Only the picked parameter is attempted.
func (p *Processor) resolvePath(q Query, extensionBasePath string) (PathArg, bool) {
	switch {
	case q.Has(KeyProjectFilePath):
		rel, _ := q.nonEmpty(KeyProjectFilePath)
		return ResolveProjectPath(p.Workspace, rel)
	case q.Has(KeySrcFilePath) && extensionBasePath != "":
		rel, _ := q.nonEmpty(KeySrcFilePath)
		return ResolveSourcePath(extensionBasePath, rel)
	case q.Has(KeyExtFilePath):
		spec, _ := q.nonEmpty(KeyExtFilePath)
		p.logger().Info("processing extension file path input", zap.String("ext_file_path", spec))
		arg, ok := ResolveExtensionPath(p.Extensions, spec)
		if ok {
			p.logger().Debug("combined extension path", zap.String("path", arg.Path))
		}
		return arg, ok
	}
	return PathArg{}, false
}

func (p *Processor) reportInputFailure(link *Link, err error) {
	p.logger().Warn("user input not collected", zap.String("command", link.CommandID), zap.Error(err))
	if link.ErrorMessage != "" {
		p.notifier().Error(link.ErrorMessage)
		return
	}
	p.notifier().Error(fmt.Sprintf("Didact was unable to collect user input: %v", err))
}

func (p *Processor) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

func (p *Processor) notifier() Notifier {
	if p.Notifier == nil {
		return nopNotifier{}
	}
	return p.Notifier
}

func (p *Processor) options() DispatchOptions {
	if p.Options == nil {
		return DispatchOptions{}
	}
	return p.Options()
}
