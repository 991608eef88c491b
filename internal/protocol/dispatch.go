package protocol

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Invocation is a fully resolved command call.
type Invocation struct {
	CommandID         string
	Args              ArgList
	CompletionMessage string
	ErrorMessage      string
}

// DispatchOptions carries settings read at dispatch time.
type DispatchOptions struct {
	// DisableDefaultNotifications hides the generic success message. Override
	// messages and failures are still shown.
	DisableDefaultNotifications bool
}

// Outcome reports what a dispatch did. Err is the command failure, if any; it has
// already been shown to the user.
type Outcome struct {
	Err     error
	Message string
	Shown   bool
}

// Dispatcher executes invocations and reports the result through a notifier.
type Dispatcher struct {
	Commands CommandExecutor
	Notifier Notifier
	Log      *zap.Logger
}

var errNoExecutor = errors.New("no command executor available")

// Dispatch runs the command and shows a completion or error message. Failures are
// converted to notifications and never returned as errors.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invocation, opts DispatchOptions) Outcome {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	notifier := d.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}

	log.Debug("dispatching command",
		zap.String("command", inv.CommandID),
		zap.Strings("args", inv.Args.Strings()),
	)

	if err := d.execute(ctx, inv); err != nil {
		msg := inv.ErrorMessage
		if msg == "" {
			msg = fmt.Sprintf("Didact was unable to call command %s: %v", inv.CommandID, err)
		}
		log.Warn("command failed", zap.String("command", inv.CommandID), zap.Error(err))
		notifier.Error(msg)
		return Outcome{Err: err, Message: msg, Shown: true}
	}

	if inv.CompletionMessage != "" {
		notifier.Info(inv.CompletionMessage)
		return Outcome{Message: inv.CompletionMessage, Shown: true}
	}
	if opts.DisableDefaultNotifications {
		return Outcome{}
	}
	msg := fmt.Sprintf("Didact just executed %s with arguments %s", inv.CommandID, inv.Args)
	notifier.Info(msg)
	return Outcome{Message: msg, Shown: true}
}

func (d *Dispatcher) execute(ctx context.Context, inv Invocation) (err error) {
	if d.Commands == nil {
		return errNoExecutor
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command panicked: %v", r)
		}
	}()
	return d.Commands.Execute(ctx, inv.CommandID, inv.Args)
}
