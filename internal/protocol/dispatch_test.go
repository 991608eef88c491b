package protocol

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type panickingExecutor struct{}

func (panickingExecutor) Execute(context.Context, string, ArgList) error {
	panic("kaboom")
}

func TestDispatchSuccessDefaultMessage(t *testing.T) {
	notes := &recordingNotifier{}
	d := &Dispatcher{Commands: &recordingExecutor{}, Notifier: notes}

	out := d.Dispatch(context.Background(), Invocation{
		CommandID: "my.cmd",
		Args:      ArgList{TextArg{Text: "a"}, NumberArg{Value: 2}},
	}, DispatchOptions{})

	if out.Err != nil {
		t.Fatalf("unexpected error %v", out.Err)
	}
	if len(notes.infos) != 1 {
		t.Fatalf("infos=%v", notes.infos)
	}
	if got, want := notes.infos[0], "Didact just executed my.cmd with arguments a,2"; got != want {
		t.Fatalf("info=%q, want %q", got, want)
	}
}

func TestDispatchSuccessSuppressed(t *testing.T) {
	notes := &recordingNotifier{}
	d := &Dispatcher{Commands: &recordingExecutor{}, Notifier: notes}

	out := d.Dispatch(context.Background(), Invocation{CommandID: "my.cmd"}, DispatchOptions{DisableDefaultNotifications: true})
	if out.Shown || len(notes.infos) != 0 || len(notes.errors) != 0 {
		t.Fatalf("expected nothing shown, got %+v infos=%v errors=%v", out, notes.infos, notes.errors)
	}
}

func TestDispatchCompletionOverrideShownEvenWhenSuppressed(t *testing.T) {
	notes := &recordingNotifier{}
	d := &Dispatcher{Commands: &recordingExecutor{}, Notifier: notes}

	d.Dispatch(context.Background(), Invocation{CommandID: "my.cmd", CompletionMessage: "All done"}, DispatchOptions{DisableDefaultNotifications: true})
	if len(notes.infos) != 1 || notes.infos[0] != "All done" {
		t.Fatalf("infos=%v", notes.infos)
	}
}

func TestDispatchFailureOverride(t *testing.T) {
	notes := &recordingNotifier{}
	d := &Dispatcher{Commands: &recordingExecutor{err: errors.New("boom")}, Notifier: notes}

	out := d.Dispatch(context.Background(), Invocation{CommandID: "my.cmd", ErrorMessage: "Could not do it"}, DispatchOptions{})
	if out.Err == nil {
		t.Fatalf("expected outcome error")
	}
	if len(notes.errors) != 1 || notes.errors[0] != "Could not do it" {
		t.Fatalf("errors=%v", notes.errors)
	}
	if len(notes.infos) != 0 {
		t.Fatalf("infos=%v", notes.infos)
	}
}

func TestDispatchFailureDefaultMessage(t *testing.T) {
	notes := &recordingNotifier{}
	d := &Dispatcher{Commands: &recordingExecutor{err: errors.New("command 'nope' not found")}, Notifier: notes}

	d.Dispatch(context.Background(), Invocation{CommandID: "nope"}, DispatchOptions{DisableDefaultNotifications: true})
	if len(notes.errors) != 1 {
		t.Fatalf("errors=%v", notes.errors)
	}
	if !strings.HasPrefix(notes.errors[0], "Didact was unable to call command nope: ") {
		t.Fatalf("error=%q", notes.errors[0])
	}
}

func TestDispatchRecoversPanics(t *testing.T) {
	notes := &recordingNotifier{}
	d := &Dispatcher{Commands: panickingExecutor{}, Notifier: notes}

	out := d.Dispatch(context.Background(), Invocation{CommandID: "bad"}, DispatchOptions{})
	if out.Err == nil || !strings.Contains(out.Err.Error(), "kaboom") {
		t.Fatalf("expected panic converted to error, got %v", out.Err)
	}
	if len(notes.errors) != 1 {
		t.Fatalf("errors=%v", notes.errors)
	}
}

func TestDispatchWithoutExecutor(t *testing.T) {
	notes := &recordingNotifier{}
	d := &Dispatcher{Notifier: notes}
	out := d.Dispatch(context.Background(), Invocation{CommandID: "x"}, DispatchOptions{})
	if !errors.Is(out.Err, errNoExecutor) {
		t.Fatalf("expected errNoExecutor, got %v", out.Err)
	}
}
