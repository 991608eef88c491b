package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/aidanlsb/didact/internal/protocol"
)

// RecordingNotifier records notifications.
type RecordingNotifier struct {
	mu     sync.Mutex
	Infos  []string
	Errors []string
}

func (n *RecordingNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Infos = append(n.Infos, msg)
}

func (n *RecordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, msg)
}

// ScriptedPrompter answers prompts from a fixed list. Running out of answers
// cancels.
type ScriptedPrompter struct {
	mu       sync.Mutex
	Answers  []string
	Requests []protocol.InputRequest
}

func (p *ScriptedPrompter) Prompt(_ context.Context, req protocol.InputRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Requests = append(p.Requests, req)
	if len(p.Answers) == 0 {
		return "", protocol.ErrInputCancelled
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// RecordingClipboard stores the last copied text.
type RecordingClipboard struct {
	mu   sync.Mutex
	Text string
	Err  error
}

func (c *RecordingClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	return nil
}

func (c *RecordingClipboard) Contents() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Text
}

// ErrCommandFailed is returned by FakeShell for commands it fails.
var ErrCommandFailed = errors.New("exit status 1")

// FakeShell answers shell commands from a table instead of running them.
// Unknown commands fail.
type FakeShell struct {
	mu      sync.Mutex
	Outputs map[string]string
	Ran     []string
}

func (s *FakeShell) Run(_ context.Context, command string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ran = append(s.Ran, command)
	out, ok := s.Outputs[command]
	if !ok {
		return nil, ErrCommandFailed
	}
	return []byte(out), nil
}
