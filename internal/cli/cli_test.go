package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/didact/internal/testutil"
)

type cliEnv struct {
	t      *testing.T
	ws     *testutil.TestWorkspace
	config string
}

// newCLIEnv builds a workspace with a tutorial and a config whose workspace
// folder is <root>/project.
func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	ws := testutil.NewTestWorkspace(t).
		WithFile("tutorials/simple.didact.md", testutil.SimpleTutorial()).
		WithFile("project/README.md", "# Project\n").
		Build()
	config := ws.WriteFile("config/config.toml", fmt.Sprintf(
		"workspace = [%q]\ndisable_default_notifications = true\n", ws.Abs("project"),
	))
	return &cliEnv{t: t, ws: ws, config: config}
}

func (e *cliEnv) tutorial() string {
	return e.ws.Abs("tutorials/simple.didact.md")
}

// run executes the CLI in JSON mode and parses the envelope.
func (e *cliEnv) run(args ...string) *testutil.CLIResult {
	e.t.Helper()
	return e.runWithInput("", args...)
}

func (e *cliEnv) runWithInput(input string, args ...string) *testutil.CLIResult {
	e.t.Helper()
	out, _ := executeCLI(input, append([]string{"--json", "--config", e.config}, args...)...)
	return testutil.ParseCLIResult(out)
}

// executeCLI runs the root command with fresh flag values and captured streams.
func executeCLI(input string, args ...string) (string, string) {
	resetCLI()
	var out, errOut bytes.Buffer
	prevOut, prevErr, prevIn := stdout, stderr, stdin
	stdout, stderr, stdin = &out, &errOut, strings.NewReader(input)
	defer func() {
		stdout, stderr, stdin = prevOut, prevErr, prevIn
	}()

	rootCmd.SetArgs(args)
	_ = Execute()
	return out.String(), errOut.String()
}

func resetCLI() {
	sess = nil
	cfg = nil
	workspaceFlag = nil
	resetFlags(rootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Value.Type() != "stringSlice" {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	var out bytes.Buffer
	prev := stdout
	stdout = &out
	defer func() { stdout = prev }()
	fn()
	return out.String()
}

func requirementsByLabel(t *testing.T, r *testutil.CLIResult) map[string]map[string]interface{} {
	t.Helper()
	out := make(map[string]map[string]interface{})
	for _, item := range r.DataList("requirements") {
		m, ok := item.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected requirement entry %#v", item)
		}
		out[m["label"].(string)] = m
	}
	return out
}

func TestOpenAndListPanels(t *testing.T) {
	e := newCLIEnv(t)

	r := e.run("open", e.tutorial()).MustSucceed(t)
	if got := r.DataString("title"); got != "Simple Example" {
		t.Fatalf("title=%q", got)
	}
	reqs := requirementsByLabel(t, r)
	for _, label := range []string{"shell-status", "echo-status", "workspace-status"} {
		if reqs[label] == nil || reqs[label]["checked"] != false {
			t.Fatalf("expected unchecked requirement %q, got %v", label, reqs)
		}
	}
	if !strings.Contains(r.DataString("html"), "<h1") {
		t.Fatalf("expected rendered html, got %q", r.DataString("html"))
	}

	// Reopening activates the same panel.
	id := r.DataString("id")
	if again := e.run("open", e.tutorial()).MustSucceed(t); again.DataString("id") != id {
		t.Fatalf("reopen created a new panel: %q != %q", again.DataString("id"), id)
	}

	panels := e.run("panels").MustSucceed(t)
	if panels.Meta == nil || panels.Meta.Count != 1 {
		t.Fatalf("expected one panel, got %s", panels.RawJSON)
	}
	e.ws.AssertFileContains("config/state.toml", "Simple Example")
}

func TestRunLinkRecordsRequirementAcrossInvocations(t *testing.T) {
	e := newCLIEnv(t)
	e.run("open", e.tutorial()).MustSucceed(t)

	link := "didact://?commandId=didact.requirementCheck&text=echo-status$$echo%20hello$$hello"
	r := e.run("run", link).MustSucceed(t)
	if r.Meta == nil || r.Meta.Count != 1 {
		t.Fatalf("expected one link result, got %s", r.RawJSON)
	}

	show := e.run("panels", "show").MustSucceed(t)
	reqs := requirementsByLabel(t, show)
	if reqs["echo-status"]["checked"] != true || reqs["echo-status"]["ok"] != true {
		t.Fatalf("echo-status not recorded: %v", reqs["echo-status"])
	}
	if reqs["shell-status"]["checked"] != false {
		t.Fatalf("shell-status should be unchecked: %v", reqs["shell-status"])
	}
}

func TestRunLinkErrors(t *testing.T) {
	e := newCLIEnv(t)

	e.run("run", "didact://?text=hello").MustFail(t, ErrLinkInvalid)
	e.run("run", "  ").MustFail(t, ErrLinkInvalid)

	// Requirement commands fail without an active panel; the failure is shown
	// as a notification.
	r := e.run("run", "didact://?commandId=didact.workspaceFolderExistsCheck&text=ws")
	r.MustFail(t, ErrCommandFailed)
}

func TestRunEmptyLinkIsNoop(t *testing.T) {
	e := newCLIEnv(t)
	r := e.run("run", "").MustSucceed(t)
	if got := r.DataString("output"); got != "" {
		t.Fatalf("output=%q", got)
	}
	if len(r.DataList("notifications")) != 0 {
		t.Fatalf("unexpected notifications: %s", r.RawJSON)
	}
}

func TestRunLinkWithUserInput(t *testing.T) {
	e := newCLIEnv(t)
	r := e.runWithInput("Ada\n", "run", "didact://?commandId=didact.echo&user=Your%20name").MustSucceed(t)
	if got := r.DataString("output"); got != "Ada\n" {
		t.Fatalf("output=%q", got)
	}
}

func TestCheckValidatesAllRequirements(t *testing.T) {
	e := newCLIEnv(t)
	e.run("open", e.tutorial()).MustSucceed(t)

	r := e.run("check").MustSucceed(t)
	if r.Data["passed"] != float64(3) || r.Data["failed"] != float64(0) {
		t.Fatalf("unexpected check result: %s", r.RawJSON)
	}
}

func TestCheckWithoutPanel(t *testing.T) {
	e := newCLIEnv(t)
	e.run("check").MustFail(t, ErrNoActivePanel)
}

func TestPanelsCloseAndReset(t *testing.T) {
	e := newCLIEnv(t)
	e.run("open", e.tutorial()).MustSucceed(t)

	e.run("panels", "reset").MustFail(t, ErrNoDefaultTutorial)
	e.run("panels", "activate", "no-such-panel").MustFail(t, ErrPanelNotFound)

	closed := e.run("panels", "close", "--all").MustSucceed(t)
	if closed.Meta == nil || closed.Meta.Count != 1 {
		t.Fatalf("expected one closed panel, got %s", closed.RawJSON)
	}
	e.run("panels", "show").MustFail(t, ErrNoActivePanel)
}

func TestLinksListsTutorialLinks(t *testing.T) {
	e := newCLIEnv(t)
	r := e.run("links", e.tutorial()).MustSucceed(t)

	links := r.DataList("links")
	if len(links) != 4 {
		t.Fatalf("expected 4 links, got %s", r.RawJSON)
	}
	requirements := 0
	for _, item := range links {
		m := item.(map[string]interface{})
		if m["known"] != true {
			t.Fatalf("unknown command in %v", m)
		}
		if m["requirement"] == true {
			requirements++
		}
	}
	if requirements != 3 {
		t.Fatalf("expected 3 requirement links, got %d", requirements)
	}
}

func TestTutorialRegistry(t *testing.T) {
	e := newCLIEnv(t)

	e.run("tutorial", "register", "Simple", "Demos", e.tutorial()).MustSucceed(t)
	list := e.run("tutorial", "list").MustSucceed(t)
	if len(list.DataList("tutorials")) != 1 {
		t.Fatalf("expected one tutorial, got %s", list.RawJSON)
	}
	cats := e.run("tutorial", "categories").MustSucceed(t)
	if got := cats.DataList("categories"); len(got) != 1 || got[0] != "Demos" {
		t.Fatalf("categories=%v", got)
	}

	opened := e.run("open", "Simple", "--category", "Demos").MustSucceed(t)
	if opened.DataString("title") != "Simple Example" {
		t.Fatalf("open by category: %s", opened.RawJSON)
	}

	e.run("tutorial", "remove", "Simple", "Demos").MustSucceed(t)
	e.run("tutorial", "remove", "Simple", "Demos").MustFail(t, ErrTutorialNotFound)
	e.run("open", "Simple", "--category", "Demos").MustFail(t, ErrTutorialNotFound)
}

func TestCompleteAndCommands(t *testing.T) {
	e := newCLIEnv(t)

	r := e.run("complete", "[check](didact://?commandId=didact.req").MustSucceed(t)
	items := r.DataList("items")
	if len(items) != 1 {
		t.Fatalf("expected one completion, got %s", r.RawJSON)
	}
	if label := items[0].(map[string]interface{})["label"]; label != "didact.requirementCheck" {
		t.Fatalf("label=%v", label)
	}

	cmds := e.run("commands").MustSucceed(t)
	if len(cmds.DataList("commands")) < 10 {
		t.Fatalf("expected the command catalog, got %s", cmds.RawJSON)
	}
}

func TestExecRunsCatalogCommand(t *testing.T) {
	e := newCLIEnv(t)
	r := e.run("exec", "echo", "hello").MustSucceed(t)
	if got := r.DataString("output"); got != "hello\n" {
		t.Fatalf("output=%q", got)
	}
}

func TestInitWritesConfigAndTutorial(t *testing.T) {
	dir := t.TempDir()
	configFile := dir + string(os.PathSeparator) + "didact" + string(os.PathSeparator) + "config.toml"

	out, _ := executeCLI("", "--json", "--config", configFile, "init", dir)
	r := testutil.ParseCLIResult(out).MustSucceed(t)
	if r.Data["created_config"] != true || r.Data["created_tutorial"] != true {
		t.Fatalf("unexpected init result: %s", r.RawJSON)
	}
	if _, err := os.Stat(r.DataString("tutorial")); err != nil {
		t.Fatalf("starter tutorial missing: %v", err)
	}

	out, _ = executeCLI("", "--json", "--config", configFile, "init", dir)
	r = testutil.ParseCLIResult(out).MustSucceed(t)
	if r.Data["created_config"] != false || r.Data["created_tutorial"] != false {
		t.Fatalf("second init should keep files: %s", r.RawJSON)
	}
}

func TestTextOutput(t *testing.T) {
	e := newCLIEnv(t)
	out, _ := executeCLI("", "--config", e.config, "exec", "echo", "plain")
	if out != "plain\n" {
		t.Fatalf("output=%q", out)
	}

	_, errOut := executeCLI("", "--config", e.config, "run", "didact://?text=x")
	if !strings.Contains(errOut, "no command id provided") {
		t.Fatalf("stderr=%q", errOut)
	}
}

func TestRunLinksByNumber(t *testing.T) {
	e := newCLIEnv(t)
	e.run("open", e.tutorial()).MustSucceed(t)

	r := e.run("run", "--number", "2").MustSucceed(t)
	links := r.DataList("links")
	if len(links) != 1 || links[0].(map[string]interface{})["command_id"] != "didact.requirementCheck" {
		t.Fatalf("unexpected links: %s", r.RawJSON)
	}

	e.run("run", "--number", "9").MustFail(t, ErrInvalidInput)
	e.run("run").MustFail(t, ErrMissingArgument)
}
