package completion

import (
	"strings"
	"testing"

	"github.com/aidanlsb/didact/internal/commands"
)

func TestFindDidactPrefix(t *testing.T) {
	valid := []string{
		"(didact://?commandId=mycommand)",
		"(didact)",
		"(didact://)",
		"(didact:)",
		"(didact:/",
		"(didact://?",
		"[my link](didact://?comma)",
		"link:didact://?commandId=someCommand",
		"link:didact",
		"(didact://?commandId=didact.cliCommandSuccessful&text=cli-requirement-name$$echo%20text)",
	}
	invalid := []string{
		"[dooby](did://?",
		"The man was a didact whiz",
	}

	for _, text := range valid {
		if _, ok := FindDidactPrefix(text); !ok {
			t.Errorf("FindDidactPrefix(%q) found nothing", text)
		}
	}
	for _, text := range invalid {
		if m, ok := FindDidactPrefix(text); ok {
			t.Errorf("FindDidactPrefix(%q) = %q, want no match", text, m)
		}
	}
}

func TestFindCommandVariable(t *testing.T) {
	tests := []struct {
		text string
		full string
		id   string
	}{
		{text: "didact://?commandId=didact.", full: "?commandId=didact.", id: "didact."},
		{text: "didact://?commandId=didact.copyToClipboard&text=hello", full: "?commandId=didact.copyToClipboard", id: "didact.copyToClipboard"},
		{text: "[x](didact://?commandId=didact.echo)", full: "?commandId=didact.echo", id: "didact.echo"},
	}
	for _, tt := range tests {
		full, id, ok := FindCommandVariable(tt.text)
		if !ok || full != tt.full || id != tt.id {
			t.Fatalf("FindCommandVariable(%q) = (%q, %q, %v), want (%q, %q)", tt.text, full, id, ok, tt.full, tt.id)
		}
	}
	if _, _, ok := FindCommandVariable("didact://"); ok {
		t.Fatalf("expected no command variable")
	}
}

func TestProtocolCompletion(t *testing.T) {
	if got := ProtocolCompletion().InsertText; got != "didact://?commandId=" {
		t.Fatalf("ProtocolCompletion().InsertText = %q", got)
	}
}

func TestCompleteCommandPrefixListsCatalog(t *testing.T) {
	items := Complete("didact://?commandId=didact.")
	if len(items) != len(commands.Registry) {
		t.Fatalf("Complete() returned %d items, want %d", len(items), len(commands.Registry))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Label > items[i].Label {
			t.Fatalf("items not sorted: %q before %q", items[i-1].Label, items[i].Label)
		}
	}
}

func TestCompleteSingleCommand(t *testing.T) {
	items := Complete("didact://?commandId=didact.cliCommandSuccessful&text=cli-requirement-name$$echo%20text")
	if len(items) != 1 {
		t.Fatalf("Complete() returned %d items, want 1", len(items))
	}
	want := "didact://?commandId=didact.cliCommandSuccessful&text=${1:Requirement-Label}$$${2:URLEncoded-Command-to-Execute}"
	if items[0].InsertText != want {
		t.Fatalf("InsertText = %q, want %q", items[0].InsertText, want)
	}
	if !items[0].Snippet {
		t.Fatalf("expected snippet completion")
	}
}

func TestCompleteFallsBackToProtocol(t *testing.T) {
	items := Complete("see (didact")
	if len(items) != 1 || items[0].InsertText != CommandPrefix {
		t.Fatalf("Complete() = %#v", items)
	}
	if Complete("plain prose") != nil {
		t.Fatalf("expected no completions for prose")
	}
}

func TestSnippetKinds(t *testing.T) {
	meta := commands.Meta{
		ID: "didact.sample",
		Args: []commands.ArgMeta{
			{Name: "File", Kind: commands.ArgPath},
			{Name: "Name", Kind: commands.ArgUser},
			{Name: "Count", Kind: commands.ArgNumber},
		},
	}
	got := Snippet(meta)
	want := "didact://?commandId=didact.sample&projectFilePath=${1:File}&user=${2:Name}&number=${3:Count}"
	if got != want {
		t.Fatalf("Snippet() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Snippet(commands.Meta{ID: "didact.validateAllRequirements"}), CommandPrefix) {
		t.Fatalf("snippet without args lost prefix")
	}
}
