// Package completion suggests didact links while a tutorial is being written.
package completion

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/protocol"
)

// CommandPrefix starts every completed link.
const CommandPrefix = protocol.Scheme + "://?" + protocol.KeyCommandID + "="

var (
	// A didact link opens after "(" in markdown or ":" in AsciiDoc.
	didactPrefixRE    = regexp.MustCompile(`[(:]didact(?::[^\s)]*)?`)
	commandVariableRE = regexp.MustCompile(`\?commandId=([^&\s)]*)`)
)

// Item is one completion proposal.
type Item struct {
	Label      string `json:"label"`
	Detail     string `json:"detail,omitempty"`
	InsertText string `json:"insert_text"`
	Snippet    bool   `json:"snippet"`
}

// FindDidactPrefix returns the didact link being typed in text.
func FindDidactPrefix(text string) (string, bool) {
	m := didactPrefixRE.FindString(text)
	return m, m != ""
}

// FindCommandVariable returns the "?commandId=..." match in text and the
// (possibly partial) command id.
func FindCommandVariable(text string) (full, id string, ok bool) {
	m := commandVariableRE.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[0], m[1], true
}

// ProtocolCompletion proposes the link scheme itself.
func ProtocolCompletion() Item {
	return Item{
		Label:      CommandPrefix,
		Detail:     "Start a didact link",
		InsertText: CommandPrefix,
	}
}

// Complete proposes completions for text: catalog commands matching a typed
// command id, or the link prefix when only the scheme has been started.
func Complete(text string) []Item {
	if _, id, ok := FindCommandVariable(text); ok {
		return CommandCompletions(id)
	}
	if _, ok := FindDidactPrefix(text); ok {
		return []Item{ProtocolCompletion()}
	}
	return nil
}

// CommandCompletions returns a snippet for every catalog command whose id
// starts with prefix, sorted by id.
func CommandCompletions(prefix string) []Item {
	ids := commands.AllCommandIDs()
	sort.Strings(ids)

	var items []Item
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		meta, _ := commands.GetCommandMeta(id)
		items = append(items, Item{
			Label:      id,
			Detail:     meta.Description,
			InsertText: Snippet(meta),
			Snippet:    true,
		})
	}
	return items
}

// Snippet builds the link for meta with numbered placeholders, e.g.
// didact://?commandId=didact.cliCommandSuccessful&text=${1:Requirement-Label}$$${2:URLEncoded-Command-to-Execute}
func Snippet(meta commands.Meta) string {
	var (
		paths, texts, users, numbers []string
		n                            int
	)
	placeholder := func(name string) string {
		n++
		return fmt.Sprintf("${%d:%s}", n, name)
	}
	for _, arg := range meta.Args {
		switch arg.Kind {
		case commands.ArgPath:
			paths = append(paths, placeholder(arg.Name))
		case commands.ArgUser:
			users = append(users, placeholder(arg.Name))
		case commands.ArgNumber:
			numbers = append(numbers, placeholder(arg.Name))
		default:
			texts = append(texts, placeholder(arg.Name))
		}
	}

	var sb strings.Builder
	sb.WriteString(CommandPrefix)
	sb.WriteString(meta.ID)
	if len(paths) > 0 {
		sb.WriteString("&" + protocol.KeyProjectFilePath + "=" + paths[0])
	}
	if len(texts) > 0 {
		sb.WriteString("&" + protocol.KeyText + "=" + strings.Join(texts, protocol.Delimiter))
	} else if len(users) > 0 {
		sb.WriteString("&" + protocol.KeyUser + "=" + strings.Join(users, protocol.Delimiter))
	}
	if len(numbers) > 0 {
		sb.WriteString("&" + protocol.KeyNumber + "=" + numbers[0])
	}
	return sb.String()
}
