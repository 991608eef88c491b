package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/render"
	"github.com/aidanlsb/didact/internal/shellquote"
	"github.com/aidanlsb/didact/internal/ui"
)

type linkInfo struct {
	Link        string   `json:"link"`
	CommandID   string   `json:"command_id,omitempty"`
	Known       bool     `json:"known"`
	Requirement bool     `json:"requirement"`
	Texts       []string `json:"texts,omitempty"`
	Error       string   `json:"error,omitempty"`
}

var linksCmd = &cobra.Command{
	Use:   "links [file]",
	Short: "List the didact links of a tutorial",
	Long: `Lists every didact:// link in a tutorial file, or in the active panel when
no file is given, with the command each one invokes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return handleError(ErrFileReadError, err, "")
			}
			content = string(data)
		} else {
			p := sess.panels.Active()
			if p == nil {
				return handleErrorMsg(ErrNoActivePanel, "no active tutorial panel", "Pass a tutorial file or run 'didact open <tutorial>'")
			}
			content = p.Markdown()
		}

		links := describeLinks(render.ExtractDidactLinks(content))
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"links": links}, &Meta{Count: len(links)})
			return nil
		}

		if len(links) == 0 {
			printf("%s\n", ui.Hint("No didact links found."))
			return nil
		}
		table := ui.NewTable(4)
		for i, l := range links {
			num := ui.Muted.Render(strconv.Itoa(i + 1))
			switch {
			case l.Error != "":
				table.AddRow(num, ui.Error(l.Error), "", ui.Muted.Render(l.Link))
			case !l.Known:
				table.AddRow(num, ui.Warning(l.CommandID), "", ui.Muted.Render(l.Link))
			default:
				kind := ""
				if l.Requirement {
					kind = "requirement"
				}
				table.AddRow(num, ui.Accent.Render(l.CommandID), kind, ui.Muted.Render(l.Link))
			}
		}
		printf("%s\n", table.String())
		printf("%s\n", ui.Count(len(links), "link", "links"))
		if len(links) > 0 {
			printf("%s\n", ui.Hint("Run one with: didact run "+shellquote.QuoteIfNeeded(links[0].Link)))
		}
		return nil
	},
}

func describeLinks(raw []string) []linkInfo {
	out := make([]linkInfo, 0, len(raw))
	for _, r := range raw {
		info := linkInfo{Link: r}
		link, err := protocol.ParseLink(r)
		if err != nil {
			info.Error = err.Error()
			out = append(out, info)
			continue
		}
		info.CommandID = link.CommandID
		_, info.Known = commands.GetCommandMeta(link.CommandID)
		info.Requirement = commands.IsRequirementCommand(link.CommandID)
		info.Texts = link.Texts()
		out = append(out, info)
	}
	return out
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
