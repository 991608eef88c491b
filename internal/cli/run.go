package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/numbers"
	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run [link]...",
	Short: "Run didact links",
	Long: `Runs each didact:// link in order: its arguments are resolved, missing
input is prompted for, and the named command is executed.

With --number, links are picked from the active tutorial by their number in
'didact links'.

Examples:
  didact run 'didact://?commandId=didact.copyToClipboard&text=npm%20install'
  didact run 'didact://?commandId=didact.requirementCheck&text=go-status$$go%20version$$go1.'
  didact run --number 1,3-4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runNumbers != "" {
			selected, err := selectPanelLinks(runNumbers)
			if err != nil {
				return handleDomainError(err, "Run 'didact links' to see link numbers")
			}
			args = append(args, selected...)
		}
		if len(args) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no links given", "Pass a didact:// link or use --number")
		}

		type linkResult struct {
			Link      string `json:"link"`
			CommandID string `json:"command_id"`
		}
		var results []linkResult

		for _, raw := range args {
			if raw == "" {
				continue
			}
			link, err := protocol.ParseLink(raw)
			if err != nil {
				return handleError(ErrLinkInvalid, err, "Links need a commandId parameter, e.g. didact://?commandId=didact.echo&text=hi")
			}
			if err := sess.runLink(cmd.Context(), raw); err != nil {
				return handleDomainError(err, "")
			}
			results = append(results, linkResult{Link: raw, CommandID: link.CommandID})
		}

		if isJSONOutput() {
			notes := sess.notifications()
			data := map[string]interface{}{
				"links":         results,
				"notifications": notes,
				"output":        sess.commandOutput(),
			}
			for _, n := range notes {
				if n.Level == "error" {
					outputError(ErrCommandFailed, n.Message, data, "")
					return nil
				}
			}
			outputSuccess(data, &Meta{Count: len(results)})
		}
		return nil
	},
}

var runNumbers string

// selectPanelLinks returns the active tutorial's links picked by a number
// selection such as "1,3-4".
func selectPanelLinks(selection string) ([]string, error) {
	p := sess.panels.Active()
	if p == nil {
		return nil, panel.ErrNoActivePanel
	}
	picked, err := numbers.Parse(selection)
	if err != nil {
		return nil, err
	}
	links := render.ExtractDidactLinks(p.Markdown())
	out := make([]string, 0, len(picked))
	for _, n := range picked {
		if n > len(links) {
			return nil, fmt.Errorf("%w: %d (tutorial has %d links)", numbers.ErrInvalidNumber, n, len(links))
		}
		out = append(out, links[n-1])
	}
	return out, nil
}

func init() {
	runCmd.Flags().StringVarP(&runNumbers, "number", "n", "", "Run links of the active tutorial by number (e.g. 1,3-4)")
	rootCmd.AddCommand(runCmd)
}
