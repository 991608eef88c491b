package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/ui"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands didact links can invoke",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := commands.AllCommandIDs()
		if isJSONOutput() {
			metas := make([]commands.Meta, 0, len(ids))
			for _, id := range ids {
				meta, _ := commands.GetCommandMeta(id)
				metas = append(metas, meta)
			}
			outputSuccess(map[string]interface{}{"commands": metas}, &Meta{Count: len(metas)})
			return nil
		}

		table := ui.NewTable(3)
		for _, id := range ids {
			meta, _ := commands.GetCommandMeta(id)
			names := make([]string, 0, len(meta.Args))
			for _, a := range meta.Args {
				names = append(names, a.Name)
			}
			table.AddRow(ui.Accent.Render(id), ui.Muted.Render(strings.Join(names, protocol.Delimiter)), meta.Description)
		}
		printf("%s\n", table.String())
		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec",
	Short: "Run a catalog command directly, without a link",
}

func runCatalogCommand(cmd *cobra.Command, id string, args protocol.ArgList) error {
	if err := sess.handlers.Execute(cmd.Context(), id, args); err != nil {
		return handleDomainError(err, "")
	}
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"command_id": id,
			"args":       args.Strings(),
			"output":     sess.commandOutput(),
		}, nil)
	}
	return nil
}

func init() {
	for _, id := range commands.AllCommandIDs() {
		if sub := commands.GenerateCobraCommand(id, runCatalogCommand); sub != nil {
			execCmd.AddCommand(sub)
		}
	}
	rootCmd.AddCommand(commandsCmd, execCmd)
}
