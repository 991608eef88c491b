package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/completion"
	"github.com/aidanlsb/didact/internal/ui"
)

var completeCmd = &cobra.Command{
	Use:   "complete <text>",
	Short: "Suggest didact link completions for tutorial text",
	Long: `Prints completion proposals for the text before the cursor while writing a
tutorial: the link prefix after "(didact" and command snippets after
"?commandId=". Editors can call this with --json.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := completion.Complete(strings.Join(args, " "))
		if isJSONOutput() {
			if items == nil {
				items = []completion.Item{}
			}
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}
		for _, item := range items {
			printf("%s  %s\n", ui.Accent.Render(item.InsertText), ui.Muted.Render(item.Detail))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
