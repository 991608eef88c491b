package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check every requirement of the active tutorial",
	Long: `Runs the requirement links of the active tutorial concurrently and records
each status on its panel, like the tutorial's "validate all requirements" link.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := sess.panels.Active()
		if p == nil {
			return handleDomainError(panel.ErrNoActivePanel, "Run 'didact open <tutorial>' first")
		}
		if err := sess.handlers.Execute(cmd.Context(), "didact.validateAllRequirements", nil); err != nil {
			return handleDomainError(err, "")
		}

		statuses := requirementData(p)
		failed := 0
		var warnings []Warning
		for _, s := range statuses {
			if !s.OK {
				failed++
				warnings = append(warnings, Warning{Code: WarnRequirementFailed, Message: "requirement not met", Ref: s.Label})
			}
		}

		if isJSONOutput() {
			data := map[string]interface{}{
				"panel":         p.ID(),
				"requirements":  statuses,
				"passed":        len(statuses) - failed,
				"failed":        failed,
				"notifications": sess.notifications(),
			}
			outputSuccessWithWarnings(data, warnings, &Meta{Count: len(statuses)})
			return nil
		}

		if len(statuses) == 0 {
			printf("%s\n", ui.Hint("This tutorial has no requirements."))
			return nil
		}
		if failed == 0 {
			printf("%s\n", ui.Success("All requirements met"))
		} else {
			printf("%s\n", ui.Warning(fmt.Sprintf("%d of %d requirements not met", failed, len(statuses))))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
