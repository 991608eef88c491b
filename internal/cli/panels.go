package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/ui"
)

var closeAll bool

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "List open tutorial panels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := sess.panels.List()
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"panels": summaries}, &Meta{Count: len(summaries)})
			return nil
		}

		if len(summaries) == 0 {
			printf("%s\n", ui.Hint("No open tutorials. Run 'didact open <tutorial>' to open one."))
			return nil
		}
		table := ui.NewTable(4)
		for _, s := range summaries {
			marker := " "
			if s.Active {
				marker = ui.Accent.Render("*")
			}
			table.AddRow(marker, ui.Muted.Render(shortID(s.ID)), s.Title, requirementProgress(s.Requirements))
		}
		printf("%s\n", table.String())
		printf("%s\n", ui.Count(len(summaries), "panel", "panels"))
		return nil
	},
}

var panelsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a panel (default: the active one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := panelFromArgs(args)
		if err != nil {
			return handleDomainError(err, "Run 'didact panels' to see open panels")
		}
		return printPanel(p)
	},
}

var panelsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Make a panel active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findPanel(args[0])
		if err != nil {
			return handleDomainError(err, "Run 'didact panels' to see open panels")
		}
		if err := sess.panels.Activate(p.ID()); err != nil {
			return handleDomainError(err, "")
		}
		if isJSONOutput() {
			outputSuccess(panelData(p, false), nil)
			return nil
		}
		printf("%s\n", ui.Success("Activated "+p.Title()))
		return nil
	},
}

var panelsCloseCmd = &cobra.Command{
	Use:   "close [id]",
	Short: "Close a panel (default: the active one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if closeAll {
			n := sess.panels.Count()
			sess.panels.CloseAll()
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"closed": n}, &Meta{Count: n})
				return nil
			}
			printf("%s\n", ui.Success(fmt.Sprintf("Closed %d panels", n)))
			return nil
		}

		p, err := panelFromArgs(args)
		if err != nil {
			return handleDomainError(err, "Run 'didact panels' to see open panels")
		}
		if err := sess.panels.Close(p.ID()); err != nil {
			return handleDomainError(err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"closed": 1, "id": p.ID()}, nil)
			return nil
		}
		printf("%s\n", ui.Success("Closed "+p.Title()))
		return nil
	},
}

var panelsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Point the active panel back at the default tutorial",
	Long: `Reloads the configured default_tutorial into the active panel and clears its
requirement statuses. With no open panel the default tutorial is opened.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := sess.panels.HardReset(cmd.Context())
		if err != nil {
			return handleDomainError(err, "Set default_tutorial in config.toml")
		}
		return printPanel(p)
	},
}

// panelFromArgs returns the panel named by args[0], or the active panel.
func panelFromArgs(args []string) (*panel.Panel, error) {
	if len(args) == 1 {
		return findPanel(args[0])
	}
	p := sess.panels.Active()
	if p == nil {
		return nil, panel.ErrNoActivePanel
	}
	return p, nil
}

// findPanel accepts a full panel id or a unique prefix of one.
func findPanel(id string) (*panel.Panel, error) {
	if p, ok := sess.panels.Get(id); ok {
		return p, nil
	}
	var match *panel.Panel
	for _, s := range sess.panels.List() {
		if len(id) >= 4 && len(s.ID) > len(id) && s.ID[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("%w: %s is ambiguous", panel.ErrPanelNotFound, id)
			}
			match, _ = sess.panels.Get(s.ID)
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", panel.ErrPanelNotFound, id)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func requirementProgress(statuses map[string]bool) string {
	if len(statuses) == 0 {
		return ""
	}
	passed := 0
	for _, ok := range statuses {
		if ok {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d requirements met", passed, len(statuses))
}

func init() {
	panelsCloseCmd.Flags().BoolVar(&closeAll, "all", false, "Close every panel")
	panelsCmd.AddCommand(panelsShowCmd, panelsActivateCmd, panelsCloseCmd, panelsResetCmd)
	rootCmd.AddCommand(panelsCmd)
}
