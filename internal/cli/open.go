package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/ui"
)

var openCategory string

var openCmd = &cobra.Command{
	Use:   "open [tutorial]",
	Short: "Open a tutorial",
	Long: `Opens a tutorial in a panel and prints it. The tutorial may be a file path,
a file:// or http(s):// URL, or a didact-tutorial:?extension=<path> reference.
With --category the argument names a registered tutorial instead.
Without arguments the configured default_tutorial is opened.

Opening a tutorial that is already open activates its panel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := ""
		if len(args) == 1 {
			ref = strings.TrimSpace(args[0])
		}

		if openCategory != "" {
			if ref == "" {
				return handleErrorMsg(ErrMissingArgument, "a tutorial name is required with --category", "Run 'didact tutorial list' to see registered tutorials")
			}
			store, err := sess.tutorialStore()
			if err != nil {
				return handleError(ErrDatabaseError, err, "")
			}
			uri, err := store.URIFor(ref, openCategory)
			if err != nil {
				return handleDomainError(err, "Run 'didact tutorial list' to see registered tutorials")
			}
			ref = uri
		}

		if ref == "" {
			ref = sess.cfg.DefaultTutorial
		}
		if ref == "" {
			return handleErrorMsg(ErrMissingArgument, "no tutorial given and no default_tutorial configured", "Pass a tutorial path or set default_tutorial in config.toml")
		}

		p, err := sess.panels.Open(cmd.Context(), ref)
		if err != nil {
			return handleDomainError(err, "")
		}
		return printPanel(p)
	},
}

// printPanel shows a panel's tutorial and its requirement statuses.
func printPanel(p *panel.Panel) error {
	if isJSONOutput() {
		outputSuccess(panelData(p, true), nil)
		return nil
	}

	rendered, err := ui.RenderMarkdown(p.Markdown(), ui.NewDisplayContext(stdout).MarkdownWidth())
	if err != nil {
		return fmt.Errorf("failed to render tutorial: %w", err)
	}
	printf("%s", rendered)

	labels := p.RequirementLabels()
	if len(labels) == 0 {
		return nil
	}
	printf("%s\n", ui.Header("Requirements"))
	for _, label := range labels {
		var status *bool
		if ok, checked := p.Requirement(label); checked {
			status = &ok
		}
		printf("  %s\n", ui.Requirement(label, status))
	}
	return nil
}

func panelData(p *panel.Panel, includeHTML bool) map[string]interface{} {
	data := map[string]interface{}{
		"id":           p.ID(),
		"title":        p.Title(),
		"source":       p.Source().Location,
		"source_kind":  p.Source().Kind,
		"requirements": requirementData(p),
	}
	if includeHTML {
		data["html"] = p.HTML()
	}
	return data
}

type requirementStatus struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
	OK      bool   `json:"ok"`
}

func requirementData(p *panel.Panel) []requirementStatus {
	labels := p.RequirementLabels()
	out := make([]requirementStatus, 0, len(labels))
	for _, label := range labels {
		ok, checked := p.Requirement(label)
		out = append(out, requirementStatus{Label: label, Checked: checked, OK: ok})
	}
	return out
}

func init() {
	openCmd.Flags().StringVar(&openCategory, "category", "", "Open a registered tutorial from this category")
	rootCmd.AddCommand(openCmd)
}
