package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/tutorials"
	"github.com/aidanlsb/didact/internal/ui"
)

var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Manage registered tutorials",
	Long: `Registered tutorials are grouped by category and can be opened by name with
'didact open <name> --category <category>'.`,
}

var tutorialRegisterCmd = &cobra.Command{
	Use:   "register <name> <category> <uri>",
	Short: "Register a tutorial",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sess.tutorialStore()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		t, err := store.Register(args[0], args[1], args[2])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if isJSONOutput() {
			outputSuccess(t, nil)
			return nil
		}
		printf("%s\n", ui.Success(fmt.Sprintf("Registered %s in %s", t.Name, t.Category)))
		return nil
	},
}

var tutorialListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List registered tutorials",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sess.tutorialStore()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		var list []tutorials.Tutorial
		if len(args) == 1 {
			list, err = store.TutorialsForCategory(args[0])
		} else {
			list, err = store.All()
		}
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			if list == nil {
				list = []tutorials.Tutorial{}
			}
			outputSuccess(map[string]interface{}{"tutorials": list}, &Meta{Count: len(list)})
			return nil
		}

		if len(list) == 0 {
			printf("%s\n", ui.Hint("No tutorials registered. Run 'didact tutorial register <name> <category> <uri>'."))
			return nil
		}
		category := ""
		for _, t := range list {
			if t.Category != category {
				category = t.Category
				printf("%s\n", ui.Header(category))
			}
			printf("  %s  %s\n", t.Name, ui.Muted.Render(t.URI))
		}
		return nil
	},
}

var tutorialCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List tutorial categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sess.tutorialStore()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		categories, err := store.Categories()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		if isJSONOutput() {
			if categories == nil {
				categories = []string{}
			}
			outputSuccess(map[string]interface{}{"categories": categories}, &Meta{Count: len(categories)})
			return nil
		}
		for _, c := range categories {
			printf("%s\n", c)
		}
		return nil
	},
}

var tutorialRemoveCmd = &cobra.Command{
	Use:   "remove <name> <category>",
	Short: "Unregister a tutorial",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sess.tutorialStore()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		if err := store.Remove(args[0], args[1]); err != nil {
			return handleDomainError(err, "Run 'didact tutorial list' to see registered tutorials")
		}
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"removed": args[0], "category": args[1]}, nil)
			return nil
		}
		printf("%s\n", ui.Success(fmt.Sprintf("Removed %s from %s", args[0], args[1])))
		return nil
	},
}

func init() {
	tutorialCmd.AddCommand(tutorialRegisterCmd, tutorialListCmd, tutorialCategoriesCmd, tutorialRemoveCmd)
	rootCmd.AddCommand(tutorialCmd)
}
