package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/docs"
	"github.com/aidanlsb/didact/internal/atomicfile"
	"github.com/aidanlsb/didact/internal/config"
	"github.com/aidanlsb/didact/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create the config file and optionally a starter tutorial",
	Long: `Writes a commented config.toml at the config location if none exists.

With a directory argument, also writes getting-started.didact.md there.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolveConfigPath(configPath)
		_, statErr := os.Stat(path)
		createdConfig := os.IsNotExist(statErr)

		if _, err := config.CreateDefault(path); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		tutorialPath := ""
		createdTutorial := false
		if len(args) == 1 {
			tutorialPath = filepath.Join(args[0], "getting-started.didact.md")
			if _, err := os.Stat(tutorialPath); os.IsNotExist(err) {
				starter, err := docs.FS.ReadFile(docs.StarterTutorial)
				if err != nil {
					return handleError(ErrInternal, err, "")
				}
				if err := atomicfile.WriteFile(tutorialPath, starter, 0o644); err != nil {
					return handleError(ErrFileWriteError, fmt.Errorf("failed to write starter tutorial: %w", err), "")
				}
				createdTutorial = true
			}
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config":           path,
				"created_config":   createdConfig,
				"tutorial":         tutorialPath,
				"created_tutorial": createdTutorial,
			}, nil)
			return nil
		}

		if createdConfig {
			printf("%s\n", ui.Success("Created "+ui.FilePath(path)))
		} else {
			printf("• %s already exists (kept)\n", ui.FilePath(path))
		}
		if tutorialPath != "" {
			if createdTutorial {
				printf("%s\n", ui.Success("Created "+ui.FilePath(tutorialPath)))
			} else {
				printf("• %s already exists (kept)\n", ui.FilePath(tutorialPath))
			}
			printf("\nRun 'didact open %s' to start.\n", tutorialPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
