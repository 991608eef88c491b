// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aidanlsb/didact/internal/config"
	"github.com/aidanlsb/didact/internal/logging"
	"github.com/aidanlsb/didact/internal/ui"
)

var (
	// Global flags
	configPath        string
	statePathFlag     string
	workspaceFlag     []string
	extensionPathFlag string
	verbose           bool

	// Resolved values
	resolvedConfigPath string
	resolvedStatePath  string
	cfg                *config.Config
	sess               *session

	// stdin and stderr are replaced by tests.
	stdin  io.Reader = os.Stdin
	stderr io.Writer = os.Stderr
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "didact",
	Short: "Didact - run interactive tutorials from the terminal",
	Long: `Didact runs markdown tutorials whose didact:// links execute commands:
copy text, run shell checks, verify requirements and open other tutorials.

Open a tutorial with 'didact open', then run its links with 'didact run'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip session setup for commands that don't need it
		switch cmd.Name() {
		case "init", "completion", "help", "version", "commands", "complete":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return setupError(ErrConfigInvalid, fmt.Sprintf("failed to load config: %v", err), "Check the file given by --config")
		}
		resolvedStatePath = config.ResolveStatePath(statePathFlag, resolvedConfigPath, cfg)
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		log, err := logging.New(logging.Options{Level: level, Writer: stderr})
		if err != nil {
			return setupError(ErrConfigInvalid, err.Error(), "Use one of: debug, info, warn, error")
		}

		sess, err = newSession(sessionOptions{
			Config:        cfg,
			ConfigPath:    resolvedConfigPath,
			StatePath:     resolvedStatePath,
			Workspace:     workspaceFlag,
			ExtensionPath: extensionPathFlag,
			Log:           log,
		})
		if err != nil {
			return setupError(ErrStateInvalid, fmt.Sprintf("failed to load state: %v", err), "Remove or fix "+resolvedStatePath)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if sess == nil {
			return nil
		}
		defer func() {
			sess.close()
			sess = nil
		}()
		if err := sess.saveState(); err != nil {
			sess.log.Warn("failed to save panel state", zap.String("path", resolvedStatePath), zap.Error(err))
		}
		return nil
	},
}

// errReported stops a command whose failure was already written as JSON.
var errReported = errors.New("error already reported")

// setupError reports a failure before the command runs. Unlike handleError it
// always stops the command.
func setupError(code, message, suggestion string) error {
	if jsonOutput {
		outputError(code, message, nil, suggestion)
		return errReported
	}
	return errors.New(message)
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&statePathFlag, "state", "", "Path to state file (overrides state_file in config)")
	rootCmd.PersistentFlags().StringSliceVar(&workspaceFlag, "workspace", nil, "Workspace folder (repeatable; the first is the project root)")
	rootCmd.PersistentFlags().StringVar(&extensionPathFlag, "extension-path", "", "Base directory for srcFilePath links")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Log link processing to stderr")
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
