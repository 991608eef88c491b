package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/didact/internal/protocol"
)

// RunFunc executes a catalog command with arguments converted from the command line.
type RunFunc func(cmd *cobra.Command, id string, args protocol.ArgList) error

// GenerateCobraCommand creates a Cobra command from catalog metadata.
// The command name is the ID without the "didact." prefix. Positional arguments are
// converted by kind: paths are made absolute, numbers are coerced, everything else is
// passed as text.
func GenerateCobraCommand(id string, run RunFunc) *cobra.Command {
	meta, ok := Registry[id]
	if !ok {
		return nil
	}

	name := strings.TrimPrefix(id, IDPrefix)

	// Build Use string
	use := name
	for _, arg := range meta.Args {
		if arg.Required {
			use += fmt.Sprintf(" <%s>", arg.Name)
		} else {
			use += fmt.Sprintf(" [%s]", arg.Name)
		}
	}

	// Build Long description
	longDesc := meta.Description
	if meta.LongDesc != "" {
		longDesc = meta.LongDesc
	}
	if len(meta.Examples) > 0 {
		longDesc += "\n\nExample links:\n"
		for _, ex := range meta.Examples {
			longDesc += "  " + ex + "\n"
		}
	}

	minArgs := 0
	maxArgs := len(meta.Args)
	for _, arg := range meta.Args {
		if arg.Required {
			minArgs++
		}
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: meta.Description,
		Long:  longDesc,
	}

	if minArgs == maxArgs {
		if minArgs == 0 {
			cmd.Args = cobra.NoArgs
		} else {
			cmd.Args = cobra.ExactArgs(minArgs)
		}
	} else {
		cmd.Args = cobra.RangeArgs(minArgs, maxArgs)
	}

	if len(meta.Args) > 0 {
		cmd.ValidArgsFunction = generateCompletionFunc(meta.Args)
	}

	if run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			converted, err := ConvertArgs(meta.Args, args)
			if err != nil {
				return err
			}
			return run(cmd, id, converted)
		}
	}

	return cmd
}

// ConvertArgs turns command-line strings into link arguments according to metadata.
// Arguments beyond the metadata are passed as text.
func ConvertArgs(metas []ArgMeta, raw []string) (protocol.ArgList, error) {
	out := make(protocol.ArgList, 0, len(raw))
	for i, value := range raw {
		kind := ArgText
		if i < len(metas) {
			kind = metas[i].Kind
		}
		switch kind {
		case ArgPath:
			abs, err := filepath.Abs(value)
			if err != nil {
				return nil, fmt.Errorf("resolve path %q: %w", value, err)
			}
			out = append(out, protocol.PathArg{Path: abs})
		case ArgNumber:
			out = append(out, protocol.ResolveNumber(value))
		default:
			out = append(out, protocol.TextArg{Text: value})
		}
	}
	return out, nil
}

// generateCompletionFunc creates a shell completion function based on arg metadata.
func generateCompletionFunc(args []ArgMeta) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, completedArgs []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		argIndex := len(completedArgs)
		if argIndex >= len(args) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if args[argIndex].Kind == ArgPath {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
