// Package commands provides the catalog of link-invokable didact commands and the
// handler registry that executes them. The catalog is the single source of truth
// for command metadata, used by the CLI, link completion and the executor.
package commands

import "sort"

// Meta defines metadata for a command that can be invoked from a didact link.
type Meta struct {
	ID          string    `json:"id"`                  // Full command ID (e.g., "didact.copyToClipboard")
	Description string    `json:"description"`         // Short description
	LongDesc    string    `json:"long_desc,omitempty"` // Long description (for --help)
	Args        []ArgMeta `json:"args,omitempty"`      // Positional arguments, in link order
	Examples    []string  `json:"examples,omitempty"`  // Example links
	Requirement bool      `json:"requirement"`         // Records a requirement status on the active panel
}

// ArgMeta defines a positional argument and the link parameter that carries it.
type ArgMeta struct {
	Name        string  `json:"name"`        // Snippet label (e.g., "Requirement-Label")
	Description string  `json:"description"` // Description
	Kind        ArgKind `json:"kind"`        // Which link parameter supplies the value
	Required    bool    `json:"required"`    // Is this argument required?
}

// ArgKind names the link parameter an argument comes from.
type ArgKind string

const (
	ArgText   ArgKind = "text"
	ArgUser   ArgKind = "user"
	ArgPath   ArgKind = "path"
	ArgNumber ArgKind = "number"
)

// IDPrefix is shared by every built-in command ID.
const IDPrefix = "didact."

// Registry holds metadata for all built-in commands.
var Registry = map[string]Meta{
	"didact.startDidact": {
		ID:          "didact.startDidact",
		Description: "Open a tutorial in a new panel",
		LongDesc: `Opens a tutorial document and makes its panel active.

If the same tutorial is already open, its panel is activated instead of opening a
second copy.`,
		Args: []ArgMeta{
			{Name: "Tutorial-Path", Description: "Tutorial file to open", Kind: ArgPath, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.startDidact&projectFilePath=docs/getting-started.didact.md",
			"didact://?commandId=didact.startDidact&srcFilePath=demos/intro.didact.md",
		},
	},
	"didact.openFile": {
		ID:          "didact.openFile",
		Description: "Show the contents of a file",
		Args: []ArgMeta{
			{Name: "File-Path", Description: "File to show", Kind: ArgPath, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.openFile&projectFilePath=README.md",
		},
	},
	"didact.copyToClipboard": {
		ID:          "didact.copyToClipboard",
		Description: "Copy text to the system clipboard",
		Args: []ArgMeta{
			{Name: "URLEncoded-Text-to-Copy", Description: "Text to copy", Kind: ArgText, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.copyToClipboard&text=npm%20install",
		},
	},
	"didact.copyFileTextToClipboard": {
		ID:          "didact.copyFileTextToClipboard",
		Description: "Copy a file's text to the system clipboard",
		Args: []ArgMeta{
			{Name: "File-Path", Description: "File whose text is copied", Kind: ArgPath, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.copyFileTextToClipboard&projectFilePath=config/sample.yaml",
		},
	},
	"didact.cliCommandSuccessful": {
		ID:          "didact.cliCommandSuccessful",
		Description: "Check that a shell command exits successfully",
		LongDesc: `Runs a shell command and records whether it exited with status 0 as a
requirement on the active tutorial panel.`,
		Args: []ArgMeta{
			{Name: "Requirement-Label", Description: "Requirement label shown in the tutorial", Kind: ArgText, Required: true},
			{Name: "URLEncoded-Command-to-Execute", Description: "Shell command to run", Kind: ArgText, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.cliCommandSuccessful&text=maven-requirements-status$$mvn%20--version",
		},
	},
	"didact.requirementCheck": {
		ID:          "didact.requirementCheck",
		Description: "Check that a shell command prints the expected text",
		Args: []ArgMeta{
			{Name: "Requirement-Label", Description: "Requirement label shown in the tutorial", Kind: ArgText, Required: true},
			{Name: "URLEncoded-Command-to-Execute", Description: "Shell command to run", Kind: ArgText, Required: true},
			{Name: "Expected-Output", Description: "Text the command output must contain", Kind: ArgText, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.requirementCheck&text=go-requirements-status$$go%20version$$go1.",
		},
	},
	"didact.extensionRequirementCheck": {
		ID:          "didact.extensionRequirementCheck",
		Description: "Check that an extension is installed",
		Args: []ArgMeta{
			{Name: "Requirement-Label", Description: "Requirement label shown in the tutorial", Kind: ArgText, Required: true},
			{Name: "Extension-ID", Description: "Extension identifier", Kind: ArgText, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.extensionRequirementCheck&text=ext-requirement-status$$redhat.vscode-didact",
		},
	},
	"didact.workspaceFolderExistsCheck": {
		ID:          "didact.workspaceFolderExistsCheck",
		Description: "Check that a workspace folder is open",
		Args: []ArgMeta{
			{Name: "Requirement-Label", Description: "Requirement label shown in the tutorial", Kind: ArgText, Required: true},
		},
		Examples: []string{
			"didact://?commandId=didact.workspaceFolderExistsCheck&text=workspace-folder-status",
		},
	},
	"didact.validateAllRequirements": {
		ID:          "didact.validateAllRequirements",
		Description: "Run every requirement check in the active tutorial",
		Examples: []string{
			"didact://?commandId=didact.validateAllRequirements",
		},
	},
	"didact.echo": {
		ID:          "didact.echo",
		Description: "Print the resolved arguments",
		LongDesc:    `Prints each resolved argument on its own line. Useful while authoring links.`,
		Args: []ArgMeta{
			{Name: "Message", Description: "Text to print", Kind: ArgText},
		},
		Examples: []string{
			"didact://?commandId=didact.echo&user=Name$$Greeting",
		},
	},
}

// GetCommandMeta returns the metadata for a command.
func GetCommandMeta(id string) (Meta, bool) {
	meta, ok := Registry[id]
	return meta, ok
}

// AllCommandIDs returns all catalogued command IDs, sorted.
func AllCommandIDs() []string {
	ids := make([]string, 0, len(Registry))
	for id := range Registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
