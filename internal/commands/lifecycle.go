package commands

import "strings"

// requirementCommandIDs lists command IDs that record requirement statuses.
// Tutorials gather links to these commands to build their requirement list.
var requirementCommandIDs = map[string]struct{}{
	"didact.cliCommandSuccessful":       {},
	"didact.requirementCheck":           {},
	"didact.extensionRequirementCheck":  {},
	"didact.workspaceFolderExistsCheck": {},
}

func init() {
	for id := range requirementCommandIDs {
		meta, ok := Registry[id]
		if !ok {
			continue
		}
		meta.Requirement = true
		Registry[id] = meta
	}
}

// IsRequirementCommand reports whether id records a requirement status.
func IsRequirementCommand(id string) bool {
	_, ok := requirementCommandIDs[id]
	return ok
}

// RequirementCommandIDs returns the IDs of requirement commands.
func RequirementCommandIDs() map[string]bool {
	out := make(map[string]bool, len(requirementCommandIDs))
	for id := range requirementCommandIDs {
		out[id] = true
	}
	return out
}

// ResolveCommandID resolves a full or short command name to a catalog ID.
// Example: "copyToClipboard" -> "didact.copyToClipboard"
func ResolveCommandID(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}

	if _, ok := Registry[trimmed]; ok {
		return trimmed, true
	}

	prefixed := IDPrefix + trimmed
	if _, ok := Registry[prefixed]; ok {
		return prefixed, true
	}

	return "", false
}
