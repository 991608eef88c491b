package docs

import (
	"strings"
	"testing"
)

func TestStarterTutorialEmbedded(t *testing.T) {
	data, err := FS.ReadFile(StarterTutorial)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", StarterTutorial, err)
	}
	if !strings.Contains(string(data), "didact://?commandId=didact.validateAllRequirements") {
		t.Fatalf("starter tutorial has no requirement validation link")
	}
}
