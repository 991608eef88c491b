package slugs

import "testing"

func TestComponentSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Apache Camel", "apache-camel"},
		{"My Awesome Tutorial", "my-awesome-tutorial"},
		{"UPPER CASE", "upper-case"},
		{"intro.didact.md", "intro"},
		{"setup.didact.adoc", "setup"},
		{"notes.md", "notes"},
		{"Special: Characters!", "special-characters"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ComponentSlug(tt.in); got != tt.want {
				t.Fatalf("ComponentSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTutorialID(t *testing.T) {
	if got := TutorialID("Didact Demos", "Simple Example"); got != "didact-demos/simple-example" {
		t.Fatalf("TutorialID() = %q", got)
	}
}
