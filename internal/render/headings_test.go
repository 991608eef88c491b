package render

import "testing"

func TestExtractHeadings(t *testing.T) {
	content := "# Title\n\nText\n\n## Section *one*\n\n### `code` part\n"
	headings := ExtractHeadings(content)

	want := []Heading{
		{Level: 1, Text: "Title", Line: 1},
		{Level: 2, Text: "Section one", Line: 5},
		{Level: 3, Text: "code part", Line: 7},
	}
	if len(headings) != len(want) {
		t.Fatalf("ExtractHeadings() = %#v, want %#v", headings, want)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Fatalf("heading %d = %#v, want %#v", i, headings[i], want[i])
		}
	}
}

func TestFirstHeadingText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single h1",
			content: "## This would be the H2 heading, but should not be picked\n\n# This should be the H1 heading\n",
			want:    "This should be the H1 heading",
		},
		{
			name:    "multiple h1",
			content: "# This should be the first H1 heading\n\n# This would be a second H1 heading, but should not be picked\n",
			want:    "This should be the first H1 heading",
		},
		{
			name:    "h2 over h3",
			content: "### This would be the H3 heading, but should not be picked\n\n## This should be the H2 heading\n",
			want:    "This should be the H2 heading",
		},
		{
			name:    "no headings",
			content: "Just a paragraph.\n\n- and a list\n",
			want:    "",
		},
		{
			name:    "front matter ignored",
			content: "---\ntitle: Meta\n---\nBody only\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstHeadingText(tt.content); got != tt.want {
				t.Fatalf("FirstHeadingText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractDidactLinks(t *testing.T) {
	content := `# Setup

Check [Maven](didact://?commandId=didact.cliCommandSuccessful&text=maven-status$$mvn%20--version)
and read [the docs](https://example.com).

<didact://?commandId=didact.validateAllRequirements>
`
	links := ExtractDidactLinks(content)
	want := []string{
		"didact://?commandId=didact.cliCommandSuccessful&text=maven-status$$mvn%20--version",
		"didact://?commandId=didact.validateAllRequirements",
	}
	if len(links) != len(want) {
		t.Fatalf("ExtractDidactLinks() = %q, want %q", links, want)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Fatalf("link %d = %q, want %q", i, links[i], want[i])
		}
	}
}

func TestSplitFrontmatter(t *testing.T) {
	fm, body, err := SplitFrontmatter("---\ntitle: Intro\ncategory: Basics\n---\n# Hello\n")
	if err != nil {
		t.Fatalf("SplitFrontmatter() error = %v", err)
	}
	if fm == nil || fm.Title != "Intro" || fm.Category != "Basics" {
		t.Fatalf("unexpected front matter %#v", fm)
	}
	if body != "# Hello\n" {
		t.Fatalf("body = %q", body)
	}

	fm, body, err = SplitFrontmatter("# No front matter")
	if err != nil || fm != nil || body != "# No front matter" {
		t.Fatalf("got (%#v, %q, %v)", fm, body, err)
	}

	if _, err := ParseFrontmatter("---\n: [\n---\n"); err == nil {
		t.Fatalf("expected YAML error")
	}
}
