package ui

import (
	"strings"
	"testing"
)

func TestRequirementSymbols(t *testing.T) {
	passed, failed := true, false

	tests := []struct {
		name   string
		status *bool
		symbol string
	}{
		{name: "pending", status: nil, symbol: SymbolPending},
		{name: "passed", status: &passed, symbol: SymbolSuccess},
		{name: "failed", status: &failed, symbol: SymbolError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Requirement("maven", tt.status)
			if !strings.HasPrefix(got, tt.symbol+" ") {
				t.Fatalf("Requirement()=%q, want prefix %q", got, tt.symbol)
			}
			if !strings.Contains(got, "maven") {
				t.Fatalf("Requirement()=%q, missing label", got)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "panel", "panels"); got != "(1 panel)" {
		t.Fatalf("Count(1)=%q", got)
	}
	if got := Count(3, "panel", "panels"); got != "(3 panels)" {
		t.Fatalf("Count(3)=%q", got)
	}
}

func TestTableAlignsColumns(t *testing.T) {
	table := NewTable(2)
	table.AddRow("a", "first")
	table.AddRow("longer", "second")

	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if strings.Index(lines[0], "first") != strings.Index(lines[1], "second") {
		t.Fatalf("columns not aligned: %q", lines)
	}
	if NewTable(1).String() != "" {
		t.Fatalf("expected empty table to render nothing")
	}
}

func TestDisplayContextNonTerminal(t *testing.T) {
	var sb strings.Builder
	d := NewDisplayContext(&sb)
	if d.IsTTY {
		t.Fatalf("expected builder to be reported as non-tty")
	}
	if d.TermWidth != DefaultTermWidth {
		t.Fatalf("TermWidth=%d, want %d", d.TermWidth, DefaultTermWidth)
	}
	if got := (&DisplayContext{TermWidth: 10}).MarkdownWidth(); got != 20 {
		t.Fatalf("MarkdownWidth()=%d, want 20", got)
	}
}
