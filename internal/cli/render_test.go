package cli

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "By Category",
		Headers: []string{"Category", "Total"},
		Rows: [][]string{
			{"Food", "$15.50"},
			{"Travel", "$20.00"},
			{"---"},
			{"Total", "$35.50"},
		},
	})

	for _, want := range []string{"By Category", "Category", "Food", "$15.50", "Travel", "$35.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Header rule, separator row, top and bottom borders
	if n := strings.Count(out, "├"); n != 2 {
		t.Errorf("got %d mid rules, want 2", n)
	}
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╰") {
		t.Error("missing table borders")
	}
	if strings.Contains(out, "---") {
		t.Error("separator marker leaked into output")
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("empty table = %q, want empty string", out)
	}
}
