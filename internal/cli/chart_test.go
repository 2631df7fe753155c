package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBarChart(t *testing.T) {
	bars := []Bar{
		{Label: "Food", Value: decimal.RequireFromString("15.50")},
		{Label: "Travel", Value: decimal.RequireFromString("4.20")},
	}

	out := BarChart(bars, "$", 20, ColorAccent)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Food") || !strings.Contains(lines[0], "$15.50") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Travel") || !strings.Contains(lines[1], "$4.20") {
		t.Errorf("second line = %q", lines[1])
	}

	// Peak value fills the full width; smaller values scale down.
	if n := strings.Count(lines[0], "█"); n != 20 {
		t.Errorf("peak bar has %d blocks, want 20", n)
	}
	if n := strings.Count(lines[1], "█"); n >= 20 || n < 1 {
		t.Errorf("scaled bar has %d blocks", n)
	}
}

func TestBarChartTinyValueGetsOneBlock(t *testing.T) {
	bars := []Bar{
		{Label: "Big", Value: decimal.RequireFromString("1000")},
		{Label: "Tiny", Value: decimal.RequireFromString("0.01")},
	}

	out := BarChart(bars, "$", 20, ColorAccent)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if n := strings.Count(lines[1], "█"); n != 1 {
		t.Errorf("tiny bar has %d blocks, want 1", n)
	}
}

func TestBarChartEmpty(t *testing.T) {
	if out := BarChart(nil, "$", 20, ColorAccent); out != "" {
		t.Errorf("empty chart = %q, want empty string", out)
	}
}
