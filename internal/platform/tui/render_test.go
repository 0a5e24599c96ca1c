package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/buggy-racer/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Lap")
	s.DrawTextColored(4, 0, "1", core.ColorYellow)
	s.DrawTextColored(0, 1, "CRASH!", core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "Lap") || !strings.Contains(lines[0], "1") {
		t.Errorf("first line %q should contain the lap label", lines[0])
	}
	if !strings.Contains(lines[1], "CRASH!") {
		t.Errorf("second line %q should contain the crash banner", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorYellow, core.ColorCyan,
		core.ColorGray, core.ColorOrange, core.ColorBrightRed, core.ColorBrightWhite,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %v", c)
		}
	}
}
