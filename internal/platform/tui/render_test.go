package tui

import (
	"testing"

	"github.com/vovakirdan/tui-tag/internal/core"
)

func TestRenderScreenPlainProfile(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "red", core.ColorRed)
	s.DrawText(4, 0, "blue", core.ColorBlue)
	s.FillRect(0, 2, 5, 1, '█', core.ColorGreen)

	got := plainPalette().RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen() =\n%q\nexpected\n%q", got, s.String())
	}
}

func TestPaletteCoversColors(t *testing.T) {
	p := NewPalette(nil)
	for _, c := range []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorWhite, core.ColorGray,
	} {
		if _, ok := p[c]; !ok {
			t.Errorf("palette has no style for %v", c)
		}
	}
}
