package render

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
	"github.com/vovakirdan/tui-tag/internal/tag"
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

func newTestRenderer(t *testing.T, params tag.Params, n int) (*GameRenderer, *tag.Game) {
	t.Helper()
	g, err := tag.NewGame(params, n, firstPicker{})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return NewGameRenderer(g, config.DefaultTagConfig().Render, "tag v1.0.0"), g
}

// 64x25 gives a 64x24 arena view at 2 columns per world unit.
func renderFrame(t *testing.T, r *GameRenderer) *core.Screen {
	t.Helper()
	dst := core.NewScreen(64, 25)
	if err := r.Render(dst); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return dst
}

func TestRenderBorderColor(t *testing.T) {
	r, g := newTestRenderer(t, tag.DefaultParams(), 2)

	// The top border spans rows [3, 4) and columns [7, 57)
	dst := renderFrame(t, r)
	if c := dst.GetCell(32, 3); c.Rune != fillRune || c.Color != core.ColorWhite {
		t.Errorf("untagged border cell = %+v, expected white fill", c)
	}

	g.World().SetTagged(1)
	dst = renderFrame(t, r)
	for _, pos := range [][2]int{{32, 3}, {7, 12}} {
		if c := dst.GetCell(pos[0], pos[1]); c.Color != core.ColorGreen {
			t.Errorf("border cell %v = %+v, expected green", pos, c)
		}
	}
}

func TestRenderPlayers(t *testing.T) {
	r, _ := newTestRenderer(t, tag.DefaultParams(), 2)
	dst := renderFrame(t, r)

	// Player 0 at (-4, -3) covers columns [23, 25) of row 9
	if c := dst.GetCell(24, 9); c.Rune != fillRune || c.Color != core.ColorRed {
		t.Errorf("player 0 cell = %+v, expected red fill", c)
	}
	// Arena interior away from players stays blank
	if c := dst.GetCell(32, 6); c.Rune != ' ' {
		t.Errorf("interior cell = %+v, expected blank", c)
	}
}

func TestScoreRect(t *testing.T) {
	params := tag.DefaultParams()
	params.MaxTime = 1
	r, g := newTestRenderer(t, params, 2)
	w := g.World()

	full := r.ScoreRect(w.Player(0))
	if full.Pos != (mgl64.Vec2{-6, -11}) || full.Extents != (mgl64.Vec2{5.5, 0.5}) {
		t.Errorf("full bar = %+v, expected pos (-6,-11) extents (5.5,0.5)", full)
	}
	if p1 := r.ScoreRect(w.Player(1)); p1.Pos.X() != 6 {
		t.Errorf("player 1 bar x = %g, expected 6", p1.Pos.X())
	}

	// Half the countdown gone halves the bar
	w.SetTagged(1)
	for range 30 {
		g.Step()
	}
	half := r.ScoreRect(w.Player(0))
	if math.Abs(half.Extents.X()-2.75) > 1e-6 {
		t.Errorf("half bar half-width = %g, expected 2.75", half.Extents.X())
	}
	if half.Pos != full.Pos {
		t.Errorf("bar stays centered in its column, got %v", half.Pos)
	}
}

func TestScoreRectColumns(t *testing.T) {
	r, g := newTestRenderer(t, tag.DefaultParams(), 4)
	for i, want := range []float64{-9, -3, 3, 9} {
		if got := r.ScoreRect(g.World().Player(i)).Pos.X(); got != want {
			t.Errorf("player %d bar x = %g, expected %g", i, got, want)
		}
	}
}

func TestRenderBudgetExceeded(t *testing.T) {
	r, _ := newTestRenderer(t, tag.DefaultParams(), 2)
	r.batch = NewBoxBatch(5)

	err := r.Render(core.NewScreen(64, 25))
	if !errors.Is(err, ErrBoxBudgetExceeded) {
		t.Fatalf("Render() = %v, expected ErrBoxBudgetExceeded", err)
	}
	// The batch must not stay bound after a failed frame
	r.batch = NewBoxBatch(MaxBoxes)
	renderFrame(t, r)
}

// statusRow returns the last screen row as plain text.
func statusRow(s *core.Screen) string {
	lines := strings.Split(s.String(), "\n")
	return lines[len(lines)-1]
}

func TestRenderStatusLine(t *testing.T) {
	r, g := newTestRenderer(t, tag.DefaultParams(), 2)

	dst := renderFrame(t, r)
	status := statusRow(dst)
	if !strings.HasPrefix(status, "tag v1.0.0") || !strings.Contains(status, "touch another player") {
		t.Errorf("status = %q", status)
	}

	g.World().SetTagged(0)
	dst = renderFrame(t, r)
	if !strings.Contains(statusRow(dst), "RED is it") {
		t.Errorf("status = %q, expected RED is it", statusRow(dst))
	}
}

func TestRenderResizes(t *testing.T) {
	r, _ := newTestRenderer(t, tag.DefaultParams(), 3)

	renderFrame(t, r)
	if vp := r.Viewport(); vp.Width != 64 || vp.Height != 24 {
		t.Fatalf("viewport = %dx%d, expected 64x24", vp.Width, vp.Height)
	}

	if err := r.Render(core.NewScreen(100, 41)); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if vp := r.Viewport(); vp.Width != 100 || vp.Height != 40 {
		t.Errorf("viewport = %dx%d, expected 100x40", vp.Width, vp.Height)
	}
}
