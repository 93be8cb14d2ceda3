package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-tag/internal/core"
)

func TestViewportFit(t *testing.T) {
	center := mgl64.Vec2{0, -0.75}
	extents := mgl64.Vec2{16, 12}

	tests := []struct {
		name       string
		w, h       int
		scale      float64
		offX, offY float64
	}{
		{"exact fit", 64, 24, 2, 0, 0},
		{"wide terminal", 100, 24, 2, 18, 0},
		{"tall terminal", 64, 40, 2, 0, 8},
		{"height bound", 64, 12, 1, 16, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vp := NewViewport(tc.w, tc.h, center, extents, 2)
			if vp.Scale() != tc.scale {
				t.Errorf("Scale() = %g, expected %g", vp.Scale(), tc.scale)
			}
			x, y := vp.ToCell(mgl64.Vec2{-16, -12.75})
			if x != tc.offX || y != tc.offY {
				t.Errorf("top left maps to (%g, %g), expected (%g, %g)", x, y, tc.offX, tc.offY)
			}
		})
	}
}

func TestViewportCameraCenter(t *testing.T) {
	vp := NewViewport(64, 24, mgl64.Vec2{0, -0.75}, mgl64.Vec2{16, 12}, 2)
	x, y := vp.ToCell(mgl64.Vec2{0, -0.75})
	if x != 32 || y != 12 {
		t.Errorf("camera center maps to (%g, %g), expected (32, 12)", x, y)
	}
}

func TestViewportCellRectClips(t *testing.T) {
	vp := NewViewport(10, 10, mgl64.Vec2{}, mgl64.Vec2{5, 5}, 1)

	x0, y0, x1, y1, ok := vp.CellRect(core.NewRect(mgl64.Vec2{5, 0}, mgl64.Vec2{2, 1}))
	if !ok || x0 != 8 || x1 != 10 || y0 != 4 || y1 != 6 {
		t.Errorf("CellRect = [%d,%d)x[%d,%d) ok=%v", x0, x1, y0, y1, ok)
	}

	if _, _, _, _, ok := vp.CellRect(core.NewRect(mgl64.Vec2{20, 0}, mgl64.Vec2{1, 1})); ok {
		t.Error("off-screen rect should not be visible")
	}

	empty := NewViewport(0, 0, mgl64.Vec2{}, mgl64.Vec2{5, 5}, 1)
	if _, _, _, _, ok := empty.CellRect(core.NewRect(mgl64.Vec2{}, mgl64.Vec2{1, 1})); ok {
		t.Error("zero sized viewport should draw nothing")
	}
}
