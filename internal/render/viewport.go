package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-tag/internal/core"
)

// Viewport maps world coordinates to terminal cells.
//
// The visible area is the arena plus padding, centered on the camera. It is
// scaled uniformly to fit the terminal, taking into account that a cell is
// CellAspect times taller than it is wide, and centered in the free space.
type Viewport struct {
	Width, Height int // Drawable area in cells

	center  mgl64.Vec2 // Camera position in world units
	extents mgl64.Vec2 // Half size of the visible area in world units
	aspect  float64

	scale   float64 // Columns per world unit; rows per unit is scale / aspect
	offsetX float64
	offsetY float64
}

// NewViewport fits the visible area described by center and extents into a
// width x height cell grid.
func NewViewport(width, height int, center, extents mgl64.Vec2, cellAspect float64) Viewport {
	vp := Viewport{center: center, extents: extents, aspect: cellAspect}
	vp.Resize(width, height)
	return vp
}

// Resize refits the view to a new grid size.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)

	viewW := 2 * v.extents.X()
	viewH := 2 * v.extents.Y()
	if viewW <= 0 || viewH <= 0 || v.aspect <= 0 {
		v.scale = 0
		return
	}

	// Fill the width, then shrink if the height does not fit
	v.scale = float64(v.Width) / viewW
	if rows := viewH * v.scale / v.aspect; rows > float64(v.Height) {
		v.scale = float64(v.Height) * v.aspect / viewH
	}

	v.offsetX = (float64(v.Width) - viewW*v.scale) / 2
	v.offsetY = (float64(v.Height) - viewH*v.scale/v.aspect) / 2
}

// Scale returns columns per world unit.
func (v Viewport) Scale() float64 {
	return v.scale
}

// ToCell projects a world point to fractional cell coordinates.
func (v Viewport) ToCell(p mgl64.Vec2) (float64, float64) {
	local := p.Sub(v.center).Add(v.extents)
	return v.offsetX + local.X()*v.scale, v.offsetY + local.Y()*v.scale/v.aspect
}

// CellRect returns the half-open cell range [x0, x1) x [y0, y1) covered by r,
// clipped to the grid. ok is false when nothing is visible.
func (v Viewport) CellRect(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	if v.scale == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY := v.ToCell(r.Min())
	maxX, maxY := v.ToCell(r.Max())

	x0, x1 = cellSpan(minX, maxX)
	y0, y1 = cellSpan(minY, maxY)

	x0, x1 = max(x0, 0), min(x1, v.Width)
	y0, y1 = max(y0, 0), min(y1, v.Height)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}
