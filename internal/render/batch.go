// Package render draws a tag World into a terminal cell buffer as colored boxes.
package render

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
)

// MaxBoxes is the per-frame budget: four border boxes plus a body and a
// score bar for every possible player.
const MaxBoxes = 4 + 2*config.MaxPlayers

// Glyph used to fill boxes.
const fillRune = '█'

var (
	// ErrBoxBudgetExceeded means more boxes were queued than the batch holds.
	// It points at a mismatch between the budget and the roster and is not retried.
	ErrBoxBudgetExceeded = errors.New("render: box budget exceeded")

	// ErrAlreadyBound means Bind was called on a batch that is still bound.
	ErrAlreadyBound = errors.New("render: batch already bound")
)

// Box is one colored rectangle in world coordinates.
type Box struct {
	Rect  core.Rect
	Color core.Color
}

// BoxBatch is a fixed-capacity list of boxes drawn together. It is owned by a
// single renderer and reused every frame.
type BoxBatch struct {
	boxes []Box
	bound bool
}

// NewBoxBatch allocates a batch for capacity boxes.
func NewBoxBatch(capacity int) *BoxBatch {
	return &BoxBatch{boxes: make([]Box, 0, capacity)}
}

// Reset empties the batch, keeping its storage.
func (b *BoxBatch) Reset() {
	b.boxes = b.boxes[:0]
}

// Add queues a box. It fails once the batch is full.
func (b *BoxBatch) Add(r core.Rect, c core.Color) error {
	if len(b.boxes) == cap(b.boxes) {
		return ErrBoxBudgetExceeded
	}
	b.boxes = append(b.boxes, Box{Rect: r, Color: c})
	return nil
}

// Len returns the number of queued boxes.
func (b *BoxBatch) Len() int {
	return len(b.boxes)
}

// Cap returns the box budget.
func (b *BoxBatch) Cap() int {
	return cap(b.boxes)
}

// Boxes returns the queued boxes. The slice is reused by the next Reset.
func (b *BoxBatch) Boxes() []Box {
	return b.boxes
}

// Bind attaches the batch to a render target. The returned scope must be
// released, typically with defer, before the batch can be bound again.
func (b *BoxBatch) Bind(dst *core.Screen, vp Viewport) (*BindScope, error) {
	if b.bound {
		return nil, ErrAlreadyBound
	}
	b.bound = true
	return &BindScope{batch: b, dst: dst, vp: vp}, nil
}

// BindScope is an active binding of a batch to a screen.
type BindScope struct {
	batch    *BoxBatch
	dst      *core.Screen
	vp       Viewport
	released bool
}

// Draw rasterizes every queued box onto the bound screen, in queue order.
func (s *BindScope) Draw() {
	if s.released {
		return
	}
	for _, box := range s.batch.boxes {
		x0, y0, x1, y1, ok := s.vp.CellRect(box.Rect)
		if !ok {
			continue
		}
		s.dst.FillRect(x0, y0, x1-x0, y1-y0, fillRune, box.Color)
	}
}

// Release unbinds the batch. Releasing twice is a no-op.
func (s *BindScope) Release() {
	if s.released {
		return
	}
	s.released = true
	s.batch.bound = false
}

// cellSpan maps a world-space interval, already projected to cell units, to a
// half-open cell range. Anything with a positive size covers at least one cell.
func cellSpan(lo, hi float64) (int, int) {
	a := int(math.Round(lo))
	b := int(math.Round(hi))
	if b <= a && hi > lo {
		b = a + 1
	}
	return a, b
}
