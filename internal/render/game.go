package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
	"github.com/vovakirdan/tui-tag/internal/tag"
)

// statusRows is the number of rows reserved below the arena for the status line.
const statusRows = 1

// GameRenderer draws a Game: arena borders in the tagged player's color,
// every player's box, a countdown bar per player above the arena and a
// status line.
type GameRenderer struct {
	game  *tag.Game
	cfg   config.RenderConfig
	title string

	batch   *BoxBatch
	vp      Viewport
	borders [4]core.Rect
}

// NewGameRenderer creates a renderer for game. title is shown at the start of
// the status line.
func NewGameRenderer(game *tag.Game, cfg config.RenderConfig, title string) *GameRenderer {
	r := &GameRenderer{
		game:  game,
		cfg:   cfg,
		title: title,
		batch: NewBoxBatch(MaxBoxes),
	}
	r.borders = borderRects(game.World().Extents(), cfg.BorderThickness)
	return r
}

// borderRects returns the top, left, bottom and right borders, each lying
// just outside the arena. The horizontal borders also cover the corners.
func borderRects(worldExtents mgl64.Vec2, thickness float64) [4]core.Rect {
	ex, ey := worldExtents.X(), worldExtents.Y()
	half := thickness / 2
	outer := worldExtents.Add(mgl64.Vec2{thickness, thickness})

	return [4]core.Rect{
		core.NewRect(mgl64.Vec2{0, -ey - half}, mgl64.Vec2{outer.X(), half}),
		core.NewRect(mgl64.Vec2{-ex - half, 0}, mgl64.Vec2{half, outer.Y()}),
		core.NewRect(mgl64.Vec2{0, ey + half}, mgl64.Vec2{outer.X(), half}),
		core.NewRect(mgl64.Vec2{ex + half, 0}, mgl64.Vec2{half, outer.Y()}),
	}
}

// Resize refits the viewport to a width x height screen.
func (r *GameRenderer) Resize(width, height int) {
	extents := r.game.World().Extents().Add(mgl64.Vec2{r.cfg.BorderPaddingX, r.cfg.BorderPaddingY})
	// The camera sits above the arena center to make room for the score bars
	center := mgl64.Vec2{0, -r.cfg.CameraOffset}
	r.vp = NewViewport(width, max(height-statusRows, 0), center, extents, r.cfg.CellAspect)
}

// Viewport returns the current projection.
func (r *GameRenderer) Viewport() Viewport {
	return r.vp
}

// ScoreRect returns the countdown bar of p. The bars sit above the arena in
// equal columns; each bar's width shrinks with the player's remaining time.
func (r *GameRenderer) ScoreRect(p *tag.Player) core.Rect {
	w := r.game.World()
	size, extents := w.Size(), w.Extents()
	n := float64(w.NumPlayers())

	widthPerPlayer := size.X() / n
	maxWidth := widthPerPlayer - r.cfg.ScorePadding
	width := maxWidth * p.TimeRemainingRatio()

	x := -extents.X() + float64(p.ID())/n*size.X() + widthPerPlayer/2
	y := -extents.Y() - r.cfg.ScoreOffset

	return core.NewRect(mgl64.Vec2{x, y}, mgl64.Vec2{width / 2, r.cfg.ScoreHeight / 2})
}

// Render draws the current frame into dst, resizing the viewport if the
// screen size changed. It fails only when the box budget is exceeded.
func (r *GameRenderer) Render(dst *core.Screen) error {
	if dst.Width() != r.vp.Width || dst.Height()-statusRows != r.vp.Height {
		r.Resize(dst.Width(), dst.Height())
	}

	dst.Clear()
	r.batch.Reset()

	w := r.game.World()
	borderColor := core.ColorWhite
	if p := w.Tagged(); p != nil {
		borderColor = p.Color()
	}
	for _, b := range r.borders {
		if err := r.batch.Add(b, borderColor); err != nil {
			return fmt.Errorf("render: border: %w", err)
		}
	}
	for _, p := range w.Players() {
		if err := r.batch.Add(p.Rect(), p.Color()); err != nil {
			return fmt.Errorf("render: player %d: %w", p.ID(), err)
		}
		if err := r.batch.Add(r.ScoreRect(p), p.Color()); err != nil {
			return fmt.Errorf("render: score %d: %w", p.ID(), err)
		}
	}

	scope, err := r.batch.Bind(dst, r.vp)
	if err != nil {
		return err
	}
	defer scope.Release()
	scope.Draw()

	r.drawStatus(dst)
	return nil
}

func (r *GameRenderer) drawStatus(dst *core.Screen) {
	y := dst.Height() - 1
	if y < 0 {
		return
	}

	var msg string
	color := core.ColorGray
	switch {
	case r.game.State() == tag.RoundEnded:
		if p, ok := r.game.Winner(); ok {
			msg = strings.ToUpper(p.Color().String()) + " WINS! space: new round"
			color = p.Color()
		}
	case r.game.World().Tagged() != nil:
		p := r.game.World().Tagged()
		msg = strings.ToUpper(p.Color().String()) + " is it"
		color = p.Color()
	default:
		msg = "touch another player to start"
	}

	dst.DrawText(0, y, fmt.Sprintf("%s  %s", r.title, msg), color)
}
