package tag

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
)

// Player count limits for the roster.
const (
	MinPlayers = config.MinPlayers
	MaxPlayers = config.MaxPlayers
)

// noTag marks an empty tagged slot.
const noTag = -1

// playerColors is the palette, keyed by player index.
var playerColors = [MaxPlayers]core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
}

// World is the bounded arena. It owns the player roster and the tagged slot.
// The tagged player is stored as a roster index so a rebuilt roster can never
// leave it pointing at a discarded player.
type World struct {
	params  Params
	size    mgl64.Vec2
	extents mgl64.Vec2
	players []*Player
	tagged  int
}

// NewWorld creates an arena of params.WorldSize with numPlayers players.
func NewWorld(params Params, numPlayers int) *World {
	w := &World{
		params:  params,
		size:    params.WorldSize,
		extents: params.WorldSize.Mul(0.5),
		tagged:  noTag,
	}
	w.Reset(numPlayers)
	return w
}

// Reset rebuilds the roster for n players at their spawn positions and clears the tag.
// The count is clamped to [MinPlayers, MaxPlayers]; callers validate user input first.
func (w *World) Reset(n int) {
	n = core.Clamp(n, MinPlayers, MaxPlayers)
	w.tagged = noTag

	w.players = make([]*Player, n)
	for i := range w.players {
		w.players[i] = newPlayer(i, w, spawnPosition(i, n, w.params.SpawnOrigin), playerColors[i])
	}
}

// ResetSamePlayerCount rebuilds the roster keeping its current size.
func (w *World) ResetSamePlayerCount() {
	w.Reset(len(w.players))
}

// spawnPosition returns the fixed start point of player i in an n-player game.
// With three players, player 0 starts at the top center so that the three
// spawns stay spread out.
func spawnPosition(i, n int, origin mgl64.Vec2) mgl64.Vec2 {
	ox, oy := origin.X(), origin.Y()
	switch i {
	case 0:
		if n == 3 {
			return mgl64.Vec2{0, -oy}
		}
		return mgl64.Vec2{-ox, -oy}
	case 1:
		return mgl64.Vec2{ox, oy}
	case 2:
		return mgl64.Vec2{-ox, oy}
	default:
		return mgl64.Vec2{ox, -oy}
	}
}

// KeepInBounds clamps pos so that an object with the given half-extents stays
// inside the arena. Each axis is clamped independently. An object at least as
// large as the arena on an axis is pinned to the center of that axis.
func (w *World) KeepInBounds(pos, objExtents mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		clampAxis(pos.X(), w.extents.X()-objExtents.X()),
		clampAxis(pos.Y(), w.extents.Y()-objExtents.Y()),
	}
}

// clampAxis clamps v into [-limit, limit]; a negative limit collapses the range to 0.
func clampAxis(v, limit float64) float64 {
	if limit < 0 {
		limit = 0
	}
	return core.ClampF(v, -limit, limit)
}

// AspectRatio returns width / height.
func (w *World) AspectRatio() float64 {
	return w.size.X() / w.size.Y()
}

// Size returns the full width and height.
func (w *World) Size() mgl64.Vec2 {
	return w.size
}

// Extents returns half of Size.
func (w *World) Extents() mgl64.Vec2 {
	return w.extents
}

// Params returns the simulation constants.
func (w *World) Params() Params {
	return w.params
}

// Players returns the roster in index order.
func (w *World) Players() []*Player {
	return w.players
}

// NumPlayers returns the roster length.
func (w *World) NumPlayers() int {
	return len(w.players)
}

// Player returns the player in slot i, or nil if the slot is not active.
func (w *World) Player(i int) *Player {
	if i < 0 || i >= len(w.players) {
		return nil
	}
	return w.players[i]
}

// Tagged returns the tagged player, or nil if nobody is tagged yet.
func (w *World) Tagged() *Player {
	if w.tagged == noTag {
		return nil
	}
	return w.players[w.tagged]
}

// TaggedIndex returns the tagged slot and whether anybody is tagged.
func (w *World) TaggedIndex() (int, bool) {
	return w.tagged, w.tagged != noTag
}

// SetTagged marks player i as tagged. Out-of-roster indexes clear the tag.
func (w *World) SetTagged(i int) {
	if i < 0 || i >= len(w.players) {
		w.tagged = noTag
		return
	}
	w.tagged = i
}

// ClearTagged empties the tagged slot.
func (w *World) ClearTagged() {
	w.tagged = noTag
}

// isTagged reports whether p is the tagged player.
func (w *World) isTagged(p *Player) bool {
	return w.tagged != noTag && w.tagged == p.id
}
