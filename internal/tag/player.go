package tag

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-tag/internal/core"
)

// Player is one participant. Players are only created by World.Reset and hold a
// non-owning reference back to their world.
type Player struct {
	id        int
	world     *World
	rect      core.Rect
	color     core.Color
	dir       core.Direction
	dirVector mgl64.Vec2

	speed         float64 // Always in [BaseSpeed, MaxSpeed]
	timeRemaining float64 // Always in [0, MaxTime]

	// Opponent IDs overlapping this player, used to edge-detect new collisions
	intersecting         map[int]struct{}
	intersectingLastTick map[int]struct{}
}

func newPlayer(id int, world *World, pos mgl64.Vec2, color core.Color) *Player {
	return &Player{
		id:                   id,
		world:                world,
		rect:                 core.NewRect(pos, world.params.PlayerExtents),
		color:                color,
		speed:                world.params.BaseSpeed,
		timeRemaining:        world.params.MaxTime,
		intersecting:         make(map[int]struct{}, MaxPlayers),
		intersectingLastTick: make(map[int]struct{}, MaxPlayers),
	}
}

// Tick moves the player by one step of frameTime seconds and applies the
// tag rules: the tagged player speeds up, everyone else counts down.
// Nothing but movement happens before the first tag.
func (p *Player) Tick(frameTime float64) {
	p.SetPos(p.rect.Pos.Add(p.dirVector.Mul(p.speed * frameTime)))

	if _, ok := p.world.TaggedIndex(); !ok {
		return
	}

	params := p.world.params
	if p.world.isTagged(p) {
		p.speed = math.Min(p.speed+params.Acceleration*frameTime, params.MaxSpeed)
	} else {
		p.timeRemaining = math.Max(p.timeRemaining-frameTime, 0)
	}
}

// EndTick rolls this tick's intersections into the last-tick set.
func (p *Player) EndTick() {
	p.intersecting, p.intersectingLastTick = p.intersectingLastTick, p.intersecting
	clear(p.intersecting)
}

// SetDirection steers the player. Repeating the held direction stops the player.
func (p *Player) SetDirection(newDir core.Direction) {
	if newDir == p.dir {
		p.dir = core.DirNone
		p.dirVector = mgl64.Vec2{}
		return
	}
	p.dir = newDir
	p.dirVector = newDir.Vector()
}

// SetPos moves the player, keeping it inside the arena.
func (p *Player) SetPos(pos mgl64.Vec2) {
	p.rect.Pos = p.world.KeepInBounds(pos, p.rect.Extents)
}

// ResetSpeedToBase drops the speed back to base, used when the tag moves away.
func (p *Player) ResetSpeedToBase() {
	p.speed = p.world.params.BaseSpeed
}

// WasIntersecting reports whether otherID overlapped this player last tick.
func (p *Player) WasIntersecting(otherID int) bool {
	_, ok := p.intersectingLastTick[otherID]
	return ok
}

// MarkIntersecting records that otherID overlaps this player this tick.
func (p *Player) MarkIntersecting(otherID int) {
	p.intersecting[otherID] = struct{}{}
}

// TimeRemainingRatio returns the timer as a fraction of MaxTime, in [0, 1].
func (p *Player) TimeRemainingRatio() float64 {
	return p.timeRemaining / p.world.params.MaxTime
}

// HasWon reports whether the countdown reached zero. The timer is clamped at
// exactly 0, so the equality check is exact.
func (p *Player) HasWon() bool {
	return p.timeRemaining == 0
}

// ID returns the 0-based roster index.
func (p *Player) ID() int {
	return p.id
}

// Rect returns the player's box.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Color returns the palette color.
func (p *Player) Color() core.Color {
	return p.color
}

// Direction returns the held direction.
func (p *Player) Direction() core.Direction {
	return p.dir
}

// Velocity returns the unit direction vector.
func (p *Player) Velocity() mgl64.Vec2 {
	return p.dirVector
}

// Speed returns the current speed in units per second.
func (p *Player) Speed() float64 {
	return p.speed
}

// TimeRemaining returns the countdown in seconds.
func (p *Player) TimeRemaining() float64 {
	return p.timeRemaining
}
