package tag

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-tag/internal/config"
)

// Params holds the simulation constants of one session.
type Params struct {
	WorldSize     mgl64.Vec2
	SpawnOrigin   mgl64.Vec2 // Absolute (positive) spawn offset from the arena center
	PlayerExtents mgl64.Vec2
	BaseSpeed     float64
	MaxSpeed      float64
	Acceleration  float64 // Speed gained per second while tagged
	MaxTime       float64 // Countdown length in seconds
	FrameTime     float64 // Seconds of simulated time per tick
}

// ParamsFromConfig derives simulation constants from a validated configuration.
func ParamsFromConfig(cfg config.TagConfig) Params {
	return Params{
		WorldSize:     mgl64.Vec2{cfg.World.Width, cfg.World.Height},
		SpawnOrigin:   mgl64.Vec2{cfg.World.SpawnOriginX, cfg.World.SpawnOriginY},
		PlayerExtents: mgl64.Vec2{cfg.Player.HalfExtent, cfg.Player.HalfExtent},
		BaseSpeed:     cfg.Player.BaseSpeed,
		MaxSpeed:      cfg.Player.MaxSpeed,
		Acceleration:  cfg.Player.Acceleration(),
		MaxTime:       cfg.Player.MaxTime,
		FrameTime:     1.0 / float64(cfg.Loop.TickRate),
	}
}

// DefaultParams returns the constants of the standard game: a 24x18 arena,
// speeds ramping from 10 to 12.5 units/s over 7 s, a 40 s timer and 60 ticks/s.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultTagConfig())
}
