// Package config provides YAML-based configuration loading and validation for
// the tag arena.
package config

import (
	"errors"
	"fmt"
)

// Player count limits for a session.
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// ErrInvalidPlayerCount is returned when a player count is outside [MinPlayers, MaxPlayers].
var ErrInvalidPlayerCount = errors.New("config: invalid player count")

// TagConfig contains all tunables of the game.
type TagConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Render RenderConfig `yaml:"render"`
	Loop   LoopConfig   `yaml:"loop"`
}

// WorldConfig defines the arena.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnOriginX float64 `yaml:"spawn_origin_x"` // Absolute spawn offset from the center
	SpawnOriginY float64 `yaml:"spawn_origin_y"`
}

// PlayerConfig defines player movement, the speed ramp and the countdown timer.
type PlayerConfig struct {
	HalfExtent     float64 `yaml:"half_extent"`
	BaseSpeed      float64 `yaml:"base_speed"`        // Units per second
	MaxSpeed       float64 `yaml:"max_speed"`         // Units per second
	TimeToMaxSpeed float64 `yaml:"time_to_max_speed"` // Seconds of being tagged to reach MaxSpeed
	MaxTime        float64 `yaml:"max_time"`          // Countdown length in seconds
}

// Acceleration returns the speed gained per second while tagged.
func (p PlayerConfig) Acceleration() float64 {
	return (p.MaxSpeed - p.BaseSpeed) / p.TimeToMaxSpeed
}

// RenderConfig defines arena decoration, in world units.
type RenderConfig struct {
	BorderThickness float64 `yaml:"border_thickness"`
	BorderPaddingX  float64 `yaml:"border_padding_x"` // Visible margin around the arena
	BorderPaddingY  float64 `yaml:"border_padding_y"`
	CameraOffset    float64 `yaml:"camera_offset"` // View shift towards -y (up)
	ScoreOffset     float64 `yaml:"score_offset"`  // Distance of score bars above the arena
	ScoreHeight     float64 `yaml:"score_height"`
	ScorePadding    float64 `yaml:"score_padding"`
	CellAspect      float64 `yaml:"cell_aspect"` // Terminal cell height / width
}

// LoopConfig defines the fixed-timestep scheduler.
type LoopConfig struct {
	TickRate            int `yaml:"tick_rate"`              // Simulation ticks per second
	MaxUpdatesPerRender int `yaml:"max_updates_per_render"` // Catch-up cap per frame
}

// ValidatePlayers checks a player count.
func ValidatePlayers(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidPlayerCount, n, MinPlayers, MaxPlayers)
	}
	return nil
}

// Validate checks that every tunable is usable.
func (c TagConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Player.HalfExtent <= 0:
		return fmt.Errorf("config: player half_extent must be positive, got %g", c.Player.HalfExtent)
	case !spawnAxisValid(c.World.SpawnOriginX, c.World.Width, c.Player.HalfExtent) ||
		!spawnAxisValid(c.World.SpawnOriginY, c.World.Height, c.Player.HalfExtent):
		return fmt.Errorf("config: spawn origin (%g, %g) must lie in (half_extent, size/2 - half_extent] on both axes",
			c.World.SpawnOriginX, c.World.SpawnOriginY)
	case c.Render.ScorePadding < 0 || c.Render.ScorePadding >= c.World.Width/MaxPlayers:
		return fmt.Errorf("config: score_padding must be in [0, %g), got %g", c.World.Width/MaxPlayers, c.Render.ScorePadding)
	case c.Player.BaseSpeed <= 0 || c.Player.MaxSpeed < c.Player.BaseSpeed:
		return fmt.Errorf("config: need 0 < base_speed <= max_speed, got %g and %g", c.Player.BaseSpeed, c.Player.MaxSpeed)
	case c.Player.TimeToMaxSpeed <= 0:
		return fmt.Errorf("config: time_to_max_speed must be positive, got %g", c.Player.TimeToMaxSpeed)
	case c.Player.MaxTime <= 0:
		return fmt.Errorf("config: max_time must be positive, got %g", c.Player.MaxTime)
	case c.Render.CellAspect <= 0:
		return fmt.Errorf("config: cell_aspect must be positive, got %g", c.Render.CellAspect)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Loop.TickRate)
	case c.Loop.MaxUpdatesPerRender <= 0:
		return fmt.Errorf("config: max_updates_per_render must be positive, got %d", c.Loop.MaxUpdatesPerRender)
	}
	return nil
}

// spawnAxisValid reports whether mirrored spawns at ±origin stay apart and
// inside an arena of the given size on one axis.
func spawnAxisValid(origin, size, halfExtent float64) bool {
	return origin > halfExtent && origin <= size/2-halfExtent
}
