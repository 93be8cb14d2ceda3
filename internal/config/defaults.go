package config

import (
	_ "embed"
)

//go:embed defaults/tag.yaml
var defaultTagYAML []byte

// DefaultTagConfig returns the built-in configuration.
func DefaultTagConfig() TagConfig {
	return TagConfig{
		World: WorldConfig{
			Width:        24,
			Height:       18,
			SpawnOriginX: 4,
			SpawnOriginY: 3,
		},
		Player: PlayerConfig{
			HalfExtent:     0.5,
			BaseSpeed:      10,
			MaxSpeed:       12.5,
			TimeToMaxSpeed: 7,
			MaxTime:        40,
		},
		Render: RenderConfig{
			BorderThickness: 0.5,
			BorderPaddingX:  4,
			BorderPaddingY:  3,
			CameraOffset:    0.75,
			ScoreOffset:     2,
			ScoreHeight:     1,
			ScorePadding:    1,
			CellAspect:      2,
		},
		Loop: LoopConfig{
			TickRate:            60,
			MaxUpdatesPerRender: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTagYAML
}
