package core

// RuntimeConfig contains the session settings chosen at startup.
// The simulation never reads it after the session has been created.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	Players    int   // Initial player count (2-4)
	Fullscreen bool  // Start on the alternate screen
	VSync      bool  // Pace presentation to the refresh interval
	Seed       int64 // RNG seed for the tag picker, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Players: 2,
		VSync:   true,
		Seed:    0, // 0 means use current time in platform layer
	}
}
