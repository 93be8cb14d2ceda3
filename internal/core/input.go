package core

import "github.com/go-gl/mathgl/mgl64"

// Direction is a held movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit axis vector for the direction.
// Screen-space convention: +y points down.
func (d Direction) Vector() mgl64.Vec2 {
	switch d {
	case DirUp:
		return mgl64.Vec2{0, -1}
	case DirDown:
		return mgl64.Vec2{0, 1}
	case DirLeft:
		return mgl64.Vec2{-1, 0}
	case DirRight:
		return mgl64.Vec2{1, 0}
	default:
		return mgl64.Vec2{0, 0}
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Action represents a semantic command, abstracted from physical key presses.
type Action int

const (
	ActionNone             Action = iota
	ActionMove                    // Steer one player slot (toggle semantics)
	ActionRestart                 // Start a new round after the current one ended
	ActionSetPlayers              // Rebuild the roster for 2, 3 or 4 players
	ActionToggleFullscreen        // Switch between windowed and fullscreen
	ActionExitFullscreen          // Leave fullscreen if active
	ActionQuit                    // Close the window
	ActionScreenshot              // Save the current frame as text
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionRestart:
		return "Restart"
	case ActionSetPlayers:
		return "SetPlayers"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionExitFullscreen:
		return "ExitFullscreen"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Input is one decoded key press.
type Input struct {
	Action  Action
	Player  int       // Player slot for ActionMove (0-based)
	Dir     Direction // Direction for ActionMove
	Players int       // Player count for ActionSetPlayers
}

// MoveInput builds a movement input for a player slot.
func MoveInput(player int, dir Direction) Input {
	return Input{Action: ActionMove, Player: player, Dir: dir}
}

// SetPlayersInput builds a player-count input.
func SetPlayersInput(n int) Input {
	return Input{Action: ActionSetPlayers, Players: n}
}
