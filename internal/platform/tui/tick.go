// Package tui provides the Bubble Tea integration for the tag game.
// It bridges the terminal to the fixed-step loop, maps keys to game inputs
// and serves sessions over SSH.
package tui

import tea "github.com/charmbracelet/bubbletea"

// FrameMsg carries a finished frame from the game loop to the model.
type FrameMsg struct {
	View string
}

// fullscreenMsg asks the model to enter or leave the alternate screen.
type fullscreenMsg struct {
	on bool
}

// closeMsg tells the model that the game loop has stopped.
type closeMsg struct{}

// Sender delivers messages to a running Bubble Tea program.
// *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}
