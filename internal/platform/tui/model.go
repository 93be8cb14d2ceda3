package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for a tag session. It owns no game state:
// terminal events are forwarded to the Window and the latest frame produced
// by the game loop is displayed as is.
type Model struct {
	window     *Window
	keys       KeyMap
	help       help.Model
	frame      string
	fullscreen bool
	quitting   bool
}

// NewModel creates a model that feeds window.
func NewModel(window *Window, keys KeyMap) Model {
	return Model{
		window:     window,
		keys:       keys,
		help:       help.New(),
		fullscreen: window.Fullscreen(),
	}
}

// Init enters the alternate screen when the session starts fullscreen.
func (m Model) Init() tea.Cmd {
	if m.fullscreen {
		return tea.EnterAltScreen
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.window.Push(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.window.Push(msg)

	case FrameMsg:
		m.frame = msg.View

	case fullscreenMsg:
		m.fullscreen = msg.on
		if msg.on {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case closeMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the latest frame and a one line key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame + "\n" + m.help.View(m.keys)
}
