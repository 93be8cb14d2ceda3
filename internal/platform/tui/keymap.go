package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tag/internal/config"
	"github.com/vovakirdan/tui-tag/internal/core"
)

// MoveKeys is the direction cluster of one player slot.
type MoveKeys struct {
	Up, Down, Left, Right key.Binding
}

func newMoveKeys(up, down, left, right, help string) MoveKeys {
	return MoveKeys{
		Up:    key.NewBinding(key.WithKeys(up), key.WithHelp(up+down+left+right, help)),
		Down:  key.NewBinding(key.WithKeys(down)),
		Left:  key.NewBinding(key.WithKeys(left)),
		Right: key.NewBinding(key.WithKeys(right)),
	}
}

// KeyMap translates terminal key presses into game inputs.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Fullscreen     key.Binding
	ExitFullscreen key.Binding
	Restart        key.Binding
	Players        key.Binding
	Quit           key.Binding
	Screenshot     key.Binding
	Move           [config.MaxPlayers]MoveKeys
}

// DefaultKeyMap returns the standard bindings: arrows, WASD, IJKL and TFGH
// for players one to four.
func DefaultKeyMap() KeyMap {
	arrows := MoveKeys{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("←↑↓→", "P1")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
	}

	return KeyMap{
		Fullscreen:     key.NewBinding(key.WithKeys("f11", "alt+enter"), key.WithHelp("f11", "fullscreen")),
		ExitFullscreen: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave fullscreen")),
		Restart:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "new round")),
		Players:        key.NewBinding(key.WithKeys("2", "3", "4"), key.WithHelp("2/3/4", "players")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Screenshot:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Move: [config.MaxPlayers]MoveKeys{
			arrows,
			newMoveKeys("w", "s", "a", "d", "P2"),
			newMoveKeys("i", "k", "j", "l", "P3"),
			newMoveKeys("t", "g", "f", "h", "P4"),
		},
	}
}

// Map returns the input bound to msg, or false if the key is unbound.
func (km KeyMap) Map(msg tea.KeyMsg) (core.Input, bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.Input{Action: core.ActionQuit}, true
	case key.Matches(msg, km.Screenshot):
		return core.Input{Action: core.ActionScreenshot}, true
	case key.Matches(msg, km.Fullscreen):
		return core.Input{Action: core.ActionToggleFullscreen}, true
	case key.Matches(msg, km.ExitFullscreen):
		return core.Input{Action: core.ActionExitFullscreen}, true
	case key.Matches(msg, km.Restart):
		return core.Input{Action: core.ActionRestart}, true
	case key.Matches(msg, km.Players):
		return core.SetPlayersInput(int(msg.String()[0] - '0')), true
	}

	for slot, mk := range km.Move {
		switch {
		case key.Matches(msg, mk.Up):
			return core.MoveInput(slot, core.DirUp), true
		case key.Matches(msg, mk.Down):
			return core.MoveInput(slot, core.DirDown), true
		case key.Matches(msg, mk.Left):
			return core.MoveInput(slot, core.DirLeft), true
		case key.Matches(msg, mk.Right):
			return core.MoveInput(slot, core.DirRight), true
		}
	}

	return core.Input{}, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.Move[0].Up, km.Move[1].Up, km.Move[2].Up, km.Move[3].Up,
		km.Restart, km.Players, km.Fullscreen, km.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Move[0].Up, km.Move[1].Up, km.Move[2].Up, km.Move[3].Up},
		{km.Restart, km.Players},
		{km.Fullscreen, km.ExitFullscreen, km.Screenshot, km.Quit},
	}
}
