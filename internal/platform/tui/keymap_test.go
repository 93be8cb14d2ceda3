package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tag/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapMoves(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		player int
		dir    core.Direction
	}{
		{"P1 up", tea.KeyMsg{Type: tea.KeyUp}, 0, core.DirUp},
		{"P1 left", tea.KeyMsg{Type: tea.KeyLeft}, 0, core.DirLeft},
		{"P2 down", runeKey("s"), 1, core.DirDown},
		{"P2 right", runeKey("d"), 1, core.DirRight},
		{"P3 up", runeKey("i"), 2, core.DirUp},
		{"P3 left", runeKey("j"), 2, core.DirLeft},
		{"P4 down", runeKey("g"), 3, core.DirDown},
		{"P4 right", runeKey("h"), 3, core.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := km.Map(tc.msg)
			if !ok {
				t.Fatalf("key %q is not bound", tc.msg.String())
			}
			if in != core.MoveInput(tc.player, tc.dir) {
				t.Errorf("Map(%q) = %+v, expected player %d %v", tc.msg.String(), in, tc.player, tc.dir)
			}
		})
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"quit q", runeKey("q"), core.Input{Action: core.ActionQuit}},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Input{Action: core.ActionQuit}},
		{"fullscreen f11", tea.KeyMsg{Type: tea.KeyF11}, core.Input{Action: core.ActionToggleFullscreen}},
		{"fullscreen alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, core.Input{Action: core.ActionToggleFullscreen}},
		{"exit fullscreen", tea.KeyMsg{Type: tea.KeyEsc}, core.Input{Action: core.ActionExitFullscreen}},
		{"restart", tea.KeyMsg{Type: tea.KeySpace}, core.Input{Action: core.ActionRestart}},
		{"two players", runeKey("2"), core.SetPlayersInput(2)},
		{"four players", runeKey("4"), core.SetPlayersInput(4)},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.Input{Action: core.ActionScreenshot}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := km.Map(tc.msg)
			if !ok || in != tc.want {
				t.Errorf("Map(%q) = %+v, %v; expected %+v", tc.msg.String(), in, ok, tc.want)
			}
		})
	}
}

func TestKeyMapUnbound(t *testing.T) {
	km := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey("x"), runeKey("5"), tea.KeyMsg{Type: tea.KeyTab}} {
		if in, ok := km.Map(msg); ok {
			t.Errorf("Map(%q) = %+v, expected unbound", msg.String(), in)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	for i, group := range km.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" {
				t.Errorf("FullHelp group %d has a binding without help text", i)
			}
		}
	}
}
