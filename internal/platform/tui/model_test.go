package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelForwardsTerminalEvents(t *testing.T) {
	w, _, _ := newTestWindow(t, testRuntime())
	m := NewModel(w, DefaultKeyMap())

	next, cmd := m.Update(runeKey("w"))
	if cmd != nil {
		t.Error("key presses should not produce commands")
	}
	m = next.(Model)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	if got := len(w.events); got != 2 {
		t.Errorf("window has %d queued events, expected 2", got)
	}
}

func TestModelShowsLatestFrame(t *testing.T) {
	w, _, _ := newTestWindow(t, testRuntime())
	m := NewModel(w, DefaultKeyMap())

	next, _ := m.Update(FrameMsg{View: "first"})
	next, _ = next.(Model).Update(FrameMsg{View: "second"})

	view := next.View()
	if !strings.HasPrefix(view, "second\n") {
		t.Errorf("View() = %q, expected the latest frame first", view)
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should end with the key help")
	}
}

func TestModelFullscreen(t *testing.T) {
	rt := testRuntime()
	rt.Fullscreen = true
	w, _, _ := newTestWindow(t, rt)
	m := NewModel(w, DefaultKeyMap())

	if m.Init() == nil {
		t.Error("a fullscreen session should enter the alt screen on start")
	}

	next, cmd := m.Update(fullscreenMsg{on: false})
	if cmd == nil || next.(Model).fullscreen {
		t.Error("leaving fullscreen should exit the alt screen")
	}
	_, cmd = next.Update(fullscreenMsg{on: true})
	if cmd == nil {
		t.Error("entering fullscreen should return a command")
	}
}

func TestModelQuitsOnClose(t *testing.T) {
	w, _, _ := newTestWindow(t, testRuntime())
	m := NewModel(w, DefaultKeyMap())
	if m.Init() != nil {
		t.Error("a windowed session needs no start command")
	}

	next, cmd := m.Update(closeMsg{})
	if cmd == nil {
		t.Fatal("close should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("close should quit the program")
	}
	if next.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}
