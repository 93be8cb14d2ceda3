package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tag/internal/storage"
)

func TestHistoryModelRows(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	colors := []string{"red", "green", "red"}
	for i, c := range colors {
		_, err := store.SaveRound(storage.RoundRecord{
			RoundID:      fmt.Sprintf("round-%d", i),
			Players:      2,
			WinnerColor:  c,
			DurationSecs: 12.5,
		})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, 100, 30)
	if m.Rows() != 3 {
		t.Errorf("rounds view has %d rows, expected 3", m.Rows())
	}
	if !strings.Contains(m.View(), "12.5s") {
		t.Error("rounds view should show the round duration")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.Rows() != 2 {
		t.Errorf("wins view has %d rows, expected 2 colors", m.Rows())
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || next.View() != "" {
		t.Error("q should quit the history screen")
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if m.Rows() != 0 {
		t.Errorf("Rows() = %d, expected 0", m.Rows())
	}
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Error("empty history should say so")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("local", 12); got != "local" {
		t.Errorf("truncate kept %q", got)
	}
	if got := truncate("ssh-0123456789abcdef", 12); got != "ssh-0123456." {
		t.Errorf("truncate = %q", got)
	}
}
