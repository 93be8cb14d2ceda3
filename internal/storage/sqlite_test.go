package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRound(id string, slot int, color string) RoundRecord {
	return RoundRecord{
		RoundID:      id,
		Players:      2,
		WinnerSlot:   slot,
		WinnerColor:  color,
		Ticks:        2400,
		DurationSecs: 40,
		Transfers:    3,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := testRound("round-1", 1, "green")
	rec.Session = "ssh-abc"
	id, err := store.SaveRound(rec)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected a positive ID, got %d", id)
	}

	got, err := store.RoundByID("round-1")
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RoundByID() returned nil for a stored round")
	}

	if got.ID != id || got.Session != "ssh-abc" || got.Players != 2 || got.WinnerSlot != 1 ||
		got.WinnerColor != "green" || got.Ticks != 2400 || got.DurationSecs != 40 || got.Transfers != 3 {
		t.Errorf("round mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreDefaultSession(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(testRound("r", 0, "red")); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	got, err := store.RoundByID("r")
	if err != nil || got == nil {
		t.Fatalf("RoundByID() = %v, %v", got, err)
	}
	if got.Session != "local" {
		t.Errorf("Session = %q, expected local", got.Session)
	}
}

func TestStoreDuplicateRoundID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(testRound("dup", 0, "red")); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(testRound("dup", 1, "green")); err == nil {
		t.Error("saving the same round twice should fail")
	}
}

func TestStoreRoundByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RoundByID("nope")
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestStoreRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 25 {
		if _, err := store.SaveRound(testRound(fmt.Sprintf("round-%02d", i), 0, "red")); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds(5)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("Expected 5 rounds, got %d", len(recent))
	}
	// Newest first
	if recent[0].RoundID != "round-24" || recent[4].RoundID != "round-20" {
		t.Errorf("unexpected order: first %s, last %s", recent[0].RoundID, recent[4].RoundID)
	}

	// Default limit
	recent, err = store.RecentRounds(0)
	if err != nil {
		t.Fatalf("RecentRounds(0) failed: %v", err)
	}
	if len(recent) != 20 {
		t.Errorf("Expected 20 rounds, got %d", len(recent))
	}
}

func TestStoreWinsByColor(t *testing.T) {
	store := openTestStore(t)

	winners := []string{"red", "blue", "red", "green", "red", "blue"}
	for i, c := range winners {
		if _, err := store.SaveRound(testRound(fmt.Sprintf("r%d", i), 0, c)); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	wins, err := store.WinsByColor()
	if err != nil {
		t.Fatalf("WinsByColor() failed: %v", err)
	}

	want := []ColorWins{{"red", 3}, {"blue", 2}, {"green", 1}}
	if len(wins) != len(want) {
		t.Fatalf("Expected %d colors, got %d: %+v", len(want), len(wins), wins)
	}
	for i := range want {
		if wins[i] != want[i] {
			t.Errorf("wins[%d] = %+v, expected %+v", i, wins[i], want[i])
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	short := testRound("a", 0, "red")
	short.DurationSecs = 20
	short.Transfers = 1
	long := testRound("b", 1, "green")
	long.DurationSecs = 60
	long.Transfers = 5
	for _, r := range []RoundRecord{short, long} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.AvgDuration != 40 || stats.LongestRound != 60 || stats.AvgTransfers != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(testRound("x", 0, "red")); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	recent, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no rounds after clear, got %d", len(recent))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tag/rounds.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tag", "rounds.db")); err != nil {
		t.Errorf("Database file was not created under HOME: %v", err)
	}
}
