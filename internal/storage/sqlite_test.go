package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
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

func save(t *testing.T, store *Store, r Result) ScoreEntry {
	t.Helper()
	e, err := store.SaveScore(r)
	if err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", r, err)
	}
	return e
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saved, err := store.SaveScore(Result{GameID: "tetrix", Score: 42})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("tetrix", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].UID != saved.UID {
		t.Errorf("TopScores() after reopen = %+v, expected the saved entry", scores)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	first := save(t, store, Result{GameID: "tetrix", Player: "ann", Score: 100, Level: 2, Lines: 7})
	save(t, store, Result{GameID: "tetrix", Player: "bob", Score: 50, Level: 1, Lines: 2})
	save(t, store, Result{GameID: "tetrix", Score: 200, Level: 4, Lines: 19})
	save(t, store, Result{GameID: "cannon", Player: "ann", Score: 9})

	if first.ID == 0 || first.UID == "" {
		t.Errorf("SaveScore() = %+v, expected an ID and a UID", first)
	}

	scores, err := store.TopScores("tetrix", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []ScoreEntry{
		{GameID: "tetrix", Player: DefaultPlayer, Score: 200, Level: 4, Lines: 19},
		{GameID: "tetrix", Player: "ann", Score: 100, Level: 2, Lines: 7},
		{GameID: "tetrix", Player: "bob", Score: 50, Level: 1, Lines: 2},
	}
	ignore := cmpopts.IgnoreFields(ScoreEntry{}, "ID", "UID", "CreatedAt")
	if diff := cmp.Diff(want, scores, ignore); diff != "" {
		t.Errorf("TopScores() mismatch (-want +got):\n%s", diff)
	}

	for _, s := range scores {
		if s.CreatedAt.IsZero() {
			t.Errorf("entry %d has no CreatedAt", s.ID)
		}
	}

	cannon, err := store.TopScores("cannon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(cannon) != 1 {
		t.Errorf("Expected 1 cannon score, got %d", len(cannon))
	}
}

func TestStoreSaveScoreRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(Result{Score: 1}); err == nil {
		t.Error("SaveScore() without a game id expected error")
	}
}

func TestStoreUIDsAreUnique(t *testing.T) {
	store := openTestStore(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		e := save(t, store, Result{GameID: "tetrix", Score: i})
		if seen[e.UID] {
			t.Fatalf("duplicate UID %s", e.UID)
		}
		seen[e.UID] = true
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, Result{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("TopScores(0) returned %d, expected 5", len(scores))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	save(t, store, Result{GameID: "tetrix", Player: "first", Score: 10})
	save(t, store, Result{GameID: "tetrix", Player: "second", Score: 10})

	scores, err := store.TopScores("tetrix", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %s, %s; expected first, second", scores[0].Player, scores[1].Player)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, Result{GameID: "tetrix", Player: "ann", Score: 30})
	save(t, store, Result{GameID: "tetrix", Player: "bob", Score: 90})
	save(t, store, Result{GameID: "tetrix", Player: "ann", Score: 60})
	save(t, store, Result{GameID: "cannon", Player: "ann", Score: 4})

	scores, err := store.PlayerScores("tetrix", "ann", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	got := make([]int, len(scores))
	for i, s := range scores {
		got[i] = s.Score
	}
	if diff := cmp.Diff([]int{60, 30}, got); diff != "" {
		t.Errorf("PlayerScores() (-want +got):\n%s", diff)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetrix")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, Result{GameID: "tetrix", Score: 100})
	save(t, store, Result{GameID: "tetrix", Score: 300})
	save(t, store, Result{GameID: "tetrix", Score: 200})

	high, err = store.HighScore("tetrix")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "tetrix", Score: 100})
	save(t, store, Result{GameID: "tetrix", Score: 200})
	save(t, store, Result{GameID: "cannon", Score: 3})

	if err := store.ClearScores("tetrix"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	tetrix, _ := store.TopScores("tetrix", 10)
	if len(tetrix) != 0 {
		t.Errorf("Expected 0 tetrix scores after clear, got %d", len(tetrix))
	}

	cannon, _ := store.TopScores("cannon", 10)
	if len(cannon) != 1 {
		t.Errorf("Cannon scores should not be affected by clearing tetrix")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, Result{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("tetrix")
	if err != nil {
		t.Fatalf("GameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, Result{GameID: "tetrix", Score: 10, Level: 1, Lines: 1})
	save(t, store, Result{GameID: "tetrix", Score: 30, Level: 3, Lines: 5})
	save(t, store, Result{GameID: "cannon", Score: 2})

	stats, err := store.GameStats("tetrix")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	want := &GameStats{
		GameID:     "tetrix",
		GamesCount: 2,
		HighScore:  30,
		AvgScore:   20,
		TotalScore: 40,
		TotalLines: 6,
		BestLevel:  3,
	}
	if diff := cmp.Diff(want, stats, cmpopts.IgnoreFields(GameStats{}, "LastPlayed")); diff != "" {
		t.Errorf("GameStats() (-want +got):\n%s", diff)
	}

	all, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["cannon"].HighScore != 2 || all["tetrix"].TotalLines != 6 {
		t.Errorf("AllGamesStats() = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetrix/scores.db")
	if err != nil {
		t.Fatalf("Open(~) failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tetrix", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
