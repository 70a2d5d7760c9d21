package tui

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-tetrix/internal/storage"
)

func TestScoreboardFiltersByPlayer(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{GameID: "cannon", Player: "bob", Score: 9},
		{GameID: "cannon", Player: "alice", Score: 4},
		{GameID: "cannon", Player: "alice", Score: 6},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "alice", 100, 30)
	if m.games[m.gameCursor].ID != "cannon" {
		t.Fatalf("first game = %q, expected cannon", m.games[m.gameCursor].ID)
	}
	if got := scorePlayers(m.scores); !cmp.Equal(got, []string{"bob", "alice", "alice"}) {
		t.Errorf("all scores by player = %v", got)
	}

	next, _ := m.Update(runeKey('m'))
	m = next.(ScoreboardModel)
	if got := scorePlayers(m.scores); !cmp.Equal(got, []string{"alice", "alice"}) {
		t.Errorf("own scores by player = %v", got)
	}
	if m.scores[0].Score != 6 {
		t.Errorf("best own score = %d, expected 6", m.scores[0].Score)
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{{Player: "alice", Score: 31, Level: 2, Lines: 3}})
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"#1", "alice", "31", "2", "3"}
	if diff := cmp.Diff(want, []string(rows[0][:5])); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func scorePlayers(scores []storage.ScoreEntry) []string {
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.Player
	}
	return out
}
