package storage

import (
	"os"
	"path/filepath"
	"slices"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("hexpop", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("hexpop-endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("hexpop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	endless, err := store.TopScores("hexpop-endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
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
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("hexpop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("hexpop", 100)
	store.SaveScore("hexpop", 300)
	store.SaveScore("hexpop", 200)

	high, err = store.HighScore("hexpop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hexpop", 100)
	store.SaveScore("hexpop", 200)
	store.SaveScore("hexpop-endless", 300)

	if err := store.ClearScores("hexpop"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaign, _ := store.TopScores("hexpop", 10)
	if len(campaign) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaign))
	}

	endless, _ := store.TopScores("hexpop-endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveRunRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(ScoreEntry{Score: 10}); err == nil {
		t.Error("expected error for run without game id")
	}
}

func TestStoreLevelScores(t *testing.T) {
	store := openTestStore(t)

	runs := []ScoreEntry{
		{GameID: "hexpop", LevelID: "lvl01", Score: 300, Balls: 30, Cleared: true},
		{GameID: "hexpop", LevelID: "lvl01", Score: 120, Balls: 12},
		{GameID: "hexpop", LevelID: "lvl02", Score: 450, Balls: 41},
		{GameID: "hexpop", LevelID: "lvl03", Score: 800, Balls: 70, Cleared: true},
		{GameID: "hexpop", LevelID: "lvl01", Score: 350, Balls: 33, Cleared: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	lvl01, err := store.TopLevelScores("hexpop", "lvl01", 10)
	if err != nil {
		t.Fatalf("TopLevelScores() failed: %v", err)
	}
	if len(lvl01) != 3 {
		t.Fatalf("Expected 3 lvl01 scores, got %d", len(lvl01))
	}
	if lvl01[0].Score != 350 || !lvl01[0].Cleared || lvl01[0].Balls != 33 {
		t.Errorf("unexpected best lvl01 run: %+v", lvl01[0])
	}
	if lvl01[2].Cleared {
		t.Error("uncleared run read back as cleared")
	}

	cleared, err := store.ClearedLevels("hexpop")
	if err != nil {
		t.Fatalf("ClearedLevels() failed: %v", err)
	}
	if want := []string{"lvl01", "lvl03"}; !slices.Equal(cleared, want) {
		t.Errorf("ClearedLevels() = %v, want %v", cleared, want)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("hexpop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun(ScoreEntry{GameID: "hexpop", LevelID: "lvl01", Score: 100, Balls: 10, Cleared: true})
	store.SaveRun(ScoreEntry{GameID: "hexpop", LevelID: "lvl01", Score: 300, Balls: 25, Cleared: true})
	store.SaveRun(ScoreEntry{GameID: "hexpop-endless", Score: 900, Balls: 80})

	stats, err := store.GetGameStats("hexpop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalBalls != 35 || stats.LevelsCleared != 1 {
		t.Errorf("unexpected aggregates: %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if e := all["hexpop-endless"]; e == nil || e.HighScore != 900 || e.LevelsCleared != 0 {
		t.Errorf("unexpected endless stats: %+v", e)
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
