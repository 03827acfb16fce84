package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, -3} {
		if _, err := store.SaveScore("rush", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// A different game must not leak into the results
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("rush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 4 {
		t.Fatalf("expected 4 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50, -3}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("score %d = %d, expected %d", i, scores[i].Score, w)
		}
	}

	high, err := store.HighScore("rush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore() = %d, expected 200", high)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}
}

func TestStoreRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundResult{
		{GameID: "rush", Score: 12, DurationSecs: 30, PointsPerSec: 0.4, Hits: 10, BonusHits: 2, Misses: 1, BestStreak: 6},
		{GameID: "rush", Score: 30, DurationSecs: 30, PointsPerSec: 1.0, Hits: 25, BonusHits: 5, Misses: 0, BestStreak: 25},
		{GameID: "rush", Score: 5, DurationSecs: 10, PointsPerSec: 0.5, Hits: 5, BonusHits: 0, Misses: 2, BestStreak: 3},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds("rush", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(recent))
	}
	// Most recent first
	if recent[0].Score != 5 || recent[2].Score != 12 {
		t.Errorf("RecentRounds order wrong: %d, %d, %d",
			recent[0].Score, recent[1].Score, recent[2].Score)
	}

	best, err := store.BestRounds("rush", 2)
	if err != nil {
		t.Fatalf("BestRounds() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(best))
	}
	if best[0].PointsPerSec != 1.0 {
		t.Errorf("best rate = %v, expected 1.0", best[0].PointsPerSec)
	}
	if best[0].Hits != 25 || best[0].BonusHits != 5 {
		t.Errorf("round details not round-tripped: %+v", best[0])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		if _, err := store.SaveScore("rush", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(RoundResult{GameID: "rush", Score: 30, DurationSecs: 30, PointsPerSec: 1.0}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	stats, err := store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.BestRate != 1.0 {
		t.Errorf("BestRate = %v, expected 1.0", stats.BestRate)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("rush", 10); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRound(RoundResult{GameID: "rush", Score: 10, DurationSecs: 10}); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearScores("rush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("rush", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}

	rounds, err := store.RecentRounds("rush", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 0 {
		t.Errorf("expected no rounds after clear, got %d", len(rounds))
	}
}
