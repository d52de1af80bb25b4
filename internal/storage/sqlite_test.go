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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Wave: 7, Level: 9, Kills: 142, DurationSecs: 410, Outcome: OutcomeDefeat},
		{Wave: 12, Level: 14, Kills: 388, DurationSecs: 780, Outcome: OutcomeDefeat},
		{Wave: 20, Level: 19, Kills: 701, DurationSecs: 1250, Outcome: OutcomeVictory},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted by wave descending
	if top[0].Wave != 20 || top[1].Wave != 12 || top[2].Wave != 7 {
		t.Errorf("Runs not in expected order: %v %v %v", top[0].Wave, top[1].Wave, top[2].Wave)
	}
	if top[0].Outcome != OutcomeVictory {
		t.Errorf("Expected best run to be a victory, got %q", top[0].Outcome)
	}
}

func TestStoreTopRunsTieBreaksOnKills(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Wave: 10, Level: 11, Kills: 200, Outcome: OutcomeDefeat})
	store.SaveRun(RunEntry{Wave: 10, Level: 12, Kills: 350, Outcome: OutcomeDefeat})

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if top[0].Kills != 350 || top[1].Kills != 200 {
		t.Errorf("Equal waves must rank by kills: got %d, %d", top[0].Kills, top[1].Kills)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Wave: i + 1, Level: i + 1, Kills: (i + 1) * 10, Outcome: OutcomeDefeat})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Wave != 5 || top[1].Wave != 4 || top[2].Wave != 3 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreBestWave(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestWave()
	if err != nil {
		t.Fatalf("BestWave() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best wave of 0 for empty history, got %d", best)
	}

	store.SaveRun(RunEntry{Wave: 4, Level: 5, Kills: 60, Outcome: OutcomeDefeat})
	store.SaveRun(RunEntry{Wave: 15, Level: 16, Kills: 500, Outcome: OutcomeDefeat})
	store.SaveRun(RunEntry{Wave: 9, Level: 10, Kills: 220, Outcome: OutcomeAbandoned})

	best, err = store.BestWave()
	if err != nil {
		t.Fatalf("BestWave() failed: %v", err)
	}
	if best != 15 {
		t.Errorf("Expected best wave of 15, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Wave: 3, Level: 4, Kills: 40, Outcome: OutcomeDefeat})
	store.SaveRun(RunEntry{Wave: 6, Level: 7, Kills: 110, Outcome: OutcomeDefeat})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestWave != 0 {
		t.Errorf("Empty history stats = %+v", stats)
	}

	store.SaveRun(RunEntry{Wave: 20, Level: 18, Kills: 650, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Wave: 8, Level: 9, Kills: 150, Outcome: OutcomeDefeat})

	stats, err = store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.BestWave != 20 {
		t.Errorf("BestWave = %d, want 20", stats.BestWave)
	}
	if stats.Victories != 1 {
		t.Errorf("Victories = %d, want 1", stats.Victories)
	}
	if stats.TotalKills != 800 {
		t.Errorf("TotalKills = %d, want 800", stats.TotalKills)
	}
}

func TestStoreRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(RunEntry{Wave: i + 1, Level: i + 1, Kills: i * 10, Outcome: OutcomeDefeat})
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Verify nested directory creation on open
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
