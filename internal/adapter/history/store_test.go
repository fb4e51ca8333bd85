package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.RecordRun(ctx, ImportRun{
		RunID:          "run-1",
		Source:         "january.txt",
		Checksum:       "aaaa",
		CompanyID:      1,
		FiscalPeriodID: 1,
		Accepted:       12,
		Duplicates:     2,
		Unparsed:       1,
	})
	if err != nil {
		t.Fatalf("record first run: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned run id")
	}

	second, err := store.RecordRun(ctx, ImportRun{
		RunID:          "run-2",
		Source:         "february.txt",
		Checksum:       "bbbb",
		CompanyID:      1,
		FiscalPeriodID: 2,
		Accepted:       8,
		Failed:         3,
	})
	if err != nil {
		t.Fatalf("record second run: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids not increasing: %d then %d", first.ID, second.ID)
	}

	stats, err := store.GetStats(ctx)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.TotalRuns != 2 {
		t.Errorf("total runs = %d, want 2", stats.TotalRuns)
	}
	if stats.TotalAccepted != 20 {
		t.Errorf("total accepted = %d, want 20", stats.TotalAccepted)
	}
	if stats.TotalDuplicates != 2 || stats.TotalUnparsed != 1 || stats.TotalFailed != 3 {
		t.Errorf("rejection totals = %d/%d/%d, want 2/1/3",
			stats.TotalDuplicates, stats.TotalUnparsed, stats.TotalFailed)
	}
	if !stats.LastImport.Valid {
		t.Error("expected a last import timestamp")
	}
}

func TestStoreLastRunForChecksum(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	missing, err := store.LastRunForChecksum(ctx, "unknown")
	if err != nil {
		t.Fatalf("lookup missing checksum: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unseen checksum, got %+v", missing)
	}

	// The same file imported twice resolves to the most recent run.
	for _, runID := range []string{"run-1", "run-2"} {
		if _, err := store.RecordRun(ctx, ImportRun{
			RunID:     runID,
			Source:    "january.txt",
			Checksum:  "cccc",
			CompanyID: 1,
		}); err != nil {
			t.Fatalf("record run %s: %v", runID, err)
		}
	}

	found, err := store.LastRunForChecksum(ctx, "cccc")
	if err != nil {
		t.Fatalf("lookup checksum: %v", err)
	}
	if found == nil || found.RunID != "run-2" {
		t.Fatalf("expected most recent run run-2, got %+v", found)
	}
	if found.ImportedAt.IsZero() {
		t.Error("expected imported_at to be populated")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, runID := range []string{"run-1", "run-2", "run-3"} {
		if _, err := store.RecordRun(ctx, ImportRun{
			RunID:     runID,
			Source:    runID + ".txt",
			Checksum:  runID,
			CompanyID: 1,
		}); err != nil {
			t.Fatalf("record run %s: %v", runID, err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].RunID != "run-3" || runs[1].RunID != "run-2" {
		t.Fatalf("run order = %s, %s, want run-3, run-2", runs[0].RunID, runs[1].RunID)
	}
}
