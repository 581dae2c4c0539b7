package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/tutorstate/internal/behavior"
	"github.com/abhisek/tutorstate/internal/resolve"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleState(callerID string, resolvedAt time.Time) *resolve.SessionState {
	return &resolve.SessionState{
		ID:         "state-" + resolvedAt.Format("150405"),
		CallerID:   callerID,
		ResolvedAt: resolvedAt,
		Targets: map[string]behavior.Effective{
			"BEH-WARMTH": {ParameterID: "BEH-WARMTH", Value: 0.7, Source: behavior.ScopeDomain},
		},
	}
}

func TestSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if _, err := s.Save(ctx, sampleState("c1", base)); err != nil {
		t.Fatalf("save: %v", err)
	}
	time.Sleep(2 * time.Millisecond) // ULID ordering granularity
	second := sampleState("c1", base.Add(time.Hour))
	if _, err := s.Save(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Latest(ctx, "c1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("latest = nil, want a state")
	}
	if got.ID != second.ID {
		t.Errorf("latest ID = %s, want %s", got.ID, second.ID)
	}
	if eff := got.Targets["BEH-WARMTH"]; eff.Value != 0.7 {
		t.Errorf("round-tripped target = %+v", eff)
	}
}

func TestLatest_NoRows(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Latest(context.Background(), "missing")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got != nil {
		t.Errorf("latest = %+v, want nil", got)
	}
}

func TestList_NewestFirstAndScoped(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := s.Save(ctx, sampleState("c1", base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("save: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	if _, err := s.Save(ctx, sampleState("c2", base)); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := s.List(ctx, "c1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ID > entries[i-1].ID {
			t.Error("entries not newest-first")
		}
	}

	limited, err := s.List(ctx, "c1", 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := s.Save(ctx, sampleState("c1", base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("save: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	if err := s.Prune(ctx, "c1", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	entries, err := s.List(ctx, "c1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len after prune = %d, want 2", len(entries))
	}
}
