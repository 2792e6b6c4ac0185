package dataset

import (
	"context"
	"path/filepath"
	"testing"

	"gridpad/pkg/nav"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "grid.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SeedAndPositions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx, 3, 2, []int{0, 90, 180, 270}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	records, err := s.Positions(ctx)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if want := 3 * 2 * 4; len(records) != want {
		t.Fatalf("got %d records, want %d", len(records), want)
	}

	tab := nav.NewTable(records)
	if _, ok := tab.Lookup(nav.Pose{H: 1, V: 1, Rot: 0}); !ok {
		t.Error("seeded grid is missing the home position (1, 1, 0)")
	}
	if _, ok := tab.Lookup(nav.Pose{H: 4, V: 1, Rot: 0}); ok {
		t.Error("seeded grid contains a position beyond its width")
	}
	checkVals(t, "Horizontals", tab.Horizontals(), []int{1, 2, 3})
	checkVals(t, "Verticals", tab.Verticals(), []int{1, 2})
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx, 2, 2, []int{0}); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := s.SetActive(ctx, "pos-2-2-000"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := s.Seed(ctx, 2, 2, []int{0}); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	records, err := s.Positions(ctx)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("got %d records after reseed, want 4", len(records))
	}

	// Reseeding must not clobber the selection.
	id, err := s.ActiveID(ctx)
	if err != nil {
		t.Fatalf("ActiveID: %v", err)
	}
	if id != "pos-2-2-000" {
		t.Errorf("ActiveID after reseed = %q, want %q", id, "pos-2-2-000")
	}
}

func TestStore_Selection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx, 2, 1, []int{0}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	id, err := s.ActiveID(ctx)
	if err != nil {
		t.Fatalf("ActiveID: %v", err)
	}
	if id != "" {
		t.Errorf("ActiveID on fresh grid = %q, want empty", id)
	}

	if err := s.SetActive(ctx, "pos-1-1-000"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := s.SetActive(ctx, "pos-2-1-000"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	id, err = s.ActiveID(ctx)
	if err != nil {
		t.Fatalf("ActiveID: %v", err)
	}
	if id != "pos-2-1-000" {
		t.Errorf("ActiveID = %q, want %q", id, "pos-2-1-000")
	}

	// Exactly one row may be active at a time.
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM positions WHERE active = 1`).Scan(&n); err != nil {
		t.Fatalf("count active: %v", err)
	}
	if n != 1 {
		t.Errorf("%d active rows, want 1", n)
	}
}

func TestStore_EmptyGrid(t *testing.T) {
	s := openTestStore(t)

	records, err := s.Positions(context.Background())
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records from empty grid, want 0", len(records))
	}
}

func checkVals(t *testing.T, name string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %d, want %d", name, i, got[i], want[i])
		}
	}
}
