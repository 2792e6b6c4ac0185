package pad

import (
	"context"
	"path/filepath"
	"testing"

	"gridpad/pkg/dataset"
	"gridpad/pkg/nav"
)

func newTestController(t *testing.T, cols, rows int, rots []int, step int) *Controller {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "grid.db")

	store, err := dataset.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Seed(ctx, cols, rows, rots); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	store.Close()

	cfg := DefaultConfig()
	cfg.Database = dbPath
	cfg.StepIncrement = step

	ctrl, err := NewController(cfg)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	t.Cleanup(func() { ctrl.Close() })

	if err := ctrl.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return ctrl
}

func TestController_MovePersistsSelection(t *testing.T) {
	ctrl := newTestController(t, 3, 3, []int{0, 45, 90, 135, 180, 225, 270, 315}, 1)
	ctx := context.Background()

	rec, ok := ctrl.Move(ctx, nav.Translate, 1)
	if !ok {
		t.Fatal("Move(Translate, 1) did not commit")
	}
	if want := "pos-1-2-000"; rec.ID != want {
		t.Errorf("selected record = %q, want %q", rec.ID, want)
	}

	store, err := dataset.Open(ctrl.Config().Database)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()

	id, err := store.ActiveID(ctx)
	if err != nil {
		t.Fatalf("ActiveID: %v", err)
	}
	if id != rec.ID {
		t.Errorf("persisted selection = %q, want %q", id, rec.ID)
	}
}

func TestController_MoveOffGridEmitsNothing(t *testing.T) {
	ctrl := newTestController(t, 1, 1, []int{0}, 1)
	ctx := context.Background()

	before := ctrl.Pose()
	if _, ok := ctrl.Move(ctx, nav.Translate, 1); ok {
		t.Fatal("Move committed past the grid edge")
	}
	if got := ctrl.Pose(); got != before {
		t.Errorf("pose changed on failed move: %+v", got)
	}

	select {
	case s := <-ctrl.States():
		t.Errorf("unexpected state update %+v after failed move", s)
	default:
	}

	store, err := dataset.Open(ctrl.Config().Database)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()
	id, err := store.ActiveID(ctx)
	if err != nil {
		t.Fatalf("ActiveID: %v", err)
	}
	if id != "" {
		t.Errorf("selection = %q after failed move, want empty", id)
	}
}

func TestController_StepIncrementScalesMoves(t *testing.T) {
	ctrl := newTestController(t, 1, 5, []int{0}, 2)
	ctx := context.Background()

	rec, ok := ctrl.Move(ctx, nav.Translate, 1)
	if !ok {
		t.Fatal("scaled move did not commit")
	}
	if want := "pos-1-3-000"; rec.ID != want {
		t.Errorf("selected record = %q, want %q", rec.ID, want)
	}
	if got := ctrl.Pose().V; got != 3 {
		t.Errorf("vertical = %d after step-2 move, want 3", got)
	}
}

func TestController_StatePublishedOnMove(t *testing.T) {
	ctrl := newTestController(t, 2, 2, []int{0, 90}, 1)
	ctx := context.Background()

	if _, ok := ctrl.Move(ctx, nav.Rotate, 1); ok {
		t.Fatal("rotate to 45 should miss a cardinal-only grid")
	}
	if _, ok := ctrl.Move(ctx, nav.Translate, 1); !ok {
		t.Fatal("Move(Translate, 1) did not commit")
	}

	select {
	case s := <-ctrl.States():
		if s.Pose != (nav.Pose{H: 1, V: 2, Rot: 0}) {
			t.Errorf("state pose = %+v, want {1 2 0}", s.Pose)
		}
		if s.Selected.ID == "" {
			t.Error("state carries no selected record")
		}
	default:
		t.Fatal("no state update after committed move")
	}
}

func TestController_RefreshPicksUpNewPositions(t *testing.T) {
	ctrl := newTestController(t, 1, 1, []int{0}, 1)
	ctx := context.Background()

	if _, ok := ctrl.Move(ctx, nav.Translate, 1); ok {
		t.Fatal("move committed before the grid grew")
	}

	store, err := dataset.Open(ctrl.Config().Database)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if err := store.Seed(ctx, 1, 2, []int{0}); err != nil {
		t.Fatalf("grow grid: %v", err)
	}
	store.Close()

	if err := ctrl.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if _, ok := ctrl.Move(ctx, nav.Translate, 1); !ok {
		t.Error("move did not commit after the grid grew")
	}
}
