package engine

import (
	"strconv"
	"strings"
	"testing"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/layout"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default()
	e := New(cfg, nil, nil)
	e.AddMonitor("DP-1", layout.Size{W: 1280, H: 720}, 1, config.Struts{})
	return e
}

func openN(t *testing.T, e *Engine, n int) []layout.WindowID {
	t.Helper()
	ids := make([]layout.WindowID, 0, n)
	for i := 0; i < n; i++ {
		id, err := e.OpenWindow("term", "", 0, 0, 0, 0, false)
		if err != nil {
			t.Fatalf("OpenWindow: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

// activeColumn extracts active_column=<idx> off the snapshot's header
// line.
func activeColumn(t *testing.T, snap string) int {
	t.Helper()
	header, _, _ := strings.Cut(snap, "\n")
	const marker = "active_column="
	i := strings.Index(header, marker)
	if i < 0 {
		t.Fatalf("snapshot missing active_column: %q", snap)
	}
	field := header[i+len(marker):]
	end := strings.IndexAny(field, " \t")
	if end >= 0 {
		field = field[:end]
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		t.Fatalf("parsing active_column from %q: %v", header, err)
	}
	return n
}

func TestEngine_OpenCloseCommitLifecycle(t *testing.T) {
	e := newTestEngine(t)
	id, err := e.OpenWindow("term", "shell", 0, 0, 0, 0, false)
	if err != nil {
		t.Fatalf("OpenWindow: %v", err)
	}
	if err := e.Commit(id); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := e.FocusWindow(id); err != nil {
		t.Fatalf("FocusWindow: %v", err)
	}
	if err := e.CloseWindow(id); err != nil {
		t.Fatalf("CloseWindow: %v", err)
	}
	if err := e.FocusWindow(id); err == nil {
		t.Fatalf("expected focusing a closed window's id to fail")
	}
}

func TestEngine_FocusColumnIndexIsOneBased(t *testing.T) {
	e := newTestEngine(t)
	openN(t, e, 3)

	// Three columns just opened: the third (slice index 2) is active,
	// since every open activates the new column.
	if got := activeColumn(t, e.Snapshot()); got != 2 {
		t.Fatalf("expected column 2 active after opening 3 windows, got %d", got)
	}

	// "focus column at index N" addresses N as 1-based. Index 1 must land
	// on the first column (slice index 0), not the second.
	if err := e.Op("focus-column-index", []string{"1"}); err != nil {
		t.Fatalf("Op: %v", err)
	}
	if got := activeColumn(t, e.Snapshot()); got != 0 {
		t.Fatalf("focus-column-index 1: expected slice index 0, got %d", got)
	}

	if err := e.Op("focus-column-index", []string{"3"}); err != nil {
		t.Fatalf("Op: %v", err)
	}
	if got := activeColumn(t, e.Snapshot()); got != 2 {
		t.Fatalf("focus-column-index 3: expected slice index 2, got %d", got)
	}
}

func TestEngine_OpUnknownOpIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	openN(t, e, 1)
	before := e.Snapshot()
	if err := e.Op("not-a-real-operation", nil); err != nil {
		t.Fatalf("Op: %v", err)
	}
	if after := e.Snapshot(); after != before {
		t.Fatalf("expected unknown op to be a no-op: before %q after %q", before, after)
	}
}

func TestEngine_FocusColumnLeftRightNoOpAtEdges(t *testing.T) {
	e := newTestEngine(t)
	openN(t, e, 2)

	if err := e.Op("focus-column-right", nil); err != nil {
		t.Fatalf("Op: %v", err)
	}
	if got := activeColumn(t, e.Snapshot()); got != 1 {
		t.Fatalf("focus-column-right at last column: expected no-op at 1, got %d", got)
	}

	if err := e.Op("focus-column-left", nil); err != nil {
		t.Fatalf("Op: %v", err)
	}
	if got := activeColumn(t, e.Snapshot()); got != 0 {
		t.Fatalf("expected focus-column-left to move to column 0, got %d", got)
	}
	if err := e.Op("focus-column-left", nil); err != nil {
		t.Fatalf("Op: %v", err)
	}
	if got := activeColumn(t, e.Snapshot()); got != 0 {
		t.Fatalf("focus-column-left at first column: expected no-op at 0, got %d", got)
	}
}

func TestEngine_AdvanceIsMonotonic(t *testing.T) {
	e := newTestEngine(t)
	openN(t, e, 1)
	e.Advance(10)
	t1 := e.Now()
	e.Advance(10)
	t2 := e.Now()
	if t2 <= t1 {
		t.Fatalf("expected clock to advance monotonically: t1=%v t2=%v", t1, t2)
	}
}
