package layout

import (
	"testing"

	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

func newTestScrollingSpace() *ScrollingSpace {
	cfg := testConfig()
	clock := animation.NewClock()
	s := NewScrollingSpace(cfg, clock, 1)
	s.SetWorkingArea(Rect{W: 1000, H: 800}, 0)
	return s
}

func TestScrollingSpace_AddColumnActivatesAndCentersOnOverflow(t *testing.T) {
	s := newTestScrollingSpace()
	s.cfg.CenterFocusedColumn = config.CenterAlways

	s.AddColumn(newTestTile(1, WindowProps{}), 0, config.Fixed(1200), true, 0)
	// A column wider than the viewport, centered: offset settles such that
	// the column's center aligns with the viewport's center.
	target := s.viewOffset.Target()
	want := 1200.0/2 - 1000.0/2
	if target != want {
		t.Fatalf("expected centered offset %v, got %v", want, target)
	}
}

func TestScrollingSpace_InsertBeforeActiveShiftsViewOffsetNotAnimated(t *testing.T) {
	s := newTestScrollingSpace()
	s.AddColumn(newTestTile(1, WindowProps{}), 0, config.Fixed(400), true, 0)
	before := s.ViewOffset(0)

	// Insert a second column at index 0 (to the left of the active one)
	// without activating it.
	s.AddColumn(newTestTile(2, WindowProps{}), 0, config.Fixed(300), false, 0)
	after := s.ViewOffset(0)

	if s.ActiveColumnIndex() != 1 {
		t.Fatalf("expected active column index to shift to 1, got %d", s.ActiveColumnIndex())
	}
	wantDelta := 300.0 + s.cfg.Gaps
	if after-before != wantDelta {
		t.Fatalf("expected view offset to shift by inserted width+gap (%v), got delta %v", wantDelta, after-before)
	}
}

func TestScrollingSpace_NeverPolicyScrollsMinimalAmount(t *testing.T) {
	s := newTestScrollingSpace()
	s.cfg.CenterFocusedColumn = config.CenterNever

	s.AddColumn(newTestTile(1, WindowProps{}), 0, config.Fixed(900), true, 0)
	s.AddColumn(newTestTile(2, WindowProps{}), 1, config.Fixed(900), true, 0)

	// Column 2 starts at x=900+gap and is 900 wide; it doesn't fit at
	// offset 0, so the minimal scroll reveals its right edge exactly.
	gap := s.cfg.Gaps
	x1 := 900 + gap
	want := x1 + 900 - 1000
	if got := s.viewOffset.Target(); got != want {
		t.Fatalf("expected minimal-scroll offset %v, got %v", want, got)
	}
}

func TestScrollingSpace_PruneEmptyColumnsAfterClose(t *testing.T) {
	s := newTestScrollingSpace()
	first := newTestTile(1, WindowProps{})
	s.AddColumn(first, 0, config.Fixed(300), true, 0)
	second := newTestTile(2, WindowProps{})
	s.AddColumn(second, 1, config.Fixed(300), true, 0)

	first.Close(0)
	s.Tick(10000)

	if s.Len() != 1 {
		t.Fatalf("expected empty column removed after its tile's close animation finished, got %d columns", s.Len())
	}
	if s.ActiveColumn().Tiles()[0] != second {
		t.Fatalf("expected remaining column to hold the surviving tile")
	}
}

func TestScrollingSpace_ProportionColumnsTileExactly(t *testing.T) {
	// n columns at proportion 1/n must fill the working area with no
	// rounding residue at the right edge, for any gap: flooring each
	// width to a physical pixel independently would lose up to a pixel
	// per column, so widths are derived from floored running sums.
	for n := 1; n <= 8; n++ {
		for _, gap := range []float64{0, 4, 8, 16} {
			cfg := testConfig()
			cfg.Gaps = gap
			s := NewScrollingSpace(cfg, animation.NewClock(), 1)
			s.SetWorkingArea(Rect{W: 1280, H: 720}, 0)
			for i := 0; i < n; i++ {
				s.AddColumn(newTestTile(WindowID(i+1), WindowProps{}), i, config.Proportion(1/float64(n)), true, 0)
			}
			if got := s.stripWidth(); got != 1280 {
				t.Fatalf("n=%d gap=%v: expected strip width 1280, got %v", n, gap, got)
			}
		}
	}
}

func TestScrollingSpace_FractionalScaleResidueFallsRightward(t *testing.T) {
	cfg := testConfig()
	cfg.Gaps = 0.5
	s := NewScrollingSpace(cfg, animation.NewClock(), 2)
	s.SetWorkingArea(Rect{W: 1280, H: 720}, 0)
	for i := 0; i < 3; i++ {
		s.AddColumn(newTestTile(WindowID(i+1), WindowProps{}), i, config.Proportion(1.0/3.0), true, 0)
	}
	// At scale 2 every width lands on a half-pixel boundary and the strip
	// (widths plus two 0.5 gaps) still ends exactly at the right edge.
	if got := s.stripWidth(); got != 1280 {
		t.Fatalf("expected strip width 1280 at scale 2, got %v", got)
	}
	if s.columnW[2] <= s.columnW[0] {
		t.Fatalf("expected the rightmost column to absorb the rounding residue: widths %v", s.columnW)
	}
}

func TestScrollingSpace_OpenSequenceAt1280NeverResizesExistingColumns(t *testing.T) {
	cfg := testConfig()
	cfg.Gaps = 0
	cfg.BorderWidth = 0
	s := NewScrollingSpace(cfg, animation.NewClock(), 1)
	s.SetWorkingArea(Rect{W: 1280, H: 720}, 0)

	third := config.Proportion(1.0 / 3.0)

	// Open three windows: they tile exactly, the view never scrolls.
	for i := 0; i < 3; i++ {
		s.AddColumn(newTestTile(WindowID(i+1), WindowProps{}), i, third, true, 0)
		if got := s.viewOffset.Target(); got != 0 {
			t.Fatalf("after opening %d columns: expected view target 0, got %v", i+1, got)
		}
	}
	wantX := []float64{0, 426, 853}
	for i, want := range wantX {
		if s.columnX[i] != want {
			t.Fatalf("column %d: expected x=%v, got %v", i, want, s.columnX[i])
		}
	}

	// A fourth column appears past the right edge; the minimal scroll
	// brings it fully into view without touching the earlier columns'
	// positions.
	s.AddColumn(newTestTile(4, WindowProps{}), 3, third, true, 0)
	if s.active != 3 {
		t.Fatalf("expected the new column active, got %d", s.active)
	}
	for i, want := range wantX {
		if s.columnX[i] != want {
			t.Fatalf("opening must not reposition column %d: expected x=%v, got %v", i, want, s.columnX[i])
		}
	}
	target := s.viewOffset.Target()
	if left, right := s.columnX[3]-target, s.columnX[3]+s.columnW[3]-target; left < 0 || right > 1280 {
		t.Fatalf("active column not fully visible: viewport x [%v, %v]", left, right)
	}

	// Focusing left must leave the layout alone and keep column 2 fully
	// visible; with the minimal-scroll policy the current offset already
	// shows it, so the target is unchanged.
	s.FocusVisualDelta(-1, 0)
	if s.active != 2 {
		t.Fatalf("expected focus to move to column 2, got %d", s.active)
	}
	if got := s.viewOffset.Target(); got != target {
		t.Fatalf("expected view target unchanged at %v, got %v", target, got)
	}
}

func TestScrollingSpace_MoveColumnKeepsMovedColumnVisuallyStationary(t *testing.T) {
	cfg := testConfig()
	cfg.Gaps = 0
	s := NewScrollingSpace(cfg, animation.NewClock(), 1)
	s.SetWorkingArea(Rect{W: 1000, H: 800}, 0)
	for i := 0; i < 3; i++ {
		s.AddColumn(newTestTile(WindowID(i+1), WindowProps{}), i, config.Fixed(400), true, 0)
	}

	const settled = 100000.0
	visibleBefore := s.columnX[2] - s.ViewOffset(settled)
	s.MoveColumnDelta(-1, settled)
	visibleAfter := s.columnX[1] - s.ViewOffset(settled)
	if diff := visibleAfter - visibleBefore; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected the moved column to hold its visible x, drifted by %v", diff)
	}
}

func TestScrollingSpace_FocusTargetIsMemoryless(t *testing.T) {
	s := newTestScrollingSpace()
	for i := 0; i < 3; i++ {
		s.AddColumn(newTestTile(WindowID(i+1), WindowProps{}), i, config.Fixed(600), true, 0)
	}

	s.FocusColumn(0, 0)
	first := s.viewOffset.Target()
	s.FocusColumn(2, 0)
	s.FocusColumn(0, 0)
	if got := s.viewOffset.Target(); got != first {
		t.Fatalf("expected focus target to depend only on the focused column, got %v then %v", first, got)
	}
}

func TestScrollingSpace_RightToLeftMirrorsVisualOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Gaps = 0
	cfg.RightToLeft = true
	s := NewScrollingSpace(cfg, animation.NewClock(), 1)
	s.SetWorkingArea(Rect{W: 1000, H: 800}, 0)
	for i := 0; i < 3; i++ {
		s.AddColumn(newTestTile(WindowID(i+1), WindowProps{}), i, config.Fixed(300), true, 0)
	}

	// A visually-leftward step walks the stored order forward.
	s.FocusColumn(1, 0)
	s.FocusVisualDelta(-1, 0)
	if s.active != 2 {
		t.Fatalf("expected visually-left focus to land on stored index 2, got %d", s.active)
	}

	// Visual position 0 (leftmost on screen) is the last stored column.
	s.FocusVisualIndex(0, 0)
	if s.active != 2 {
		t.Fatalf("expected visual position 0 to resolve to stored index 2, got %d", s.active)
	}

	// Rendering mirrors x against the right edge: stored column 0 draws
	// flush with the working area's right side.
	renders := s.Render(100000)
	var col0X float64
	found := false
	for _, r := range renders {
		if r.ID == 1 {
			col0X = r.Rect.X
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a render entry for window 1")
	}
	if want := 1000.0 - 300.0; col0X != want {
		t.Fatalf("expected stored column 0 mirrored to x=%v, got %v", want, col0X)
	}
}

func TestScrollingSpace_ConsumeAndExpelRoundTrip(t *testing.T) {
	s := newTestScrollingSpace()
	a := newTestTile(1, WindowProps{})
	b := newTestTile(2, WindowProps{})
	s.AddColumn(a, 0, config.Proportion(0.5), true, 0)
	s.AddColumn(b, 1, config.Proportion(0.5), false, 0)

	s.ConsumeIntoActive(0)
	if s.Len() != 1 {
		t.Fatalf("expected consume to merge the two columns into one, got %d", s.Len())
	}
	if s.ActiveColumn().Len() != 2 {
		t.Fatalf("expected merged column to hold both tiles, got %d", s.ActiveColumn().Len())
	}

	s.ExpelActive(0)
	if s.Len() != 2 {
		t.Fatalf("expected expel to split back into two columns, got %d", s.Len())
	}
}
