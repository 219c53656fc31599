package layout

import "testing"

func newTestFloatingSpace() *FloatingSpace {
	f := NewFloatingSpace()
	f.SetWorkingArea(Rect{W: 1000, H: 800})
	return f
}

func TestFloatingSpace_FocusRaisesToTopOfStack(t *testing.T) {
	f := newTestFloatingSpace()
	for i := 1; i <= 3; i++ {
		f.Add(newTestTile(WindowID(i), WindowProps{}), Rect{X: 10, Y: 10, W: 300, H: 200}, true)
	}

	// Focus the oldest tile: it must become active and render on top
	// (last in the back-to-front render order), not stay buried under the
	// tiles added after it.
	f.FocusIndex(0)
	if got := f.ActiveTile().Window().ID(); got != 1 {
		t.Fatalf("expected window 1 active after focusing it, got %d", got)
	}
	renders := f.Render(0)
	if top := renders[len(renders)-1].ID; top != 1 {
		t.Fatalf("expected the focused window on top of the stack, got %d", top)
	}
}

func TestFloatingSpace_RaiseKeepsActivePointingAtSameTile(t *testing.T) {
	f := newTestFloatingSpace()
	for i := 1; i <= 3; i++ {
		f.Add(newTestTile(WindowID(i), WindowProps{}), Rect{X: 10, Y: 10, W: 300, H: 200}, true)
	}
	// Active is window 3 (added last). Raising window 1 from the bottom
	// reshuffles indices under it; the active pointer must follow.
	f.Raise(0)
	if got := f.ActiveTile().Window().ID(); got != 3 {
		t.Fatalf("expected window 3 to stay active across a raise below it, got %d", got)
	}
	renders := f.Render(0)
	if top := renders[len(renders)-1].ID; top != 1 {
		t.Fatalf("expected the raised window on top of the stack, got %d", top)
	}
}
