package layout

import (
	"testing"

	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

func newTestRoot(t *testing.T) (*Root, *animation.Clock) {
	t.Helper()
	cfg := testConfig()
	clock := animation.NewClock()
	r := NewRoot(cfg, clock, nil)
	r.AddMonitor("DP-1", Size{W: 1920, H: 1080}, 1, config.Struts{}, 0)
	return r, clock
}

func TestRoot_OpenWindowTilesByDefault(t *testing.T) {
	r, _ := newTestRoot(t)
	win := newFakeWindow(1, WindowProps{AppID: "term"})
	id, err := r.OpenWindow(win, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected window id 1, got %d", id)
	}
	mon := r.ActiveMonitor()
	if mon.ActiveWorkspace().Scrolling().Len() != 1 {
		t.Fatalf("expected window to land in the scrolling space")
	}
	if win.configured != 1 {
		t.Fatalf("expected Configure to be called once on open, got %d", win.configured)
	}
}

func TestRoot_ChildWindowOpensFloating(t *testing.T) {
	r, _ := newTestRoot(t)
	win := newFakeWindow(1, WindowProps{AppID: "dialog", IsChild: true})
	if _, err := r.OpenWindow(win, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ws := r.ActiveMonitor().ActiveWorkspace()
	if ws.Floating().Len() != 1 {
		t.Fatalf("expected a child window to open in the floating space")
	}
	if ws.Scrolling().Len() != 0 {
		t.Fatalf("expected the scrolling space to remain empty")
	}
}

func TestRoot_WindowRuleForcesFloatingAndWidth(t *testing.T) {
	cfg := testConfig()
	clock := animation.NewClock()
	width := config.Fixed(640)
	r := NewRoot(cfg, clock, []WindowRule{{AppIDPattern: "picture-in-picture", OpenState: OpenFloating, Width: &width}})
	r.AddMonitor("DP-1", Size{W: 1920, H: 1080}, 1, config.Struts{}, 0)

	win := newFakeWindow(1, WindowProps{AppID: "picture-in-picture"})
	if _, err := r.OpenWindow(win, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ActiveMonitor().ActiveWorkspace().Floating().Len() != 1 {
		t.Fatalf("expected rule-matched window to open floating")
	}
}

func TestRoot_CloseWindowRemovesFromIndexImmediately(t *testing.T) {
	r, _ := newTestRoot(t)
	win := newFakeWindow(1, WindowProps{})
	id, _ := r.OpenWindow(win, 0)

	if err := r.CloseWindow(id, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.FocusWindow(id, 0); err == nil {
		t.Fatalf("expected focusing a closing window to fail once it's left the index")
	}
	if err := r.HandleCommit(id, 1, Size{W: 100, H: 100}, 0); err == nil {
		t.Fatalf("expected commits for a closed window's id to fail once it's left the index")
	}
}

// TestRoot_TickDuringCloseAnimationDoesNotReindexClosingWindow exercises the
// mainline compositor loop, which keeps calling Tick while a close
// animation is still running (the tile is not pruned from its column
// until IsCloseDone). Tick must not resurrect the id in the index before
// the animation finishes.
func TestRoot_TickDuringCloseAnimationDoesNotReindexClosingWindow(t *testing.T) {
	r, _ := newTestRoot(t)
	win := newFakeWindow(1, WindowProps{})
	id, _ := r.OpenWindow(win, 0)

	if err := r.CloseWindow(id, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One millisecond forward, well short of the close animation's
	// 100ms duration — the tile is still present in its column, only
	// invisible to id-addressed operations.
	r.Tick(1)
	if err := r.FocusWindow(id, 1); err == nil {
		t.Fatalf("expected a mid-close-animation Tick not to reindex the closing window")
	}
	if err := r.HandleCommit(id, 1, Size{W: 100, H: 100}, 1); err == nil {
		t.Fatalf("expected a mid-close-animation Tick not to reindex the closing window")
	}
}

func TestRoot_ToggleFloatingRoundTrip(t *testing.T) {
	r, _ := newTestRoot(t)
	win := newFakeWindow(1, WindowProps{})
	id, _ := r.OpenWindow(win, 0)
	ws := r.ActiveMonitor().ActiveWorkspace()

	if err := r.ToggleFloating(id, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Scrolling().Len() != 0 || ws.Floating().Len() != 1 {
		t.Fatalf("expected window moved into the floating space")
	}

	if err := r.ToggleFloating(id, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Floating().Len() != 0 || ws.Scrolling().Len() != 1 {
		t.Fatalf("expected window moved back into the scrolling space")
	}
}

func TestRoot_DisconnectReconnectRestoresWorkspaces(t *testing.T) {
	r, _ := newTestRoot(t)
	for i := 1; i <= 4; i++ {
		if _, err := r.OpenWindow(newFakeWindow(WindowID(i), WindowProps{}), 0); err != nil {
			t.Fatalf("OpenWindow: %v", err)
		}
	}
	const settled = 100000.0
	r.Tick(settled)
	before := r.Snapshot(settled)

	r.RemoveMonitor(0, settled)
	if len(r.Monitors()) != 0 {
		t.Fatalf("expected no monitors after disconnect")
	}

	r.AddMonitor("DP-1", Size{W: 1920, H: 1080}, 1, config.Struts{}, settled)
	after := r.Snapshot(settled)
	if after != before {
		t.Fatalf("expected reconnect to restore the layout verbatim:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestRoot_ReconnectIgnoresWorkspacesFromOtherOutputs(t *testing.T) {
	r, _ := newTestRoot(t)
	if _, err := r.OpenWindow(newFakeWindow(1, WindowProps{}), 0); err != nil {
		t.Fatalf("OpenWindow: %v", err)
	}
	r.RemoveMonitor(0, 0)

	// A different output connects: DP-1's limboed workspace stays put.
	r.AddMonitor("HDMI-1", Size{W: 1280, H: 720}, 1, config.Struts{}, 0)
	if got := r.ActiveMonitor().ActiveWorkspace().Scrolling().Len(); got != 0 {
		t.Fatalf("expected DP-1's workspace to stay in limbo, got %d columns on HDMI-1", got)
	}

	r.AddMonitor("DP-1", Size{W: 1920, H: 1080}, 1, config.Struts{}, 0)
	if got := r.ActiveMonitor().ActiveWorkspace().Scrolling().Len(); got != 1 {
		t.Fatalf("expected DP-1's workspace restored on reconnect, got %d columns", got)
	}
}

func TestRoot_HandleCommitRoutesToCorrectTile(t *testing.T) {
	r, _ := newTestRoot(t)
	winA := newFakeWindow(1, WindowProps{})
	winB := newFakeWindow(2, WindowProps{})
	idA, _ := r.OpenWindow(winA, 0)
	idB, _ := r.OpenWindow(winB, 0)

	if err := r.HandleCommit(idA, 1, Size{W: 321, H: 111}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.HandleCommit(idB, 1, Size{W: 555, H: 222}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ws := r.ActiveMonitor().ActiveWorkspace()
	var gotA, gotB Size
	for _, c := range ws.Scrolling().Columns() {
		for _, tile := range c.Tiles() {
			switch tile.Window().ID() {
			case idA:
				gotA = tile.CurrentOuterSize(0)
			case idB:
				gotB = tile.CurrentOuterSize(0)
			}
		}
	}
	if gotA.W != 321+2*r.cfg.BorderWidth || gotB.W != 555+2*r.cfg.BorderWidth {
		t.Fatalf("expected each commit routed to its own tile, got A=%v B=%v", gotA, gotB)
	}
}
