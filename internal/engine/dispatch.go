package engine

import (
	"strconv"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/layout"
)

// dispatch implements the operation table, addressed to "the focused
// thing": the active monitor's active workspace, and within it whichever
// tile/column/space currently holds focus. Every branch is a no-op on
// malformed or out-of-range args — operations are total, never erroring,
// matching the layout core's own contract. Caller holds e.mu.
func (e *Engine) dispatch(name string, args []string) error {
	tNow := e.clock.Now()
	mon := e.root.ActiveMonitor()
	if mon == nil {
		return nil
	}
	ws := mon.ActiveWorkspace()
	sc := ws.Scrolling()
	fl := ws.Floating()

	arg0 := ""
	if len(args) > 0 {
		arg0 = args[0]
	}

	switch name {
	case "focus-column-left":
		sc.FocusVisualDelta(-1, tNow)
	case "focus-column-right":
		sc.FocusVisualDelta(1, tNow)
	case "focus-column-index":
		// N is a 1-based position in the current visual order, which
		// right-to-left mode reverses; the space translates.
		if n, ok := atoi(arg0); ok && n >= 1 {
			sc.FocusVisualIndex(n-1, tNow)
		}
	case "focus-column-first":
		sc.FocusVisualIndex(0, tNow)
	case "focus-column-last":
		sc.FocusVisualIndex(sc.Len()-1, tNow)

	case "move-column-left":
		sc.MoveColumnVisualDelta(-1, tNow)
	case "move-column-right":
		sc.MoveColumnVisualDelta(1, tNow)
	case "move-column-to-first":
		sc.MoveColumnToVisual(0, tNow)
	case "move-column-to-last":
		sc.MoveColumnToVisual(sc.Len()-1, tNow)

	case "focus-window-up":
		if col := sc.ActiveColumn(); col != nil {
			col.FocusDelta(-1)
		}
	case "focus-window-down":
		if col := sc.ActiveColumn(); col != nil {
			col.FocusDelta(1)
		}
	case "move-window-up":
		if col := sc.ActiveColumn(); col != nil {
			col.MoveTileDelta(-1)
		}
	case "move-window-down":
		if col := sc.ActiveColumn(); col != nil {
			col.MoveTileDelta(1)
		}

	case "consume-window-into-column":
		sc.ConsumeIntoActive(tNow)
	case "expel-window-from-column":
		sc.ExpelActive(tNow)

	case "set-column-width":
		setColumnWidth(sc, args, tNow)
	case "set-window-height":
		setWindowHeight(sc, args, tNow)

	case "maximize-column":
		sc.ToggleFullWidth(tNow)
	case "fullscreen-window":
		sc.ToggleColumnFullscreen()
	case "center-column":
		sc.CenterActiveColumn(tNow)
	case "switch-preset-column-width":
		sc.CyclePresetWidth(stepOf(arg0), tNow)
	case "switch-preset-window-height":
		sc.CyclePresetHeight(stepOf(arg0), tNow)

	case "move-column-to-workspace":
		idx, wsName, dir := indexNameDir(args)
		e.root.MoveColumnToWorkspace(idx, wsName, dir, tNow)
	case "move-column-to-monitor":
		e.root.MoveColumnToMonitor(arg0, tNow)

	case "focus-workspace":
		idx, wsName, dir := indexNameDir(args)
		e.root.FocusWorkspace(idx, wsName, dir, tNow)
	case "move-workspace-up":
		e.root.MoveWorkspaceDelta(-1, tNow)
	case "move-workspace-down":
		e.root.MoveWorkspaceDelta(1, tNow)
	case "move-workspace-to-monitor":
		e.root.MoveWorkspaceToMonitor(arg0, tNow)

	case "toggle-window-floating":
		if t := ws.FocusedTile(); t != nil {
			return e.root.ToggleFloating(t.Window().ID(), tNow)
		}
	case "switch-focus-between-floating-and-tiling":
		ws.ToggleFocusBetweenFloatingAndTiling()
	case "move-floating-window":
		if len(args) >= 2 {
			dx, okx := parseFloat(args[0])
			dy, oky := parseFloat(args[1])
			if okx && oky {
				fl.MoveActiveDelta(dx, dy)
			}
		}
	}
	return nil
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func stepOf(s string) int {
	if s == "-1" || s == "prev" || s == "previous" {
		return -1
	}
	return 1
}

// indexNameDir splits a move-column-to-workspace/focus-workspace argument
// list into its three mutually-exclusive addressing modes: an absolute
// index, a workspace name, or an up/down direction.
func indexNameDir(args []string) (index int, name, dir string) {
	index = -1
	if len(args) == 0 {
		return
	}
	a := args[0]
	switch a {
	case "up", "down":
		dir = a
		return
	}
	if n, ok := atoi(a); ok {
		index = n
		return
	}
	name = a
	return
}

// setColumnWidth implements the set-column-width
// (fixed|delta|proportion|toggle-preset) variants against the focused
// column.
func setColumnWidth(sc *layout.ScrollingSpace, args []string, tNow float64) {
	if len(args) == 0 {
		return
	}
	mode := args[0]
	if mode == "toggle-preset" {
		step := 1
		if len(args) > 1 {
			step = stepOf(args[1])
		}
		sc.CyclePresetWidth(step, tNow)
		return
	}
	if len(args) < 2 {
		return
	}
	v, ok := parseFloat(args[1])
	if !ok {
		return
	}
	col := sc.ActiveColumn()
	if col == nil {
		return
	}
	switch mode {
	case "fixed":
		sc.SetColumnWidth(config.Fixed(v), tNow)
	case "proportion":
		sc.SetColumnWidth(config.Proportion(v), tNow)
	case "delta":
		cur := col.Width()
		sc.SetColumnWidth(config.Width{Kind: cur.Kind, Value: cur.Value + v}, tNow)
	}
}

// setWindowHeight mirrors setColumnWidth for the focused tile's height
// policy within its column.
func setWindowHeight(sc *layout.ScrollingSpace, args []string, tNow float64) {
	if len(args) == 0 {
		return
	}
	mode := args[0]
	if mode == "toggle-preset" {
		step := 1
		if len(args) > 1 {
			step = stepOf(args[1])
		}
		sc.CyclePresetHeight(step, tNow)
		return
	}
	if len(args) < 2 {
		return
	}
	v, ok := parseFloat(args[1])
	if !ok {
		return
	}
	col := sc.ActiveColumn()
	if col == nil {
		return
	}
	switch mode {
	case "fixed":
		col.SetActiveHeight(layout.HeightPolicy{Kind: layout.HeightFixed, Value: v})
	case "proportion":
		col.SetActiveHeight(layout.HeightPolicy{Kind: layout.HeightProportion, Value: v})
	case "delta":
		cur := col.ActiveHeightPolicy()
		col.SetActiveHeight(layout.HeightPolicy{Kind: cur.Kind, Value: cur.Value + v})
	}
	sc.ConfigureAll(tNow)
}
