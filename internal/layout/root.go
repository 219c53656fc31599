package layout

import (
	"fmt"
	"log"

	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

// tileLocation is the root's index entry for a mapped window: which
// monitor and workspace hold it, and which of the two spaces. The index is
// the only place in the engine that points "up" the ownership tree — every
// other lookup walks down from Root.
type tileLocation struct {
	monitorIdx   int
	workspaceIdx int
	floating     bool
}

// limboEntry is one workspace held by Root while its original output is
// disconnected. Workspaces are limboed individually, not as a whole
// monitor, so that reconnecting an output restores exactly the workspaces
// that belonged to it, in their original relative order, even if other
// workspaces were moved around (or other outputs connected/disconnected)
// in the meantime.
type limboEntry struct {
	originalOutput string
	ws             *Workspace
}

// Root is the whole compositor's layout state: every monitor, the window
// ID index used to dispatch id-addressed operations, and workspaces
// currently disconnected and held in limbo.
type Root struct {
	cfg   *config.Config
	clock *animation.Clock
	rules []WindowRule

	monitors      []*Monitor
	monitorNames  []string
	activeMonitor int

	limbo []limboEntry

	namedWorkspaces    []string
	namedWorkspacesSet bool

	index map[WindowID]*tileLocation
}

// NewRoot constructs an empty root with no monitors. Operations that need
// a monitor fail until AddMonitor is called at least once.
func NewRoot(cfg *config.Config, clock *animation.Clock, rules []WindowRule) *Root {
	return &Root{
		cfg:   cfg,
		clock: clock,
		rules: rules,
		index: map[WindowID]*tileLocation{},
	}
}

// SetNamedWorkspaces registers the set of eagerly-created named workspaces
//: they are instantiated on the first monitor that connects and
// are never auto-destroyed even when empty.
func (r *Root) SetNamedWorkspaces(names []string) {
	r.namedWorkspaces = names
}

func (r *Root) Monitors() []*Monitor { return r.monitors }
func (r *Root) ActiveMonitorIndex() int { return r.activeMonitor }
func (r *Root) ActiveMonitor() *Monitor {
	if r.activeMonitor < 0 || r.activeMonitor >= len(r.monitors) {
		return nil
	}
	return r.monitors[r.activeMonitor]
}

// AddMonitor connects an output. Any limboed workspace whose original
// output matches name is restored onto it, in its original relative
// order; the monitor's own trailing-empty workspace is created fresh
// either way. Named workspaces are instantiated on the very
// first monitor to ever connect.
func (r *Root) AddMonitor(name string, outputSize Size, scale float64, struts config.Struts, tNow float64) int {
	m := NewMonitor(r.cfg, r.clock, outputSize, config.ClampScale(scale), struts, tNow)
	m.workspaces[0].OriginalOutput = name
	r.monitors = append(r.monitors, m)
	r.monitorNames = append(r.monitorNames, name)
	idx := len(r.monitors) - 1

	if !r.namedWorkspacesSet {
		r.namedWorkspacesSet = true
		for _, n := range r.namedWorkspaces {
			m.AddNamedWorkspace(n, tNow)
			if wi := m.WorkspaceIndexByName(n); wi >= 0 {
				m.workspaces[wi].OriginalOutput = name
			}
		}
	}

	restored := make([]*Workspace, 0, len(r.limbo))
	var keep []limboEntry
	for _, e := range r.limbo {
		if e.originalOutput == name {
			restored = append(restored, e.ws)
		} else {
			keep = append(keep, e)
		}
	}
	r.limbo = keep

	if len(restored) > 0 {
		insertAt := len(m.workspaces) - 1
		for _, ws := range restored {
			ws.SetScale(m.scale)
			ws.SetWorkingArea(m.workingArea(), tNow)
		}
		m.workspaces = append(m.workspaces[:insertAt], append(restored, m.workspaces[insertAt:]...)...)
		m.active = insertAt
		m.ensureInvariant(tNow)
	}

	r.activeMonitor = idx
	r.reindexAll()
	return idx
}

// RemoveMonitor disconnects an output. Every workspace on it except the
// trailing empty one is held individually in limbo, tagged with this
// output's name, so a later AddMonitor for the same name restores them in
// their original relative order. The output's own trailing-empty
// workspace, having no content, is simply discarded.
func (r *Root) RemoveMonitor(idx int, tNow float64) {
	if idx < 0 || idx >= len(r.monitors) {
		return
	}
	removed := r.monitors[idx]
	name := r.monitorNames[idx]
	r.monitors = append(r.monitors[:idx], r.monitors[idx+1:]...)
	r.monitorNames = append(r.monitorNames[:idx], r.monitorNames[idx+1:]...)

	for i, w := range removed.workspaces {
		if i == len(removed.workspaces)-1 && w.IsEmpty() && !w.IsNamed() {
			continue
		}
		origin := w.OriginalOutput
		if origin == "" {
			origin = name
		}
		r.limbo = append(r.limbo, limboEntry{originalOutput: origin, ws: w})
	}

	if r.activeMonitor >= len(r.monitors) {
		r.activeMonitor = len(r.monitors) - 1
		if r.activeMonitor < 0 {
			r.activeMonitor = 0
		}
	}
	r.reindexAll()
}

// monitorDirIndex resolves a direction keyword against the monitor list,
// treating it as a simple ordered ring (this engine has no spatial
// output-arrangement model). left/up move to the previous
// monitor, right/down/next move to the next one, previous moves back.
func (r *Root) monitorDirIndex(dir string) int {
	if len(r.monitors) < 2 {
		return -1
	}
	switch dir {
	case "left", "up", "previous":
		return (r.activeMonitor - 1 + len(r.monitors)) % len(r.monitors)
	case "right", "down", "next":
		return (r.activeMonitor + 1) % len(r.monitors)
	default:
		return -1
	}
}

// MoveWorkspaceToMonitor detaches the active workspace from the active
// monitor and attaches it to the monitor in direction dir. No-op if there is nowhere to move it to, or
// if the active workspace is the monitor's sole trailing-empty slot.
func (r *Root) MoveWorkspaceToMonitor(dir string, tNow float64) {
	dstIdx := r.monitorDirIndex(dir)
	if dstIdx < 0 {
		return
	}
	src := r.ActiveMonitor()
	if src == nil {
		return
	}
	ws := src.RemoveActiveWorkspace(tNow)
	if ws == nil {
		return
	}
	r.monitors[dstIdx].InsertWorkspace(ws, tNow)
	r.activeMonitor = dstIdx
	r.reindexAll()
}

// FocusWorkspace switches the active monitor's active workspace. index
// switches to that absolute position; name searches every monitor's named
// workspaces and switches both the active monitor and its active
// workspace if found; dir ("up"/"down") moves by one slot on the active
// monitor. Exactly one of name/dir should be non-empty when index < 0.
func (r *Root) FocusWorkspace(index int, name, dir string, tNow float64) {
	if name != "" {
		for mi, m := range r.monitors {
			if wi := m.WorkspaceIndexByName(name); wi >= 0 {
				r.activeMonitor = mi
				m.SwitchTo(wi, tNow)
				return
			}
		}
		return
	}
	mon := r.ActiveMonitor()
	if mon == nil {
		return
	}
	switch dir {
	case "up":
		mon.SwitchDelta(-1, tNow)
	case "down":
		mon.SwitchDelta(1, tNow)
	default:
		if index >= 0 {
			mon.SwitchTo(index, tNow)
		}
	}
}

// MoveColumnToWorkspace transplants the active column of the active
// monitor's active workspace onto another workspace of that same monitor,
// addressed by absolute index, by name, or by up/down relative to the
// active workspace. No-op if
// there is no active column or the destination does not resolve.
func (r *Root) MoveColumnToWorkspace(index int, name, dir string, tNow float64) {
	mon := r.ActiveMonitor()
	if mon == nil {
		return
	}
	dst := -1
	switch {
	case name != "":
		dst = mon.WorkspaceIndexByName(name)
	case dir == "up":
		dst = mon.active - 1
	case dir == "down":
		dst = mon.active + 1
	default:
		dst = index
	}
	if dst < 0 || dst >= len(mon.workspaces) || dst == mon.active {
		return
	}
	src := mon.ActiveWorkspace()
	col := src.scrolling.TakeActiveColumn(tNow)
	if col == nil {
		return
	}
	dstWs := mon.workspaces[dst]
	dstWs.scrolling.AdoptColumn(col, dstWs.scrolling.Len(), true, tNow)
	dstWs.FocusFloating(false)
	mon.ensureInvariant(tNow)
	r.reindexAll()
}

// MoveWorkspaceDelta reorders the active monitor's active workspace by
// delta slots.
func (r *Root) MoveWorkspaceDelta(delta int, tNow float64) {
	mon := r.ActiveMonitor()
	if mon == nil {
		return
	}
	mon.MoveWorkspaceDelta(delta, tNow)
}

// MoveColumnToMonitor transplants the active column onto the monitor in
// direction dir, landing on that monitor's active workspace.
func (r *Root) MoveColumnToMonitor(dir string, tNow float64) {
	dstIdx := r.monitorDirIndex(dir)
	if dstIdx < 0 {
		return
	}
	src := r.ActiveMonitor()
	if src == nil {
		return
	}
	srcWs := src.ActiveWorkspace()
	col := srcWs.scrolling.TakeActiveColumn(tNow)
	if col == nil {
		return
	}
	dst := r.monitors[dstIdx]
	dstWs := dst.ActiveWorkspace()
	dstWs.scrolling.AdoptColumn(col, dstWs.scrolling.Len(), true, tNow)
	dstWs.FocusFloating(false)
	src.ensureInvariant(tNow)
	dst.ensureInvariant(tNow)
	r.reindexAll()
}

// Snapshot renders the textual snapshot of the active monitor's active
// workspace's scrolling space — the view the test harness drives its
// assertions against.
func (r *Root) Snapshot(tNow float64) string {
	mon := r.ActiveMonitor()
	if mon == nil {
		return ""
	}
	return mon.ActiveWorkspace().scrolling.Snapshot(tNow)
}

// reindexAll rebuilds the id index from scratch. Closing tiles are
// skipped: they stay in their column/floating slice until their close
// animation finishes (so they still render), but CloseWindow already
// removed them from the index and they must not come back until then.
func (r *Root) reindexAll() {
	r.index = map[WindowID]*tileLocation{}
	for mi, m := range r.monitors {
		for wi, w := range m.workspaces {
			for _, c := range w.scrolling.columns {
				for _, t := range c.tiles {
					if t.IsClosing() {
						continue
					}
					r.index[t.win.ID()] = &tileLocation{monitorIdx: mi, workspaceIdx: wi}
				}
			}
			for _, ft := range w.floating.tiles {
				if ft.tile.IsClosing() {
					continue
				}
				r.index[ft.tile.win.ID()] = &tileLocation{monitorIdx: mi, workspaceIdx: wi, floating: true}
			}
		}
	}
}

// locate resolves an id through the index. An unknown id is a normal race
// (the window may have closed between event and dispatch) and returns a
// plain error; an index entry pointing outside the tree is a programming
// error — it is logged at error severity, the stale entry is dropped, and
// the operation is dropped with it rather than crashing the session.
func (r *Root) locate(id WindowID) (*Monitor, *Workspace, *tileLocation, error) {
	loc, ok := r.index[id]
	if !ok {
		return nil, nil, nil, fmt.Errorf("window %d: not mapped", id)
	}
	if loc.monitorIdx < 0 || loc.monitorIdx >= len(r.monitors) {
		log.Printf("error: window index out of sync: window %d points at monitor %d of %d, dropping operation", id, loc.monitorIdx, len(r.monitors))
		delete(r.index, id)
		return nil, nil, nil, fmt.Errorf("window %d: stale index entry", id)
	}
	m := r.monitors[loc.monitorIdx]
	if loc.workspaceIdx < 0 || loc.workspaceIdx >= len(m.workspaces) {
		log.Printf("error: window index out of sync: window %d points at workspace %d of %d, dropping operation", id, loc.workspaceIdx, len(m.workspaces))
		delete(r.index, id)
		return nil, nil, nil, fmt.Errorf("window %d: stale index entry", id)
	}
	w := m.workspaces[loc.workspaceIdx]
	return m, w, loc, nil
}

// OpenWindow maps win onto a monitor/workspace, applying the first
// matching window rule to decide open-on-output, open-on-workspace,
// floating vs tiled placement, initial width, border width, and the
// maximized/fullscreen/floating open tri-state. Absent a matching rule
// (or a rule leaving a given effect unset), the auto-float
// classification, the active monitor/workspace, and the configured
// default column width decide. Rule application happens exactly once,
// here, at first configure — it is never re-evaluated for this window.
func (r *Root) OpenWindow(win Window, tNow float64) (WindowID, error) {
	mon := r.ActiveMonitor()
	if mon == nil {
		return 0, fmt.Errorf("open window: no monitor connected")
	}
	props := win.Props()
	rule := MatchRule(r.rules, props)

	border := r.cfg.BorderWidth
	width := r.cfg.DefaultColumnWidth
	floating := props.IsChild || props.IsFixedSize()
	state := OpenDefault
	if rule != nil {
		state = rule.OpenState
		switch state {
		case OpenFloating:
			floating = true
		case OpenTiled:
			floating = false
		}
		if rule.Width != nil {
			width = *rule.Width
		}
		if rule.BorderWidth != nil {
			border = *rule.BorderWidth
		}
		if rule.OpenOnOutput != "" {
			for i, name := range r.monitorNames {
				if name == rule.OpenOnOutput {
					mon = r.monitors[i]
					r.activeMonitor = i
					break
				}
			}
		}
	}

	ws := mon.ActiveWorkspace()
	if rule != nil && rule.OpenOnWorkspace != "" {
		if wi := mon.WorkspaceIndexByName(rule.OpenOnWorkspace); wi >= 0 {
			ws = mon.workspaces[wi]
		}
	}
	ws.OriginalOutput = r.monitorNames[r.activeMonitor]

	t := NewTile(win, r.clock, border, r.cfg.Animations, tNow)
	t.SetDecor(r.cfg.CornerRadius, r.cfg.ClipToGeometry)

	if floating {
		rect := defaultFloatingRect(props, mon.workingArea())
		ws.AddFloating(t, rect, true)
	} else {
		atIndex := ws.scrolling.Len()
		if ac := ws.scrolling.ActiveColumnIndex(); ac >= 0 {
			atIndex = ac + 1
		}
		ws.AddTiled(t, atIndex, width, true, tNow)
		switch state {
		case OpenMaximized:
			ws.scrolling.ToggleFullWidth(tNow)
		case OpenFullscreen:
			ws.scrolling.ToggleColumnFullscreen()
		}
	}

	mon.ensureInvariant(tNow)
	r.reindexAll()
	return win.ID(), nil
}

func defaultFloatingRect(props WindowProps, working Rect) Rect {
	w := maxf(props.MinWidth, 640)
	h := maxf(props.MinHeight, 480)
	if props.MaxWidth > 0 {
		w = minf(w, props.MaxWidth)
	}
	if props.MaxHeight > 0 {
		h = minf(h, props.MaxHeight)
	}
	return Rect{
		X: working.X + (working.W-w)/2,
		Y: working.Y + (working.H-h)/2,
		W: w,
		H: h,
	}
}

// CloseWindow starts the window's close animation and immediately drops it
// from the index: a closing tile is invisible to every id-addressed
// operation from this point on, even though it still renders until its
// animation finishes.
func (r *Root) CloseWindow(id WindowID, tNow float64) error {
	_, w, loc, err := r.locate(id)
	if err != nil {
		return err
	}
	if loc.floating {
		idx := w.floating.IndexOf(id)
		if idx < 0 {
			log.Printf("error: window index out of sync: window %d indexed floating but absent from its workspace, dropping close", id)
		} else {
			w.floating.tiles[idx].tile.Close(tNow)
		}
	} else {
		for _, c := range w.scrolling.columns {
			for _, t := range c.tiles {
				if t.win.ID() == id {
					t.Close(tNow)
				}
			}
		}
	}
	delete(r.index, id)
	return nil
}

// HandleCommit forwards a commit for window id to the tile holding it.
func (r *Root) HandleCommit(id WindowID, serial uint32, actualContent Size, tNow float64) error {
	_, w, loc, err := r.locate(id)
	if err != nil {
		return err
	}
	if loc.floating {
		idx := w.floating.IndexOf(id)
		if idx < 0 {
			log.Printf("error: window index out of sync: window %d indexed floating but absent from its workspace, dropping commit", id)
			return fmt.Errorf("window %d: not found in floating space", id)
		}
		w.floating.tiles[idx].tile.OnCommit(serial, actualContent, tNow)
		return nil
	}
	for _, c := range w.scrolling.columns {
		for _, t := range c.tiles {
			if t.win.ID() == id {
				t.OnCommit(serial, actualContent, tNow)
				return nil
			}
		}
	}
	log.Printf("error: window index out of sync: window %d indexed tiled but absent from its workspace, dropping commit", id)
	return fmt.Errorf("window %d: not found in scrolling space", id)
}

// FocusWindow switches monitor and workspace focus to wherever id lives and
// focuses it within its space.
func (r *Root) FocusWindow(id WindowID, tNow float64) error {
	_, w, loc, err := r.locate(id)
	if err != nil {
		return err
	}
	r.activeMonitor = loc.monitorIdx
	mon := r.monitors[loc.monitorIdx]
	mon.SwitchTo(loc.workspaceIdx, tNow)
	if loc.floating {
		idx := w.floating.IndexOf(id)
		if idx < 0 {
			log.Printf("error: window index out of sync: window %d indexed floating but absent from its workspace, dropping focus", id)
			return nil
		}
		w.floating.FocusIndex(idx)
		w.FocusFloating(true)
		return nil
	}
	for ci, c := range w.scrolling.columns {
		for ti, t := range c.tiles {
			if t.win.ID() == id {
				w.scrolling.FocusColumn(ci, tNow)
				c.active = ti
				w.FocusFloating(false)
				return nil
			}
		}
	}
	log.Printf("error: window index out of sync: window %d indexed tiled but absent from its workspace, dropping focus", id)
	return nil
}

// ToggleFloating moves id between the tiled and floating spaces of its
// workspace, preserving the Tile (and therefore its animations) across the
// move.
func (r *Root) ToggleFloating(id WindowID, tNow float64) error {
	_, w, loc, err := r.locate(id)
	if err != nil {
		return err
	}
	if loc.floating {
		idx := w.floating.IndexOf(id)
		if idx < 0 {
			log.Printf("error: window index out of sync: window %d indexed floating but absent from its workspace, dropping toggle", id)
			return fmt.Errorf("window %d: not found in floating space", id)
		}
		t := w.floating.Remove(idx)
		atIndex := w.scrolling.Len()
		if ac := w.scrolling.ActiveColumnIndex(); ac >= 0 {
			atIndex = ac + 1
		}
		w.AddTiled(t, atIndex, r.cfg.DefaultColumnWidth, true, tNow)
	} else {
		var moved *Tile
		for _, c := range w.scrolling.columns {
			for ti, t := range c.tiles {
				if t.win.ID() == id {
					moved = c.RemoveTileAt(ti)
				}
			}
		}
		if moved == nil {
			log.Printf("error: window index out of sync: window %d indexed tiled but absent from its workspace, dropping toggle", id)
			return fmt.Errorf("window %d: not found in scrolling space", id)
		}
		w.scrolling.pruneEmptyColumns(tNow)
		w.scrolling.retargetViewOffset(tNow)
		w.scrolling.ConfigureAll(tNow)
		rect := defaultFloatingRect(moved.Props(), w.workingArea)
		w.AddFloating(moved, rect, true)
	}
	r.reindexAll()
	return nil
}

// Tick advances every monitor's animations and workspace-stack invariant.
func (r *Root) Tick(tNow float64) {
	for _, m := range r.monitors {
		m.Tick(tNow)
	}
	r.reindexAll()
}

// Render returns every on-screen tile across every monitor.
func (r *Root) Render(tNow float64) map[string][]MonitorTileRender {
	out := make(map[string][]MonitorTileRender, len(r.monitors))
	for i, m := range r.monitors {
		out[r.monitorNames[i]] = m.Render(tNow)
	}
	return out
}
