package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

// TileRender is one tile's placement and visual state, in scrolling-space
// local logical coordinates (origin at the working area's top-left, X
// already net of the current view offset). Right-to-left mirroring is
// applied here at render time only and is never baked into stored state.
type TileRender struct {
	ID     WindowID
	Rect   Rect
	Visual RenderState
}

// ScrollingSpace is the horizontally-scrolling strip of columns that makes
// up the tiled half of a workspace. It owns its columns
// outright; the view offset is the only animated quantity it keeps.
type ScrollingSpace struct {
	cfg   *config.Config
	clock *animation.Clock
	scale float64

	workingArea Rect

	columns []*Column
	columnX []float64
	columnW []float64
	active  int // -1 when empty

	viewOffset *Animated

	fullscreenIdx int // -1 when no column is fullscreen
}

// NewScrollingSpace constructs an empty scrolling space.
func NewScrollingSpace(cfg *config.Config, clock *animation.Clock, scale float64) *ScrollingSpace {
	return &ScrollingSpace{
		cfg:           cfg,
		clock:         clock,
		scale:         scale,
		active:        -1,
		fullscreenIdx: -1,
	}
}

// SetWorkingArea updates the available area and reconfigures every tile to
// its new size under the changed geometry.
func (s *ScrollingSpace) SetWorkingArea(r Rect, tNow float64) {
	s.workingArea = r
	s.recomputeX()
	s.ConfigureAll(tNow)
}
func (s *ScrollingSpace) SetScale(scale float64) { s.scale = scale }

// ConfigureAll requests each non-closing tile's window resize to its
// currently-distributed box. It must run after anything that changes a
// column's width, a tile's height share, or the working area.
func (s *ScrollingSpace) ConfigureAll(tNow float64) {
	s.recomputeX()
	for ci, col := range s.columns {
		w := s.columnW[ci]
		heights := col.DistributeHeights(s.workingArea.H, s.cfg.Gaps, s.scale)
		for i, tile := range col.Tiles() {
			if tile.IsClosing() {
				continue
			}
			tile.RequestSize(Size{W: w, H: heights[i]}, 0)
		}
	}
}
func (s *ScrollingSpace) Len() int               { return len(s.columns) }
func (s *ScrollingSpace) ActiveColumnIndex() int { return s.active }
func (s *ScrollingSpace) Columns() []*Column     { return s.columns }

func (s *ScrollingSpace) ActiveColumn() *Column {
	if s.active < 0 || s.active >= len(s.columns) {
		return nil
	}
	return s.columns[s.active]
}

// recomputeX resolves every column's outer width and x position.
// Proportional widths are floored to a physical pixel cumulatively: each
// column's width is the difference between successive floored running
// sums of the exact widths, so the flooring residue lands on the columns
// toward the right edge and n columns at proportion 1/n tile the working
// area with no gap left over. Appending a column never changes the widths
// already assigned, since it only extends the running sum.
func (s *ScrollingSpace) recomputeX() {
	n := len(s.columns)
	s.columnW = make([]float64, n)
	s.columnX = make([]float64, n)

	propExact, propFloored := 0.0, 0.0
	for i, c := range s.columns {
		if c.UsesProportionalWidth() {
			propExact += ProportionalWidthExact(c.Width().Value, s.workingArea.W, s.cfg.Gaps)
			w := FloorToPhysical(propExact+1e-9, s.scale) - propFloored
			propFloored += w
			s.columnW[i] = w
		} else {
			s.columnW[i] = c.OuterWidth(s.workingArea.W, s.cfg.Gaps, s.scale)
		}
	}

	x := 0.0
	for i := range s.columns {
		s.columnX[i] = x
		x += s.columnW[i] + s.cfg.Gaps
	}
}

func (s *ScrollingSpace) stripWidth() float64 {
	if len(s.columns) == 0 {
		return 0
	}
	last := len(s.columns) - 1
	return s.columnX[last] + s.columnW[last]
}

func (s *ScrollingSpace) ensureViewOffset(tNow float64) {
	if s.viewOffset == nil {
		s.viewOffset = NewAnimated(0, 0, tNow, animConfig(s.cfg.Animations.ViewOffset))
	}
}

// AddColumn inserts a new single-tile column built from t at atIndex. If
// activate is true the new column becomes active and the view animates to
// show it; otherwise, if the insertion happened at or before the current
// active column, the active index and the stored view offset both shift by
// exactly the inserted column's width+gap with no animation, keeping the
// previously active column visually stationary.
func (s *ScrollingSpace) AddColumn(t *Tile, atIndex int, width config.Width, activate bool, tNow float64) {
	s.insertColumn(NewColumn(t, width), atIndex, activate, tNow)
}

// AdoptColumn inserts an already-built column (moved from another
// scrolling space, e.g. move-column-to-workspace/move-column-to-monitor)
// at atIndex, with the same active-index/view-offset bookkeeping as
// opening a brand new one.
func (s *ScrollingSpace) AdoptColumn(col *Column, atIndex int, activate bool, tNow float64) {
	s.insertColumn(col, atIndex, activate, tNow)
}

// insertColumn is the shared insertion path for AddColumn/AdoptColumn: it
// shifts visible x-coordinates and, when the insertion does not activate
// the new column, keeps the previously active column visually stationary.
// Appending leaves every existing width unchanged; inserting before
// proportional columns can change their widths by one physical pixel,
// since recomputeX derives them from floored running sums.
func (s *ScrollingSpace) insertColumn(col *Column, atIndex int, activate bool, tNow float64) {
	atIndex = clampInt(atIndex, 0, len(s.columns))

	oldActive := s.active
	oldActiveX := 0.0
	if oldActive >= 0 && oldActive < len(s.columnX) {
		oldActiveX = s.columnX[oldActive]
	}
	shiftActive := !activate && oldActive >= 0 && atIndex <= oldActive

	s.columns = append(s.columns, nil)
	copy(s.columns[atIndex+1:], s.columns[atIndex:])
	s.columns[atIndex] = col

	if activate {
		s.active = atIndex
	} else if shiftActive {
		s.active = oldActive + 1
	} else if s.active < 0 {
		s.active = atIndex
	}
	s.recomputeX()

	s.ensureViewOffset(tNow)
	if !activate && oldActive >= 0 {
		// Keep the previously active column visually stationary: shift the
		// stored offset (and any in-flight animation) by however far its x
		// moved, with no animation.
		s.viewOffset.Shift(s.columnX[s.active] - oldActiveX)
	}
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
}

// TakeActiveColumn removes the active column from this space outright (no
// close animation — it is being transplanted into another space, not
// closed) and returns it, or nil if the space is empty.
func (s *ScrollingSpace) TakeActiveColumn(tNow float64) *Column {
	if s.active < 0 || s.active >= len(s.columns) {
		return nil
	}
	idx := s.active
	col := s.columns[idx]

	s.columns = append(s.columns[:idx], s.columns[idx+1:]...)
	if s.fullscreenIdx == idx {
		s.fullscreenIdx = -1
	} else if s.fullscreenIdx > idx {
		s.fullscreenIdx--
	}
	if s.active >= len(s.columns) {
		s.active = len(s.columns) - 1
	}
	if len(s.columns) == 0 {
		s.active = -1
	}
	s.recomputeX()
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
	return col
}

// pruneEmptyColumns removes every column left with zero tiles (their last
// tile finished closing), keeping the active index and view offset
// consistent the same way AddColumn's insertion does, in reverse.
func (s *ScrollingSpace) pruneEmptyColumns(tNow float64) {
	i := 0
	for i < len(s.columns) {
		if s.columns[i].Len() != 0 {
			i++
			continue
		}
		removedBeforeActive := i < s.active
		oldActiveX := 0.0
		if s.active >= 0 && s.active < len(s.columnX) {
			oldActiveX = s.columnX[s.active]
		}

		s.columns = append(s.columns[:i], s.columns[i+1:]...)
		if s.fullscreenIdx == i {
			s.fullscreenIdx = -1
		} else if s.fullscreenIdx > i {
			s.fullscreenIdx--
		}

		if removedBeforeActive {
			s.active--
		} else if s.active >= len(s.columns) {
			s.active = len(s.columns) - 1
		}
		s.recomputeX()
		if removedBeforeActive && s.active >= 0 {
			s.ensureViewOffset(tNow)
			s.viewOffset.Shift(s.columnX[s.active] - oldActiveX)
		}
	}
	if len(s.columns) == 0 {
		s.active = -1
	}
}

// Tick prunes fully-closed tiles and the columns they leave empty, then
// re-settles the view offset target. Call once per frame.
func (s *ScrollingSpace) Tick(tNow float64) {
	for _, c := range s.columns {
		c.PruneClosed(tNow)
	}
	s.pruneEmptyColumns(tNow)
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
}

// FocusColumn moves the active column to idx and animates the view to it.
func (s *ScrollingSpace) FocusColumn(idx int, tNow float64) {
	if len(s.columns) == 0 {
		return
	}
	s.active = clampInt(idx, 0, len(s.columns)-1)
	s.ensureViewOffset(tNow)
	s.retargetViewOffset(tNow)
}

// FocusDelta moves the active column by delta columns.
func (s *ScrollingSpace) FocusDelta(delta int, tNow float64) {
	s.FocusColumn(s.active+delta, tNow)
}

// visualDelta maps a visually-leftward/rightward step onto the stored
// LTR-native column order, which right-to-left rendering mirrors: a step
// that looks leftward on screen walks the stored order backwards in LTR
// and forwards in RTL.
func (s *ScrollingSpace) visualDelta(delta int) int {
	if s.cfg.RightToLeft {
		return -delta
	}
	return delta
}

// visualIndex maps a 0-based position in the current visual order to the
// stored index.
func (s *ScrollingSpace) visualIndex(pos int) int {
	if s.cfg.RightToLeft {
		return len(s.columns) - 1 - pos
	}
	return pos
}

// FocusVisualDelta moves focus by delta steps in the on-screen order
// (negative is visually leftward).
func (s *ScrollingSpace) FocusVisualDelta(delta int, tNow float64) {
	s.FocusDelta(s.visualDelta(delta), tNow)
}

// FocusVisualIndex focuses the column at a 0-based position in the
// on-screen order.
func (s *ScrollingSpace) FocusVisualIndex(pos int, tNow float64) {
	if len(s.columns) == 0 {
		return
	}
	s.FocusColumn(s.visualIndex(clampInt(pos, 0, len(s.columns)-1)), tNow)
}

// MoveColumnVisualDelta reorders the active column by delta steps in the
// on-screen order.
func (s *ScrollingSpace) MoveColumnVisualDelta(delta int, tNow float64) {
	s.MoveColumnDelta(s.visualDelta(delta), tNow)
}

// MoveColumnToVisual reorders the active column to a 0-based position in
// the on-screen order.
func (s *ScrollingSpace) MoveColumnToVisual(pos int, tNow float64) {
	if s.active < 0 || len(s.columns) == 0 {
		return
	}
	dst := s.visualIndex(clampInt(pos, 0, len(s.columns)-1))
	s.MoveColumnDelta(dst-s.active, tNow)
}

// MoveColumnDelta reorders the active column delta slots away and keeps it
// active. The stored view offset shifts by however far the moved column's
// x changed, so the moved column holds its visible position and the
// displaced neighbours appear to pass by it; the follow-up retarget then
// animates the view back into a position where it is fully visible.
func (s *ScrollingSpace) MoveColumnDelta(delta int, tNow float64) {
	if s.active < 0 {
		return
	}
	src := s.active
	dst := clampInt(src+delta, 0, len(s.columns)-1)
	if dst == src {
		return
	}
	movedX := s.columnX[src]
	col := s.columns[src]
	s.columns = append(s.columns[:src], s.columns[src+1:]...)
	tail := append([]*Column{col}, s.columns[dst:]...)
	s.columns = append(s.columns[:dst], tail...)

	switch {
	case s.fullscreenIdx == src:
		s.fullscreenIdx = dst
	case src < s.fullscreenIdx && s.fullscreenIdx <= dst:
		s.fullscreenIdx--
	case dst <= s.fullscreenIdx && s.fullscreenIdx < src:
		s.fullscreenIdx++
	}

	s.active = dst
	s.recomputeX()
	s.ensureViewOffset(tNow)
	s.viewOffset.Shift(s.columnX[dst] - movedX)
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
}

// SetColumnWidth sets the active column's width policy and re-settles the
// view.
func (s *ScrollingSpace) SetColumnWidth(w config.Width, tNow float64) {
	col := s.ActiveColumn()
	if col == nil {
		return
	}
	col.SetWidth(w)
	col.SetFullWidth(false)
	s.recomputeX()
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
}

// CyclePresetWidth advances the active column through cfg.PresetColumnWidths
// by step (+1/-1), wrapping.
func (s *ScrollingSpace) CyclePresetWidth(step int, tNow float64) {
	col := s.ActiveColumn()
	if col == nil || len(s.cfg.PresetColumnWidths) == 0 {
		return
	}
	presets := s.cfg.PresetColumnWidths
	cur := 0
	for i, p := range presets {
		if p.Kind == col.Width().Kind && p.Value == col.Width().Value {
			cur = i
			break
		}
	}
	next := ((cur+step)%len(presets) + len(presets)) % len(presets)
	s.SetColumnWidth(presets[next], tNow)
}

// CyclePresetHeight advances the active tile of the active column through
// cfg.PresetWindowHeights by step (+1/-1), wrapping.
func (s *ScrollingSpace) CyclePresetHeight(step int, tNow float64) {
	col := s.ActiveColumn()
	if col == nil || len(s.cfg.PresetWindowHeights) == 0 {
		return
	}
	presets := s.cfg.PresetWindowHeights
	cur := col.heights[col.ActiveIndex()]
	curIdx := 0
	for i, p := range presets {
		if string(hpKindFromWidthKind(p.Kind)) == string(cur.Kind) && p.Value == cur.Value {
			curIdx = i
			break
		}
	}
	next := ((curIdx+step)%len(presets) + len(presets)) % len(presets)
	p := presets[next]
	col.SetActiveHeight(HeightPolicy{Kind: hpKindFromWidthKind(p.Kind), Value: p.Value})
	s.ConfigureAll(tNow)
}

func hpKindFromWidthKind(k config.WidthKind) HeightKind {
	if k == config.WidthFixed {
		return HeightFixed
	}
	return HeightProportion
}

// ToggleFullWidth toggles the active column occupying the entire working
// area regardless of its nominal width policy.
func (s *ScrollingSpace) ToggleFullWidth(tNow float64) {
	col := s.ActiveColumn()
	if col == nil {
		return
	}
	col.SetFullWidth(!col.IsFullWidth())
	s.recomputeX()
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
}

// ToggleColumnFullscreen marks the active column as the space's sole
// fullscreen column, or clears fullscreen if it already is one.
func (s *ScrollingSpace) ToggleColumnFullscreen() {
	if s.active < 0 {
		return
	}
	if s.fullscreenIdx == s.active {
		s.fullscreenIdx = -1
	} else {
		s.fullscreenIdx = s.active
	}
}

func (s *ScrollingSpace) FullscreenColumnIndex() int { return s.fullscreenIdx }

// CenterActiveColumn retargets the view to center the active column
// exactly once, regardless of the configured center-focused-column policy.
// Unlike the policy, this does not change what future focus changes center
// on.
func (s *ScrollingSpace) CenterActiveColumn(tNow float64) {
	if s.active < 0 || s.active >= len(s.columns) {
		return
	}
	s.ensureViewOffset(tNow)
	s.recomputeX()
	s.viewOffset.Retarget(tNow, s.centerOffset(s.columnX[s.active], s.columnW[s.active]))
}

// ConsumeIntoActive merges the single tile of the column right after the
// active one into the active column as a new row, removing that column.
func (s *ScrollingSpace) ConsumeIntoActive(tNow float64) {
	if s.active < 0 || s.active+1 >= len(s.columns) {
		return
	}
	next := s.columns[s.active+1]
	if next.Len() != 1 {
		return
	}
	tile := next.RemoveTileAt(0)
	active := s.columns[s.active]
	active.InsertTile(active.ActiveIndex()+1, tile, HeightPolicy{Kind: HeightAuto}, true)
	s.columns = append(s.columns[:s.active+1], s.columns[s.active+2:]...)
	if s.fullscreenIdx > s.active {
		s.fullscreenIdx--
	}
	s.recomputeX()
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
}

// ExpelActive moves the active tile of a multi-tile column into its own
// new column immediately to the right, which becomes active.
func (s *ScrollingSpace) ExpelActive(tNow float64) {
	if s.active < 0 {
		return
	}
	col := s.columns[s.active]
	if col.Len() <= 1 {
		return
	}
	idx := col.ActiveIndex()
	tile := col.RemoveTileAt(idx)
	newCol := NewColumn(tile, col.Width())
	insertAt := s.active + 1
	s.columns = append(s.columns, nil)
	copy(s.columns[insertAt+1:], s.columns[insertAt:])
	s.columns[insertAt] = newCol
	s.active = insertAt
	s.recomputeX()
	s.retargetViewOffset(tNow)
	s.ConfigureAll(tNow)
}

// targetOffsetForActive computes the view_offset target for the
// current active column under the configured center-focused-column policy.
func (s *ScrollingSpace) targetOffsetForActive() float64 {
	if s.active < 0 || s.active >= len(s.columns) {
		return 0
	}
	x := s.columnX[s.active]
	w := s.columnW[s.active]
	vw := s.workingArea.W

	if len(s.columns) == 1 && s.cfg.AlwaysCenterSingleColumn {
		return s.centerOffset(x, w)
	}

	switch s.cfg.CenterFocusedColumn {
	case config.CenterAlways:
		return s.centerOffset(x, w)
	case config.CenterOnOverflow:
		cur := s.currentOrTargetOffset()
		if x >= cur && x+w <= cur+vw {
			return cur
		}
		return s.centerOffset(x, w)
	default: // never
		return s.minimalOffset(x, w)
	}
}

func (s *ScrollingSpace) currentOrTargetOffset() float64 {
	if s.viewOffset == nil {
		return 0
	}
	return s.viewOffset.Target()
}

func (s *ScrollingSpace) centerOffset(x, w float64) float64 {
	vw := s.workingArea.W
	offset := x + w/2 - vw/2
	maxOffset := maxf(0, s.stripWidth()-vw)
	return clampf(offset, 0, maxOffset)
}

func (s *ScrollingSpace) minimalOffset(x, w float64) float64 {
	vw := s.workingArea.W
	cur := s.currentOrTargetOffset()
	if w >= vw {
		return maxf(0, x)
	}
	if x < cur {
		return maxf(0, x)
	}
	if x+w > cur+vw {
		return maxf(0, x+w-vw)
	}
	return maxf(0, cur)
}

func (s *ScrollingSpace) retargetViewOffset(tNow float64) {
	if len(s.columns) == 0 {
		return
	}
	s.ensureViewOffset(tNow)
	target := s.targetOffsetForActive()
	if s.viewOffset.Target() != target {
		s.viewOffset.Retarget(tNow, target)
	}
}

// ViewOffset returns the currently-sampled view offset, mainly for tests.
func (s *ScrollingSpace) ViewOffset(tNow float64) float64 {
	if s.viewOffset == nil {
		return 0
	}
	return s.viewOffset.Sample(tNow)
}

// Render lays out every visible tile in scrolling-space-local coordinates,
// net of the current view offset, mirroring right-to-left at render time
// only when cfg.RightToLeft is set.
func (s *ScrollingSpace) Render(tNow float64) []TileRender {
	s.recomputeX()
	offset := 0.0
	if s.viewOffset != nil {
		offset = s.viewOffset.Sample(tNow)
	}

	if s.fullscreenIdx >= 0 && s.fullscreenIdx < len(s.columns) {
		col := s.columns[s.fullscreenIdx]
		if tile := col.ActiveTile(); tile != nil {
			rs := tile.Render(tNow)
			r := Rect{X: 0, Y: 0, W: s.workingArea.W, H: s.workingArea.H}
			return []TileRender{{ID: tile.Window().ID(), Rect: r, Visual: rs}}
		}
	}

	var out []TileRender
	for ci, col := range s.columns {
		x := s.columnX[ci] - offset
		w := s.columnW[ci]
		heights := col.DistributeHeights(s.workingArea.H, s.cfg.Gaps, s.scale)
		y := 0.0
		for ti, tile := range col.Tiles() {
			h := heights[ti]
			rs := tile.Render(tNow)
			r := Rect{X: x, Y: y, W: w, H: h}
			if s.cfg.RightToLeft {
				r.X = s.workingArea.W - r.X - r.W
			}
			out = append(out, TileRender{ID: tile.Window().ID(), Rect: r, Visual: rs})
			if !tile.IsClosing() {
				y += h + s.cfg.Gaps
			}
		}
	}
	return out
}

// Snapshot renders the textual snapshot format for this space: one
// logical state per line, view offset and active-column summary first,
// then every column and tile. view_pos mirrors the glossary definition
// (max(0, view_offset) after RTL mirroring has been applied — mirroring
// never changes the sign of the stored offset, so for both orientations
// this is simply the clamped current sample).
func (s *ScrollingSpace) Snapshot(tNow float64) string {
	var sb strings.Builder
	s.recomputeX()

	offset := 0.0
	if s.viewOffset != nil {
		offset = s.viewOffset.Sample(tNow)
	}
	viewPos := maxf(0, offset)
	fmt.Fprintf(&sb, "view_offset=%s  view_pos=%s  active_column=%d\n", f64s(offset), f64s(viewPos), s.active)

	// Viewport x-coordinates mirror against the right edge in RTL mode,
	// the same reflection Render applies.
	mirror := func(x, w float64) float64 {
		if s.cfg.RightToLeft {
			return s.workingArea.W - x - w
		}
		return x
	}

	var activeX, activeTileX, activeTileY float64
	if col := s.ActiveColumn(); col != nil {
		activeX = mirror(s.columnX[s.active]-offset, s.columnW[s.active])
		activeTileX = activeX
		heights := col.DistributeHeights(s.workingArea.H, s.cfg.Gaps, s.scale)
		for i := 0; i < col.ActiveIndex(); i++ {
			if !col.tiles[i].IsClosing() {
				activeTileY += heights[i] + s.cfg.Gaps
			}
		}
	}
	fmt.Fprintf(&sb, "active_column_x=%s  active_tile_viewport_x=%s  active_tile_viewport_y=%s\n",
		f64s(activeX), f64s(activeTileX), f64s(activeTileY))

	for ci, col := range s.columns {
		marker := ""
		if ci == s.active {
			marker = " ACTIVE"
		}
		w := s.columnW[ci]
		x := mirror(s.columnX[ci]-offset, w)
		fmt.Fprintf(&sb, "column[%d]%s: x=%s width=%s active_tile=%d\n", ci, marker, f64s(x), widthPolicyString(col.Width()), col.ActiveIndex())

		heights := col.DistributeHeights(s.workingArea.H, s.cfg.Gaps, s.scale)
		y := 0.0
		for ti, tile := range col.Tiles() {
			tmarker := ""
			if ti == col.ActiveIndex() {
				tmarker = " ACTIVE"
			}
			fmt.Fprintf(&sb, "  tile[%d]%s: x=%s y=%s w=%s h=%s window_id=%d\n",
				ti, tmarker, f64s(x), f64s(y), f64s(w), f64s(heights[ti]), uint64(tile.Window().ID()))
			if !tile.IsClosing() {
				y += heights[ti] + s.cfg.Gaps
			}
		}
	}
	return sb.String()
}

func f64s(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func widthPolicyString(w config.Width) string {
	switch w.Kind {
	case config.WidthFixed:
		return fmt.Sprintf("fixed(%s)", f64s(w.Value))
	case config.WidthClientChoice:
		return "client-choice"
	default:
		return fmt.Sprintf("proportion(%s)", f64s(w.Value))
	}
}
