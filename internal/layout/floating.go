package layout

// floatingExpansionMargin is how far a floating tile may be dragged or
// placed past the working area and still be considered reachable: at least
// this many logical pixels of it must remain within working_area.
const floatingExpansionMargin = 64.0

// floatingTile pairs a Tile with its free-form position/size and stacking
// position (its index in FloatingSpace.tiles, back to front).
type floatingTile struct {
	tile *Tile
	rect Rect
}

// FloatingSpace holds windows positioned and sized independently of the
// scrolling strip. Z-order is the slice order, back to front; Raise
// moves a tile to the end.
type FloatingSpace struct {
	tiles       []*floatingTile
	active      int // -1 when empty
	workingArea Rect
}

func NewFloatingSpace() *FloatingSpace {
	return &FloatingSpace{active: -1}
}

// SetWorkingArea records the area floating tiles are clamped against. A
// rect already placed outside the new area is re-clamped on the next
// SetRect/MoveActiveDelta, not retroactively here, mirroring how
// ScrollingSpace only repositions on the next operation that touches
// layout.
func (f *FloatingSpace) SetWorkingArea(r Rect) {
	f.workingArea = r
}

// clampToWorkingArea keeps at least floatingExpansionMargin logical pixels
// of rect within the working area, so a tile dragged mostly off-screen can
// still be grabbed back.
func (f *FloatingSpace) clampToWorkingArea(rect Rect) Rect {
	area := f.workingArea
	if area.W <= 0 || area.H <= 0 {
		return rect
	}
	minX := area.X - rect.W + floatingExpansionMargin
	maxX := area.X + area.W - floatingExpansionMargin
	minY := area.Y - rect.H + floatingExpansionMargin
	maxY := area.Y + area.H - floatingExpansionMargin
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	rect.X = clampf(rect.X, minX, maxX)
	rect.Y = clampf(rect.Y, minY, maxY)
	return rect
}

func (f *FloatingSpace) Len() int { return len(f.tiles) }

func (f *FloatingSpace) ActiveTile() *Tile {
	if f.active < 0 || f.active >= len(f.tiles) {
		return nil
	}
	return f.tiles[f.active].tile
}

// Add places t at rect, configures it to rect's size, and raises it to the
// top of the stack.
func (f *FloatingSpace) Add(t *Tile, rect Rect, activate bool) {
	rect = f.clampToWorkingArea(rect)
	f.tiles = append(f.tiles, &floatingTile{tile: t, rect: rect})
	t.RequestSize(rect.Size(), 0)
	if activate || f.active < 0 {
		f.active = len(f.tiles) - 1
	}
}

// Remove drops the tile at index without waiting on its close animation
// (used when reparenting into the scrolling space, not for closing).
func (f *FloatingSpace) Remove(index int) *Tile {
	t := f.tiles[index].tile
	f.tiles = append(f.tiles[:index], f.tiles[index+1:]...)
	if f.active >= len(f.tiles) {
		f.active = len(f.tiles) - 1
	}
	return t
}

// SetRect repositions/resizes the tile at index, reconfiguring it if its
// size changed.
func (f *FloatingSpace) SetRect(index int, rect Rect) {
	if index < 0 || index >= len(f.tiles) {
		return
	}
	ft := f.tiles[index]
	rect = f.clampToWorkingArea(rect)
	resized := ft.rect.W != rect.W || ft.rect.H != rect.H
	ft.rect = rect
	if resized {
		ft.tile.RequestSize(rect.Size(), 0)
	}
}

// MoveActiveDelta shifts the active floating tile by (dx, dy). A no-op if nothing is floating.
func (f *FloatingSpace) MoveActiveDelta(dx, dy float64) {
	if f.active < 0 || f.active >= len(f.tiles) {
		return
	}
	ft := f.tiles[f.active]
	f.SetRect(f.active, Rect{X: ft.rect.X + dx, Y: ft.rect.Y + dy, W: ft.rect.W, H: ft.rect.H})
}

// Raise moves the tile at index to the top of the stack. The active
// pointer keeps referring to the same tile it did before the splice.
func (f *FloatingSpace) Raise(index int) {
	if index < 0 || index >= len(f.tiles)-1 {
		return
	}
	ft := f.tiles[index]
	f.tiles = append(f.tiles[:index], f.tiles[index+1:]...)
	f.tiles = append(f.tiles, ft)
	switch {
	case f.active == index:
		f.active = len(f.tiles) - 1
	case f.active > index:
		f.active--
	}
}

// FocusIndex focuses the tile at index and raises it to the top of the
// stack: the most-recently-focused tile always renders above the rest.
func (f *FloatingSpace) FocusIndex(index int) {
	if index < 0 || index >= len(f.tiles) {
		return
	}
	f.active = index
	f.Raise(index)
}

// IndexOf finds a tile by window ID, or -1.
func (f *FloatingSpace) IndexOf(id WindowID) int {
	for i, ft := range f.tiles {
		if ft.tile.Window().ID() == id {
			return i
		}
	}
	return -1
}

// Tick prunes tiles whose close animation has finished.
func (f *FloatingSpace) Tick(tNow float64) {
	out := f.tiles[:0]
	removedBeforeActive := 0
	for i, ft := range f.tiles {
		if ft.tile.IsClosing() && ft.tile.IsCloseDone(tNow) {
			if i < f.active {
				removedBeforeActive++
			}
			continue
		}
		out = append(out, ft)
	}
	f.tiles = out
	f.active -= removedBeforeActive
	if f.active >= len(f.tiles) {
		f.active = len(f.tiles) - 1
	}
}

// Render returns every floating tile's placement in stacking order, back
// to front.
func (f *FloatingSpace) Render(tNow float64) []TileRender {
	out := make([]TileRender, 0, len(f.tiles))
	for _, ft := range f.tiles {
		rs := ft.tile.Render(tNow)
		r := ft.rect
		r.W, r.H = rs.Size.W, rs.Size.H
		out = append(out, TileRender{ID: ft.tile.Window().ID(), Rect: r, Visual: rs})
	}
	return out
}
