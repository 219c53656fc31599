package layout

import "github.com/driftwm/scrollwm/internal/config"

// HeightKind is a per-tile height policy within a column.
type HeightKind string

const (
	HeightAuto       HeightKind = "auto"
	HeightFixed      HeightKind = "fixed"
	HeightProportion HeightKind = "proportion"
)

// HeightPolicy is one tile's height policy.
type HeightPolicy struct {
	Kind  HeightKind
	Value float64 // px for Fixed, fraction for Proportion
}

// ProportionalWidth computes a column or tile box dimension from a
// proportion f of the available span, using the gap-inclusive formula that
// lets adjacent fractional columns tile exactly: for n columns whose
// proportions sum to 1, the strip they occupy (plus the gaps between them)
// exactly fills span.
func ProportionalWidth(f, span, gap, scale float64) float64 {
	return FloorToPhysical(ProportionalWidthExact(f, span, gap), scale)
}

// ProportionalWidthExact is ProportionalWidth before physical-pixel
// flooring. The scrolling space floors the running sum of these instead of
// each width individually, so adjacent proportional columns tile with no
// accumulated rounding gap.
func ProportionalWidthExact(f, span, gap float64) float64 {
	w := (span+gap)*f - gap
	if w < 1 {
		w = 1
	}
	return w
}

// Column is a vertical stack of tiles sharing one horizontal strip of the
// scrolling space. It owns its tiles outright; nothing outside the
// scrolling space holds a pointer into a Column.
type Column struct {
	tiles     []*Tile
	heights   []HeightPolicy
	active    int
	width     config.Width
	fullWidth bool
}

// NewColumn wraps a single tile in a new column at the given width policy.
func NewColumn(t *Tile, width config.Width) *Column {
	return &Column{
		tiles:   []*Tile{t},
		heights: []HeightPolicy{{Kind: HeightAuto}},
		active:  0,
		width:   width,
	}
}

func (c *Column) Len() int          { return len(c.tiles) }
func (c *Column) Tiles() []*Tile    { return c.tiles }
func (c *Column) ActiveIndex() int  { return c.active }
func (c *Column) ActiveTile() *Tile {
	if c.active < 0 || c.active >= len(c.tiles) {
		return nil
	}
	return c.tiles[c.active]
}
func (c *Column) Width() config.Width     { return c.width }
func (c *Column) SetWidth(w config.Width) { c.width = w }
func (c *Column) IsFullWidth() bool       { return c.fullWidth }
func (c *Column) SetFullWidth(v bool)     { c.fullWidth = v }

// UsesProportionalWidth reports whether the column's effective width is
// derived from a proportion of the working area, making it eligible for
// the rounding-residue assignment.
func (c *Column) UsesProportionalWidth() bool {
	return !c.fullWidth && c.width.Kind != config.WidthFixed
}

// OuterWidth resolves the column's width policy to a logical-pixel,
// border-inclusive outer width.
func (c *Column) OuterWidth(workingW, gap, scale float64) float64 {
	if c.fullWidth {
		return RoundToPhysical(workingW, scale)
	}
	switch c.width.Kind {
	case config.WidthFixed:
		w := c.width.Value
		if w < 1 {
			w = 1
		}
		return RoundToPhysical(w, scale)
	default: // Proportion, ClientChoice (resolved to a proportion by the caller)
		return ProportionalWidth(c.width.Value, workingW, gap, scale)
	}
}

// PruneClosed drops tiles whose close animation has finished, adjusting the
// active index to stay in range. Returns true if the column is now empty.
func (c *Column) PruneClosed(tNow float64) bool {
	out := c.tiles[:0]
	outH := c.heights[:0]
	removedBeforeActive := 0
	for i, t := range c.tiles {
		if t.IsClosing() && t.IsCloseDone(tNow) {
			if i < c.active {
				removedBeforeActive++
			}
			continue
		}
		out = append(out, t)
		outH = append(outH, c.heights[i])
	}
	c.tiles = out
	c.heights = outH
	c.active -= removedBeforeActive
	if c.active >= len(c.tiles) {
		c.active = len(c.tiles) - 1
	}
	if c.active < 0 {
		c.active = 0
	}
	return len(c.tiles) == 0
}

// visibleIndices lists tiles not currently mid-close, which is what height
// distribution and focus navigation see: a closing tile is invisible to
// the column's distribution immediately, not at animation end.
func (c *Column) visibleIndices() []int {
	idx := make([]int, 0, len(c.tiles))
	for i, t := range c.tiles {
		if !t.IsClosing() {
			idx = append(idx, i)
		}
	}
	return idx
}

// DistributeHeights returns the outer (border-inclusive) height assigned to
// every tile in the column, indexed the same as Tiles(). Closing tiles get
// height 0 — closing tiles are removed from layout immediately and
// only physically pruned once their animation finishes. Auto tiles split
// the remaining space evenly; a tile whose window advertises min==max>0
// height is treated as Fixed at that value regardless of its nominal
// policy.
func (c *Column) DistributeHeights(workingH, gap, scale float64) []float64 {
	out := make([]float64, len(c.tiles))
	visible := c.visibleIndices()
	n := len(visible)
	if n == 0 {
		return out
	}
	totalGap := gap * float64(n-1)
	available := workingH - totalGap
	if available < float64(n) {
		available = float64(n)
	}

	fixedSum := 0.0
	autoCount := 0
	resolved := make([]HeightPolicy, len(visible))
	for k, i := range visible {
		hp := c.heights[i]
		if fh, ok := c.tiles[i].Props().FixedHeight(); ok {
			hp = HeightPolicy{Kind: HeightFixed, Value: fh + 2*c.tiles[i].borderWidth}
		}
		resolved[k] = hp
		switch hp.Kind {
		case HeightFixed:
			fixedSum += hp.Value
		case HeightProportion:
			fixedSum += ProportionalWidth(hp.Value, available, gap, scale)
		default:
			autoCount++
		}
	}

	autoShare := 0.0
	if autoCount > 0 {
		autoShare = (available - fixedSum) / float64(autoCount)
		if autoShare < 1 {
			autoShare = 1
		}
	}

	for k, i := range visible {
		hp := resolved[k]
		var h float64
		switch hp.Kind {
		case HeightFixed:
			h = hp.Value
		case HeightProportion:
			h = ProportionalWidth(hp.Value, available, gap, scale)
		default:
			h = autoShare
		}
		out[i] = RoundToPhysical(h, scale)
	}
	return out
}

// ActiveHeightPolicy returns the active tile's current height policy.
func (c *Column) ActiveHeightPolicy() HeightPolicy {
	if c.active < 0 || c.active >= len(c.heights) {
		return HeightPolicy{Kind: HeightAuto}
	}
	return c.heights[c.active]
}

// SetActiveHeight sets the active tile's height policy.
func (c *Column) SetActiveHeight(hp HeightPolicy) {
	if c.active >= 0 && c.active < len(c.heights) {
		c.heights[c.active] = hp
	}
}

// FocusDelta moves the active tile index by delta, clamped to range.
func (c *Column) FocusDelta(delta int) {
	c.active = clampInt(c.active+delta, 0, len(c.tiles)-1)
}

// MoveTileDelta swaps the active tile with its neighbor delta rows away
// (delta is +1 or -1 in practice) and keeps it active.
func (c *Column) MoveTileDelta(delta int) {
	dst := clampInt(c.active+delta, 0, len(c.tiles)-1)
	if dst == c.active {
		return
	}
	c.tiles[c.active], c.tiles[dst] = c.tiles[dst], c.tiles[c.active]
	c.heights[c.active], c.heights[dst] = c.heights[dst], c.heights[c.active]
	c.active = dst
}

// InsertTile inserts t at index with the given height policy, shifting the
// active index to keep pointing at the same tile unless activate is set.
func (c *Column) InsertTile(index int, t *Tile, hp HeightPolicy, activate bool) {
	c.tiles = append(c.tiles, nil)
	copy(c.tiles[index+1:], c.tiles[index:])
	c.tiles[index] = t
	c.heights = append(c.heights, HeightPolicy{})
	copy(c.heights[index+1:], c.heights[index:])
	c.heights[index] = hp
	if activate {
		c.active = index
	} else if index <= c.active {
		c.active++
	}
}

// RemoveTileAt removes the tile at index without waiting for a close
// animation (used for moving a tile into another column, not for closing
// it). Returns the removed tile.
func (c *Column) RemoveTileAt(index int) *Tile {
	t := c.tiles[index]
	c.tiles = append(c.tiles[:index], c.tiles[index+1:]...)
	c.heights = append(c.heights[:index], c.heights[index+1:]...)
	if c.active >= len(c.tiles) {
		c.active = len(c.tiles) - 1
	}
	if c.active < 0 {
		c.active = 0
	}
	return t
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
