package layout

import (
	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

// Workspace pairs one scrolling space with one floating space sharing the
// same working area. Exactly one of the two holds input focus at a
// time.
//
// A Workspace is always in one of three states: attached to a monitor (it
// sits in that Monitor's workspaces slice), in limbo (held by Root.limbo
// while its original output is disconnected), or named-empty (a named
// workspace that Root keeps around even with no monitor at all, before the
// user's config has placed it anywhere). OriginalOutput records the output
// name a workspace should be restored to on reconnect; it is set for a
// monitor's first workspace and for named workspaces when they are created,
// and overwritten with the current output's name whenever a window is
// opened into the workspace.
type Workspace struct {
	Name           string
	OriginalOutput string

	cfg   *config.Config
	clock *animation.Clock

	scrolling *ScrollingSpace
	floating  *FloatingSpace

	focusFloating bool

	workingArea Rect
}

// NewWorkspace constructs an empty workspace.
func NewWorkspace(cfg *config.Config, clock *animation.Clock, scale float64) *Workspace {
	return &Workspace{
		cfg:       cfg,
		clock:     clock,
		scrolling: NewScrollingSpace(cfg, clock, scale),
		floating:  NewFloatingSpace(),
	}
}

func (w *Workspace) Scrolling() *ScrollingSpace { return w.scrolling }
func (w *Workspace) Floating() *FloatingSpace   { return w.floating }

// IsEmpty reports whether the workspace holds no tiles at all, the
// condition the monitor's trailing-empty-workspace invariant tracks.
func (w *Workspace) IsEmpty() bool {
	return w.scrolling.Len() == 0 && w.floating.Len() == 0
}

// SetWorkingArea applies an output's logical size minus struts (already
// clamped by config.ClampStruts) to both spaces.
func (w *Workspace) SetWorkingArea(r Rect, tNow float64) {
	w.workingArea = r
	w.scrolling.SetWorkingArea(r, tNow)
	w.floating.SetWorkingArea(r)
}

func (w *Workspace) SetScale(scale float64) {
	w.scrolling.SetScale(scale)
}

// FocusedTile returns whichever tile currently holds focus within this
// workspace.
func (w *Workspace) FocusedTile() *Tile {
	if w.focusFloating {
		return w.floating.ActiveTile()
	}
	if col := w.scrolling.ActiveColumn(); col != nil {
		return col.ActiveTile()
	}
	return nil
}

func (w *Workspace) FocusFloating(focus bool) { w.focusFloating = focus }
func (w *Workspace) IsFloatingFocused() bool   { return w.focusFloating }

// ToggleFocusBetweenFloatingAndTiling flips which of the two spaces holds
// focus. A no-op toward a
// space that currently holds no tiles.
func (w *Workspace) ToggleFocusBetweenFloatingAndTiling() {
	if w.focusFloating {
		if w.scrolling.Len() > 0 {
			w.focusFloating = false
		}
		return
	}
	if w.floating.Len() > 0 {
		w.focusFloating = true
	}
}

// AddTiled opens t into the scrolling space at atIndex.
func (w *Workspace) AddTiled(t *Tile, atIndex int, width config.Width, activate bool, tNow float64) {
	w.scrolling.AddColumn(t, atIndex, width, activate, tNow)
	if activate {
		w.focusFloating = false
	}
}

// IsNamed reports whether this is a user-named workspace, which the
// monitor's trailing-empty-workspace invariant never auto-destroys even
// while empty.
func (w *Workspace) IsNamed() bool { return w.Name != "" }

// AddFloating opens t into the floating space at rect.
func (w *Workspace) AddFloating(t *Tile, rect Rect, activate bool) {
	w.floating.Add(t, rect, activate)
	if activate {
		w.focusFloating = true
	}
}

// Tick advances close-pruning and view-offset settling for both spaces.
func (w *Workspace) Tick(tNow float64) {
	w.scrolling.Tick(tNow)
	w.floating.Tick(tNow)
}

// Render returns every visible tile placement in this workspace's local
// coordinates: tiled first (back), floating last.
func (w *Workspace) Render(tNow float64) []TileRender {
	out := w.scrolling.Render(tNow)
	out = append(out, w.floating.Render(tNow)...)
	return out
}
