package layout

import (
	"math"

	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

// resizeAnimThreshold is the smallest logical-pixel size delta on commit
// worth animating; anything smaller snaps instantly.
const resizeAnimThreshold = 10.0

// RenderState is what a Tile hands to the compositor's renderer: the
// window's current logical size, a uniform open/close scale+opacity
// progress, and whether the close animation has finished (the tile can be
// reaped once true).
type RenderState struct {
	Size           Size
	Scale          float64
	Opacity        float64
	CloseDone      bool
	BorderWidth    float64
	CornerRadius   float64
	ClipToGeometry bool
}

// Tile wraps one mapped Window with the engine-owned state needed to size
// it, animate its appearance and resizes, and eventually close it.
type Tile struct {
	win   Window
	props WindowProps
	clock *animation.Clock

	borderWidth    float64
	cornerRadius   float64
	clipToGeometry bool

	requestedOuter Size
	lastCommitted  Size
	haveCommitted  bool
	serial         uint32

	openProg  *Animated
	closeProg *Animated

	resizeAnim *Animated
	resizeFrom Size
	resizeTo   Size

	animOpen   config.Animation
	animClose  config.Animation
	animResize config.Animation
}

// NewTile wraps win and immediately starts its open animation at tNow.
func NewTile(win Window, clock *animation.Clock, borderWidth float64, anims config.Animations, tNow float64) *Tile {
	t := &Tile{
		win:         win,
		props:       win.Props(),
		clock:       clock,
		borderWidth: borderWidth,
		animOpen:    anims.WindowOpen,
		animClose:   anims.WindowClose,
		animResize:  anims.WindowResize,
	}
	t.openProg = NewAnimated(0, 1, tNow, animConfig(t.animOpen))
	return t
}

// WindowContentSize converts an outer tile box into
// the size handed to Configure.
func (t *Tile) WindowContentSize(outer Size) Size {
	w := outer.W - 2*t.borderWidth
	h := outer.H - 2*t.borderWidth
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Size{W: w, H: h}
}

// RequestSize configures the window to outer (a border-inclusive tile box)
// and returns the serial the caller should expect back via HandleCommit.
func (t *Tile) RequestSize(outer Size, flags StateFlags) uint32 {
	t.requestedOuter = outer
	t.serial++
	t.win.Configure(t.WindowContentSize(outer), flags, t.serial)
	return t.serial
}

// OnCommit records a committed content size and, if it differs from the
// previously committed size by more than resizeAnimThreshold, starts a
// window-resize animation from the old outer size to the new one.
// The serial is not checked: a commit for a stale serial is applied like
// any other.
func (t *Tile) OnCommit(serial uint32, actualContent Size, tNow float64) {
	outer := Size{W: actualContent.W + 2*t.borderWidth, H: actualContent.H + 2*t.borderWidth}
	if !t.haveCommitted {
		t.lastCommitted = outer
		t.haveCommitted = true
		return
	}
	prev := t.lastCommitted
	t.lastCommitted = outer
	if sizeDelta(prev, outer) > resizeAnimThreshold {
		t.resizeFrom = prev
		t.resizeTo = outer
		t.resizeAnim = NewAnimated(0, 1, tNow, animConfig(t.animResize))
	} else {
		t.resizeAnim = nil
	}
}

func sizeDelta(a, b Size) float64 {
	dw := math.Abs(a.W - b.W)
	dh := math.Abs(a.H - b.H)
	if dw > dh {
		return dw
	}
	return dh
}

// CurrentOuterSize is the tile's current rendered outer size, lerping
// through an in-flight resize animation.
func (t *Tile) CurrentOuterSize(tNow float64) Size {
	if t.resizeAnim == nil {
		return t.lastCommitted
	}
	if t.resizeAnim.IsDone(tNow) {
		t.resizeAnim = nil
		return t.resizeTo
	}
	f := t.resizeAnim.Sample(tNow)
	return Size{
		W: t.resizeFrom.W + (t.resizeTo.W-t.resizeFrom.W)*f,
		H: t.resizeFrom.H + (t.resizeTo.H-t.resizeFrom.H)*f,
	}
}

// Close starts the close animation, preserving whatever open-progress
// value the tile had reached. The tile is immediately excluded from layout
// and focus — callers check IsClosing, not IsCloseDone, for that.
func (t *Tile) Close(tNow float64) {
	cur := 1.0
	if t.openProg != nil {
		cur = t.openProg.Sample(tNow)
	}
	t.openProg = nil
	t.closeProg = NewAnimated(cur, 0, tNow, animConfig(t.animClose))
}

func (t *Tile) IsClosing() bool   { return t.closeProg != nil }
func (t *Tile) IsCloseDone(tNow float64) bool {
	return t.closeProg != nil && t.closeProg.IsDone(tNow)
}

// Render reports the tile's current visual state.
func (t *Tile) Render(tNow float64) RenderState {
	progress := 1.0
	closeDone := false
	switch {
	case t.closeProg != nil:
		progress = t.closeProg.Sample(tNow)
		closeDone = t.closeProg.IsDone(tNow)
	case t.openProg != nil:
		progress = t.openProg.Sample(tNow)
		if t.openProg.IsDone(tNow) {
			t.openProg = nil
			progress = 1
		}
	}
	return RenderState{
		Size:           t.CurrentOuterSize(tNow),
		Scale:          progress,
		Opacity:        progress,
		CloseDone:      closeDone,
		BorderWidth:    t.borderWidth,
		CornerRadius:   t.cornerRadius,
		ClipToGeometry: t.clipToGeometry,
	}
}

func (t *Tile) Window() Window           { return t.win }
func (t *Tile) Props() WindowProps       { return t.props }
func (t *Tile) RefreshProps()            { t.props = t.win.Props() }
func (t *Tile) SetBorderWidth(w float64) { t.borderWidth = w }

// SetDecor sets the geometry corner radius and whether the window surface
// is clipped to it. Only the clipped case affects what the window itself
// shows; the radius alone just rounds the drawn decoration.
func (t *Tile) SetDecor(cornerRadius float64, clipToGeometry bool) {
	t.cornerRadius = cornerRadius
	t.clipToGeometry = clipToGeometry
}
