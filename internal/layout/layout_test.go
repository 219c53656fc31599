package layout

import "github.com/driftwm/scrollwm/internal/config"

// fakeWindow is a minimal Window used across this package's tests. It
// records the most recent Configure call and lets tests script its
// advertised properties.
type fakeWindow struct {
	id    WindowID
	props WindowProps

	lastSize   Size
	lastFlags  StateFlags
	lastSerial uint32
	configured int
}

func newFakeWindow(id WindowID, props WindowProps) *fakeWindow {
	return &fakeWindow{id: id, props: props}
}

func (w *fakeWindow) ID() WindowID        { return w.id }
func (w *fakeWindow) Props() WindowProps  { return w.props }
func (w *fakeWindow) Configure(size Size, flags StateFlags, serial uint32) {
	w.lastSize = size
	w.lastFlags = flags
	w.lastSerial = serial
	w.configured++
}

func testConfig() *config.Config {
	c := config.Default()
	// Deterministic, fast-settling animations so tests can sample a few
	// steps ahead of "now" and trust IsDone.
	c.Animations.WindowOpen = config.Animation{Kind: config.AnimationEasing, DurationMS: 100, Curve: "linear"}
	c.Animations.WindowClose = config.Animation{Kind: config.AnimationEasing, DurationMS: 100, Curve: "linear"}
	c.Animations.WindowResize = config.Animation{Kind: config.AnimationSpring, DampingRatio: 1, Stiffness: 800, Epsilon: 0.01}
	c.Animations.ViewOffset = config.Animation{Kind: config.AnimationSpring, DampingRatio: 1, Stiffness: 1000, Epsilon: 0.01}
	c.Animations.WorkspaceSwitch = config.Animation{Kind: config.AnimationSpring, DampingRatio: 1, Stiffness: 1000, Epsilon: 0.01}
	c.Clamp()
	return c
}
