package layout

import (
	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

// Monitor is one output's vertical stack of workspaces. It owns
// every workspace outright and animates switching between them.
type Monitor struct {
	cfg   *config.Config
	clock *animation.Clock

	outputSize Size
	scale      float64
	struts     config.Struts

	workspaces   []*Workspace
	active       int
	switchOffset *Animated
}

// NewMonitor constructs a monitor with a single empty (trailing) workspace,
// per the invariant that an empty workspace always exists to receive
// new content.
func NewMonitor(cfg *config.Config, clock *animation.Clock, outputSize Size, scale float64, struts config.Struts, tNow float64) *Monitor {
	m := &Monitor{
		cfg:        cfg,
		clock:      clock,
		outputSize: outputSize,
		scale:      scale,
		struts:     struts,
	}
	m.workspaces = []*Workspace{m.newWorkspace()}
	m.active = 0
	m.applyWorkingAreas(tNow)
	return m
}

func (m *Monitor) newWorkspace() *Workspace {
	w := NewWorkspace(m.cfg, m.clock, m.scale)
	w.SetWorkingArea(m.workingArea(), m.clock.Now())
	return w
}

func (m *Monitor) workingArea() Rect {
	s := config.ClampStruts(m.struts, m.outputSize.W, m.outputSize.H)
	return Rect{
		X: s.Left,
		Y: s.Top,
		W: m.outputSize.W - s.Left - s.Right,
		H: m.outputSize.H - s.Top - s.Bottom,
	}
}

func (m *Monitor) applyWorkingAreas(tNow float64) {
	r := m.workingArea()
	for _, w := range m.workspaces {
		w.SetWorkingArea(r, tNow)
		w.SetScale(m.scale)
	}
}

// SetOutputGeometry updates output size, scale, and struts
// (clamped against the new size) and reapplies the resulting working area
// to every workspace.
func (m *Monitor) SetOutputGeometry(size Size, scale float64, struts config.Struts, tNow float64) {
	m.outputSize = size
	m.scale = config.ClampScale(scale)
	m.struts = struts
	m.applyWorkingAreas(tNow)
}

func (m *Monitor) Workspaces() []*Workspace { return m.workspaces }
func (m *Monitor) ActiveIndex() int         { return m.active }
func (m *Monitor) ActiveWorkspace() *Workspace {
	return m.workspaces[m.active]
}
func (m *Monitor) WorkingArea() Rect { return m.workingArea() }

func (m *Monitor) ensureSwitchOffset(tNow float64) {
	if m.switchOffset == nil {
		m.switchOffset = NewAnimated(float64(m.active)*m.outputSize.H, float64(m.active)*m.outputSize.H, tNow, animConfig(m.cfg.Animations.WorkspaceSwitch))
	}
}

// ensureInvariant drops empty, non-anchor, non-active workspaces and
// guarantees a trailing empty workspace (and, when configured, a leading
// one) always exists. Call after anything that can change workspace
// emptiness: adding a window, or a Tick that closed the last tile out of
// one.
func (m *Monitor) ensureInvariant(tNow float64) {
	i := 0
	for i < len(m.workspaces) {
		isFirstAnchor := i == 0 && m.cfg.EmptyWorkspaceAboveFirst
		isLast := i == len(m.workspaces)-1
		if m.workspaces[i].IsEmpty() && i != m.active && !isFirstAnchor && !isLast && !m.workspaces[i].IsNamed() {
			m.workspaces = append(m.workspaces[:i], m.workspaces[i+1:]...)
			if i < m.active {
				m.active--
				m.shiftSwitchOffset(-m.outputSize.H)
			}
			continue
		}
		i++
	}

	if m.cfg.EmptyWorkspaceAboveFirst && !m.workspaces[0].IsEmpty() {
		m.workspaces = append([]*Workspace{m.newWorkspace()}, m.workspaces...)
		m.active++
		m.shiftSwitchOffset(m.outputSize.H)
	}
	last := m.workspaces[len(m.workspaces)-1]
	if !last.IsEmpty() || last.IsNamed() {
		m.workspaces = append(m.workspaces, m.newWorkspace())
	}
}

func (m *Monitor) shiftSwitchOffset(delta float64) {
	if m.switchOffset == nil {
		return
	}
	m.switchOffset.Shift(delta)
}

// AddNamedWorkspace inserts an eagerly-created, never-auto-destroyed named
// workspace just before the trailing empty workspace. A no-op if the name already exists on this monitor.
func (m *Monitor) AddNamedWorkspace(name string, tNow float64) {
	for _, w := range m.workspaces {
		if w.Name == name {
			return
		}
	}
	ws := m.newWorkspace()
	ws.Name = name
	insertAt := len(m.workspaces) - 1
	m.workspaces = append(m.workspaces, nil)
	copy(m.workspaces[insertAt+1:], m.workspaces[insertAt:])
	m.workspaces[insertAt] = ws
	if insertAt <= m.active {
		m.active++
		m.shiftSwitchOffset(m.outputSize.H)
	}
	m.applyWorkingAreas(tNow)
}

// WorkspaceIndexByName returns the index of the workspace named name on
// this monitor, or -1.
func (m *Monitor) WorkspaceIndexByName(name string) int {
	for i, w := range m.workspaces {
		if w.Name == name {
			return i
		}
	}
	return -1
}

// MoveWorkspaceDelta reorders the active workspace by delta slots within
// this monitor's vertical stack. Since the moved workspace is always the
// focused one, the
// view follows it rather than holding position.
func (m *Monitor) MoveWorkspaceDelta(delta int, tNow float64) {
	if len(m.workspaces) < 2 {
		return
	}
	src := m.active
	dst := clampInt(src+delta, 0, len(m.workspaces)-1)
	if dst == src {
		return
	}
	moved := m.workspaces[src]
	m.workspaces = append(m.workspaces[:src], m.workspaces[src+1:]...)
	tail := append([]*Workspace{moved}, m.workspaces[dst:]...)
	m.workspaces = append(m.workspaces[:dst], tail...)
	m.active = dst
	m.ensureSwitchOffset(tNow)
	m.switchOffset.Retarget(tNow, float64(dst)*m.outputSize.H)
	m.ensureInvariant(tNow)
}

// RemoveActiveWorkspace detaches the active workspace from this monitor
// for transplant onto another monitor. A
// no-op (returns nil) if the active workspace is the sole trailing-empty
// slot, since that one is never allowed to leave.
func (m *Monitor) RemoveActiveWorkspace(tNow float64) *Workspace {
	if len(m.workspaces) == 1 {
		return nil
	}
	idx := m.active
	if idx == len(m.workspaces)-1 && m.workspaces[idx].IsEmpty() && !m.workspaces[idx].IsNamed() {
		return nil
	}
	ws := m.workspaces[idx]
	m.workspaces = append(m.workspaces[:idx], m.workspaces[idx+1:]...)
	if m.active >= len(m.workspaces) {
		m.active = len(m.workspaces) - 1
	}
	m.ensureSwitchOffset(tNow)
	m.switchOffset.Retarget(tNow, float64(m.active)*m.outputSize.H)
	m.ensureInvariant(tNow)
	return ws
}

// InsertWorkspace adopts ws from another monitor, placing it just before
// the trailing empty workspace and making it active.
func (m *Monitor) InsertWorkspace(ws *Workspace, tNow float64) {
	ws.SetScale(m.scale)
	ws.SetWorkingArea(m.workingArea(), tNow)
	insertAt := len(m.workspaces) - 1
	if insertAt < 0 {
		insertAt = 0
	}
	m.workspaces = append(m.workspaces, nil)
	copy(m.workspaces[insertAt+1:], m.workspaces[insertAt:])
	m.workspaces[insertAt] = ws
	m.active = insertAt
	m.ensureSwitchOffset(tNow)
	m.switchOffset.Retarget(tNow, float64(insertAt)*m.outputSize.H)
	m.ensureInvariant(tNow)
}

// SwitchTo animates the active workspace to idx.
func (m *Monitor) SwitchTo(idx int, tNow float64) {
	idx = clampInt(idx, 0, len(m.workspaces)-1)
	m.ensureSwitchOffset(tNow)
	m.active = idx
	target := float64(idx) * m.outputSize.H
	m.switchOffset.Retarget(tNow, target)
}

func (m *Monitor) SwitchDelta(delta int, tNow float64) {
	m.SwitchTo(m.active+delta, tNow)
}

// Tick advances every workspace's close-pruning/view-offset settling, then
// reasserts the workspace-stack invariant.
func (m *Monitor) Tick(tNow float64) {
	for _, w := range m.workspaces {
		w.Tick(tNow)
	}
	m.ensureInvariant(tNow)
}

// MonitorTileRender extends TileRender with which workspace index it came
// from, for the snapshot/debug views.
type MonitorTileRender struct {
	TileRender
	WorkspaceIndex int
}

// Render returns every tile currently within the output's viewport,
// combining the workspace(s) visible during an in-flight switch animation.
func (m *Monitor) Render(tNow float64) []MonitorTileRender {
	m.ensureSwitchOffset(tNow)
	offset := m.switchOffset.Sample(tNow)
	h := m.outputSize.H
	var out []MonitorTileRender
	for i, w := range m.workspaces {
		top := float64(i)*h - offset
		if top+h <= 0 || top >= h {
			continue
		}
		for _, tr := range w.Render(tNow) {
			tr.Rect.Y += top
			out = append(out, MonitorTileRender{TileRender: tr, WorkspaceIndex: i})
		}
	}
	return out
}
