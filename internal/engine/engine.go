// Package engine wraps internal/layout.Root with the bookkeeping a command
// plane (internal/ipc, internal/mcp, cmd/scrollwm's sim runner) needs but
// the layout core deliberately doesn't own: a monotonic window-id
// allocator, a simulated Window implementation for driving the engine
// without a real compositor, and a mutex serializing access from
// concurrent IPC/MCP requests.
package engine

import (
	"fmt"
	"sync"

	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/layout"
)

// SimWindow is a layout.Window stand-in used outside a real Wayland
// compositor: the sim CLI, IPC/MCP test harnesses, and the TUI's demo
// mode. It records whatever Configure last requested instead of driving a
// real surface.
type SimWindow struct {
	id    layout.WindowID
	props layout.WindowProps

	lastSize   layout.Size
	lastFlags  layout.StateFlags
	lastSerial uint32
}

func (w *SimWindow) ID() layout.WindowID         { return w.id }
func (w *SimWindow) Props() layout.WindowProps   { return w.props }
func (w *SimWindow) LastSize() layout.Size       { return w.lastSize }
func (w *SimWindow) LastFlags() layout.StateFlags { return w.lastFlags }

func (w *SimWindow) Configure(size layout.Size, flags layout.StateFlags, serial uint32) {
	w.lastSize = size
	w.lastFlags = flags
	w.lastSerial = serial
}

// Engine is a goroutine-safe handle onto one layout.Root plus the
// scaffolding needed to open simulated windows by app-id.
type Engine struct {
	mu     sync.Mutex
	cfg    *config.Config
	clock  *animation.Clock
	root   *layout.Root
	nextID layout.WindowID
	wins   map[layout.WindowID]*SimWindow
}

// New constructs an engine with no monitors attached yet; callers add one
// with AddMonitor before opening windows.
func New(cfg *config.Config, rules []layout.WindowRule, namedWorkspaces []string) *Engine {
	clock := animation.NewClock()
	root := layout.NewRoot(cfg, clock, rules)
	root.SetNamedWorkspaces(namedWorkspaces)
	return &Engine{
		cfg:    cfg,
		clock:  clock,
		root:   root,
		nextID: 1,
		wins:   map[layout.WindowID]*SimWindow{},
	}
}

func (e *Engine) Now() float64 { return e.clock.Now() }

// Advance moves the shared clock forward by deltaMS and ticks the root.
func (e *Engine) Advance(deltaMS float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clock.AdvanceTo(e.clock.Now() + deltaMS)
	e.root.Tick(e.clock.Now())
}

// AddMonitor connects a simulated output.
func (e *Engine) AddMonitor(name string, size layout.Size, scale float64, struts config.Struts) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root.AddMonitor(name, size, scale, struts, e.clock.Now())
}

// RemoveMonitor disconnects output idx.
func (e *Engine) RemoveMonitor(idx int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.root.RemoveMonitor(idx, e.clock.Now())
}

// OpenWindow maps a new simulated window with the given app id and
// advertised size hints, returning the id it was assigned.
func (e *Engine) OpenWindow(appID, title string, minW, minH, maxW, maxH float64, isChild bool) (layout.WindowID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	win := &SimWindow{
		id: id,
		props: layout.WindowProps{
			AppID: appID, Title: title,
			MinWidth: minW, MinHeight: minH,
			MaxWidth: maxW, MaxHeight: maxH,
			IsChild: isChild,
		},
	}
	gotID, err := e.root.OpenWindow(win, e.clock.Now())
	if err != nil {
		return 0, err
	}
	e.wins[gotID] = win
	return gotID, nil
}

func (e *Engine) CloseWindow(id layout.WindowID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.root.CloseWindow(id, e.clock.Now()); err != nil {
		return err
	}
	delete(e.wins, id)
	return nil
}

func (e *Engine) FocusWindow(id layout.WindowID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root.FocusWindow(id, e.clock.Now())
}

func (e *Engine) ToggleFloating(id layout.WindowID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root.ToggleFloating(id, e.clock.Now())
}

// Commit simulates the window acknowledging its last Configure at the
// size that Configure requested.
func (e *Engine) Commit(id layout.WindowID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	win, ok := e.wins[id]
	if !ok {
		return fmt.Errorf("window %d: not mapped", id)
	}
	return e.root.HandleCommit(id, win.lastSerial, win.lastSize, e.clock.Now())
}

// Op dispatches one of the focused-thing operations by name, with
// string args interpreted per-operation (see dispatch.go). It never
// panics: an unrecognized operation or malformed argument is a no-op,
// matching the layout core's own total-operation contract.
func (e *Engine) Op(name string, args []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dispatch(name, args)
}

// Snapshot renders the active monitor/workspace's textual snapshot.
func (e *Engine) Snapshot() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root.Snapshot(e.clock.Now())
}

// Root exposes the underlying layout.Root for read-only inspection
// (monitor/workspace enumeration) by callers that already hold no
// concurrent writers, such as the TUI's render loop driven from the same
// goroutine as Advance.
func (e *Engine) Root() *layout.Root { return e.root }

func (e *Engine) Lock()   { e.mu.Lock() }
func (e *Engine) Unlock() { e.mu.Unlock() }
