// Package tui is an interactive viewer and driver for a live engine.Engine,
// rendering its current layout as lipgloss boxes and mapping keystrokes onto
// the same operations an external IPC/MCP client would send.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/layout"
)

const tickInterval = 16 * time.Millisecond

type tickMsg time.Time

// model is the root bubbletea model for the TUI.
type model struct {
	eng *engine.Engine

	width  int
	height int

	lastErr string

	// Close confirmation overlay, shown over the layout view while active.
	confirming    bool
	confirmWinID  uint64
	confirmForm   *huh.Form
	confirmResult bool
}

func newModel(eng *engine.Engine) model {
	return model{eng: eng}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirming {
		return m.updateConfirming(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.eng.Advance(float64(tickInterval.Milliseconds()))
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "o":
		m.openDemoWindow()
		return m, nil

	case "x":
		if id, ok := m.focusedWindowID(); ok {
			m.confirming = true
			m.confirmWinID = id
			m.confirmForm = newConfirmForm(&m.confirmResult)
			return m, m.confirmForm.Init()
		}
		return m, nil

	case "h":
		m.runOp("focus-column-left", nil)
	case "l":
		m.runOp("focus-column-right", nil)
	case "H":
		m.runOp("move-column-left", nil)
	case "L":
		m.runOp("move-column-right", nil)
	case "j":
		m.runOp("focus-window-down", nil)
	case "k":
		m.runOp("focus-window-up", nil)
	case "f":
		m.runOp("toggle-window-floating", nil)
	case "left":
		m.runOp("move-floating-window", []string{"-20", "0"})
	case "right":
		m.runOp("move-floating-window", []string{"20", "0"})
	case "up":
		m.runOp("move-floating-window", []string{"0", "-20"})
	case "down":
		m.runOp("move-floating-window", []string{"0", "20"})
	}
	return m, nil
}

func (m *model) runOp(name string, args []string) {
	if name == "" {
		return
	}
	if err := m.eng.Op(name, args); err != nil {
		m.lastErr = err.Error()
	} else {
		m.lastErr = ""
	}
}

var demoWindowSeq int

// openDemoWindow maps a fresh simulated window, the TUI's stand-in for a
// real client connecting.
func (m *model) openDemoWindow() {
	demoWindowSeq++
	appID := fmt.Sprintf("demo-%d", demoWindowSeq)
	if _, err := m.eng.OpenWindow(appID, appID, 0, 0, 0, 0, false); err != nil {
		m.lastErr = err.Error()
	}
}

func (m model) focusedWindowID() (uint64, bool) {
	root := m.eng.Root()
	mon := root.ActiveMonitor()
	if mon == nil {
		return 0, false
	}
	ws := mon.ActiveWorkspace()
	t := ws.FocusedTile()
	if t == nil {
		return 0, false
	}
	return uint64(t.Window().ID()), true
}

func newConfirmForm(value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Close this window?").
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	)
}

func (m model) updateConfirming(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if wsz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsz.Width
		m.height = wsz.Height
	}

	form, cmd := m.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmForm = f
	}

	if m.confirmForm.State == huh.StateCompleted {
		m.confirming = false
		if m.confirmResult {
			if err := m.eng.CloseWindow(layout.WindowID(m.confirmWinID)); err != nil {
				m.lastErr = err.Error()
			}
		}
		m.confirmForm = nil
		return m, nil
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.confirming {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirmForm.View())
	}

	header := renderHeader(m.eng, m.width)
	help := renderHelp(m.width)
	status := m.lastErr

	usedHeight := lipgloss.Height(header) + lipgloss.Height(help)
	if status != "" {
		usedHeight++
	}
	contentHeight := m.height - usedHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	layoutView := renderLayout(m.eng, m.width, contentHeight)

	sections := []string{header, layoutView}
	if status != "" {
		sections = append(sections, errorStyle.Render(status))
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
