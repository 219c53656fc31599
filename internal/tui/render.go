package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/layout"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 1)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	focusedTileStyle = tileStyle.BorderForeground(lipgloss.Color("6")).Bold(true)
)

func renderHeader(eng *engine.Engine, width int) string {
	root := eng.Root()
	mon := root.ActiveMonitor()
	if mon == nil {
		return headerStyle.Width(width).Render("scrollwm — no monitor connected")
	}
	return headerStyle.Width(width).Render(fmt.Sprintf(
		"scrollwm — monitor %d, workspace %d/%d",
		root.ActiveMonitorIndex(), mon.ActiveIndex()+1, len(mon.Workspaces()),
	))
}

func renderHelp(width int) string {
	return helpStyle.Width(width).Render(
		"o open · x close · h/l focus col · H/L move col · j/k focus win · f float · arrows move float · q quit",
	)
}

// renderLayout lays every visible tile of the active workspace out as
// lipgloss boxes, positioned by a crude proportional scale of the engine's
// logical coordinates onto the terminal's character grid. It is a debug
// viewer, not a pixel-accurate renderer.
func renderLayout(eng *engine.Engine, width, height int) string {
	root := eng.Root()
	mon := root.ActiveMonitor()
	if mon == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "(no monitor)")
	}

	tiles := mon.Render(eng.Now())
	if len(tiles) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "(no windows — press o to open one)")
	}

	area := mon.WorkingArea()
	var focusedWinID layout.WindowID
	if ft := mon.ActiveWorkspace().FocusedTile(); ft != nil {
		focusedWinID = ft.Window().ID()
	}

	scaleX := float64(width) / maxf(area.W, 1)
	scaleY := float64(height) / maxf(area.H, 1)

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, t := range tiles {
		box := renderTileBox(t, focusedWinID)
		x0 := int(float64(t.Rect.X) * scaleX)
		y0 := int(float64(t.Rect.Y) * scaleY)
		blit(canvas, box, x0, y0)
	}

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

func renderTileBox(t layout.MonitorTileRender, focused layout.WindowID) string {
	label := fmt.Sprintf("#%d", t.ID)
	style := tileStyle
	if t.ID == focused {
		style = focusedTileStyle
	}
	return style.Render(label)
}

// blit overlays box (a possibly multi-line string) onto canvas at (x0, y0),
// clipping whatever falls outside its bounds.
func blit(canvas [][]rune, box string, x0, y0 int) {
	for dy, line := range strings.Split(box, "\n") {
		y := y0 + dy
		if y < 0 || y >= len(canvas) {
			continue
		}
		x := x0
		for _, r := range line {
			if x >= 0 && x < len(canvas[y]) {
				canvas[y][x] = r
			}
			x++
		}
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
