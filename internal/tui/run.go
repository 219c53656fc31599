package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/driftwm/scrollwm/internal/engine"
)

// TUI drives an interactive bubbletea program over a live engine.Engine.
type TUI struct {
	eng *engine.Engine
}

// New creates a TUI over eng. The caller is expected to have already
// attached at least one monitor.
func New(eng *engine.Engine) *TUI {
	return &TUI{eng: eng}
}

// Run starts the TUI main loop, blocking until the user quits. bubbletea
// manages raw mode itself; this only guards against running on a
// non-interactive stdin/stdout before touching the terminal at all.
func (t *TUI) Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(t.eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
