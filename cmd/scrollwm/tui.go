package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/tui"
)

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/scrollwm/config.yaml)")
	monitor := fs.String("monitor", "1920x1080@1", "Initial monitor size as WxH@SCALE")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stderr, "Usage: scrollwm tui [--path PATH] [--monitor WxH@SCALE]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive viewer for a demo layout engine. Starts with one simulated")
		fmt.Fprintln(os.Stderr, "monitor and no windows; use 'o' to open demo windows.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  o         Open a new demo window")
		fmt.Fprintln(os.Stderr, "  x         Close the focused window (asks to confirm)")
		fmt.Fprintln(os.Stderr, "  h/l       Focus column left/right")
		fmt.Fprintln(os.Stderr, "  H/L       Move the focused column left/right")
		fmt.Fprintln(os.Stderr, "  j/k       Focus window down/up within the column")
		fmt.Fprintln(os.Stderr, "  f         Toggle floating")
		fmt.Fprintln(os.Stderr, "  q, Ctrl+C Quit")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg *config.Config
	var err error
	if *path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(*path)
	}
	if err != nil {
		slog.Error("config load failed", "error", err)
		return 1
	}

	eng := engine.New(cfg, nil, nil)
	size, scale, err := parseMonitorSpec(*monitor)
	if err != nil {
		slog.Error("invalid monitor spec", "monitor", *monitor, "error", err)
		return 2
	}
	eng.AddMonitor("tui-0", size, scale, config.Struts{})

	if err := tui.New(eng).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
