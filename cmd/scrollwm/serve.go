package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/ipc"
	"github.com/driftwm/scrollwm/internal/runtimepath"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/scrollwm/config.yaml)")
	monitor := fs.String("monitor", "1920x1080@1", "Initial monitor size as WxH@SCALE")
	dumpInterval := fs.Duration("state-dump-interval", 2*time.Second, "How often to dump a snapshot to the state file (0 disables)")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: scrollwm serve [--path PATH] [--monitor WxH@SCALE] [--state-dump-interval DUR]")
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
	eng.AddMonitor("serve-0", size, scale, config.Struts{})

	server, err := ipc.NewServer(eng)
	if err != nil {
		slog.Error("ipc server setup failed", "error", err)
		return 1
	}
	if err := server.Start(); err != nil {
		slog.Error("ipc server start failed", "error", err)
		return 1
	}
	defer server.Stop()

	slog.Info("scrollwm serve starting", "monitor", *monitor)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	var dumpTicker *time.Ticker
	var dumpCh <-chan time.Time
	if *dumpInterval > 0 {
		dumpTicker = time.NewTicker(*dumpInterval)
		defer dumpTicker.Stop()
		dumpCh = dumpTicker.C
	}

	statePath, statePathErr := runtimepath.StatePath()
	if statePathErr != nil {
		slog.Warn("state dump disabled", "error", statePathErr)
		dumpCh = nil
	}

	last := time.Now()
	for {
		select {
		case <-stop:
			slog.Info("scrollwm serve shutting down")
			return 0
		case now := <-ticker.C:
			eng.Advance(float64(now.Sub(last).Milliseconds()))
			last = now
		case <-dumpCh:
			if err := os.WriteFile(statePath, []byte(eng.Snapshot()), 0600); err != nil {
				slog.Error("state dump failed", "path", statePath, "error", err)
			}
		}
	}
}
