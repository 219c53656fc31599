package mcp

import (
	"context"
	"testing"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/layout"
)

func newTestEngine() *engine.Engine {
	eng := engine.New(config.Default(), nil, nil)
	eng.AddMonitor("DP-1", layout.Size{W: 1280, H: 720}, 1, config.Struts{})
	return eng
}

func TestServer_OpenCloseFocusWindow(t *testing.T) {
	s := NewServer(newTestEngine())
	ctx := context.Background()

	_, openOut, err := s.handleOpenWindow(ctx, nil, OpenWindowInput{AppID: "term"})
	if err != nil {
		t.Fatalf("handleOpenWindow: %v", err)
	}
	if openOut.WindowID == 0 {
		t.Fatalf("expected a nonzero window id")
	}

	_, focusOut, err := s.handleFocusWindow(ctx, nil, FocusWindowInput{WindowID: openOut.WindowID})
	if err != nil {
		t.Fatalf("handleFocusWindow: %v", err)
	}
	if !focusOut.Focused {
		t.Fatalf("expected Focused=true")
	}

	_, closeOut, err := s.handleCloseWindow(ctx, nil, CloseWindowInput{WindowID: openOut.WindowID})
	if err != nil {
		t.Fatalf("handleCloseWindow: %v", err)
	}
	if !closeOut.Closed {
		t.Fatalf("expected Closed=true")
	}

	if _, _, err := s.handleFocusWindow(ctx, nil, FocusWindowInput{WindowID: openOut.WindowID}); err == nil {
		t.Fatalf("expected focusing a closed window id to error")
	}
}

func TestServer_CloseUnknownWindowErrors(t *testing.T) {
	s := NewServer(newTestEngine())
	if _, _, err := s.handleCloseWindow(context.Background(), nil, CloseWindowInput{WindowID: 999}); err == nil {
		t.Fatalf("expected closing an unknown window id to error")
	}
}

func TestServer_RunOpRequiresName(t *testing.T) {
	s := NewServer(newTestEngine())

	if _, _, err := s.handleRunOp(context.Background(), nil, RunOpInput{}); err == nil {
		t.Fatalf("expected an empty operation name to error")
	}

	_, out, err := s.handleRunOp(context.Background(), nil, RunOpInput{Name: "focus-column-left"})
	if err != nil {
		t.Fatalf("handleRunOp: %v", err)
	}
	if !out.Ran {
		t.Fatalf("expected Ran=true")
	}
}

func TestServer_AddMonitorRequiresName(t *testing.T) {
	eng := engine.New(config.Default(), nil, nil)
	s := NewServer(eng)

	if _, _, err := s.handleAddMonitor(context.Background(), nil, AddMonitorInput{Width: 1920, Height: 1080}); err == nil {
		t.Fatalf("expected a missing output name to error")
	}

	_, out, err := s.handleAddMonitor(context.Background(), nil, AddMonitorInput{Name: "HDMI-1", Width: 1920, Height: 1080})
	if err != nil {
		t.Fatalf("handleAddMonitor: %v", err)
	}
	if out.MonitorIndex != 0 {
		t.Fatalf("expected the first connected monitor to land at index 0, got %d", out.MonitorIndex)
	}
}

func TestServer_ListMonitorsReportsActive(t *testing.T) {
	eng := engine.New(config.Default(), nil, nil)
	eng.AddMonitor("DP-1", layout.Size{W: 1280, H: 720}, 1, config.Struts{})
	eng.AddMonitor("DP-2", layout.Size{W: 1920, H: 1080}, 1, config.Struts{})
	s := NewServer(eng)

	_, out, err := s.handleListMonitors(context.Background(), nil, ListMonitorsInput{})
	if err != nil {
		t.Fatalf("handleListMonitors: %v", err)
	}
	if len(out.Monitors) != 2 {
		t.Fatalf("expected 2 monitors, got %d", len(out.Monitors))
	}
	if !out.Monitors[1].Active {
		t.Fatalf("expected the most recently connected monitor to be active")
	}
	if out.Monitors[0].Active {
		t.Fatalf("expected only the most recently connected monitor to be active")
	}
}

func TestServer_GetSnapshotReflectsOpenWindow(t *testing.T) {
	s := NewServer(newTestEngine())

	_, before, err := s.handleGetSnapshot(context.Background(), nil, GetSnapshotInput{})
	if err != nil {
		t.Fatalf("handleGetSnapshot: %v", err)
	}

	if _, _, err := s.handleOpenWindow(context.Background(), nil, OpenWindowInput{AppID: "term"}); err != nil {
		t.Fatalf("handleOpenWindow: %v", err)
	}

	_, after, err := s.handleGetSnapshot(context.Background(), nil, GetSnapshotInput{})
	if err != nil {
		t.Fatalf("handleGetSnapshot: %v", err)
	}
	if after.Text == before.Text {
		t.Fatalf("expected the snapshot to change after opening a window")
	}
}
