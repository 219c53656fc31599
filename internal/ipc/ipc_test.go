package ipc

import (
	"testing"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/layout"
)

func newTestServer(t *testing.T) *engine.Engine {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	eng := engine.New(config.Default(), nil, nil)
	eng.AddMonitor("TEST-1", layout.Size{W: 1920, H: 1080}, 1, config.Struts{})

	srv, err := NewServer(eng)
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	t.Cleanup(srv.Stop)
	return eng
}

func TestClientServer_StatusAndSnapshot(t *testing.T) {
	newTestServer(t)
	c := NewClient()

	if err := c.Ping(); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}

	status, err := c.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus() error: %v", err)
	}
	if status.MonitorCount != 1 {
		t.Fatalf("MonitorCount = %d, want 1", status.MonitorCount)
	}

	snap, err := c.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot() error: %v", err)
	}
	if snap == "" {
		t.Fatal("GetSnapshot() returned empty text")
	}
}

func TestClientServer_OpenCloseAndOp(t *testing.T) {
	newTestServer(t)
	c := NewClient()

	id, err := c.OpenWindow(OpenWindowPayload{AppID: "term", Title: "one"})
	if err != nil {
		t.Fatalf("OpenWindow() error: %v", err)
	}
	if id == 0 {
		t.Fatal("OpenWindow() returned zero id")
	}

	if _, err := c.OpenWindow(OpenWindowPayload{AppID: "term", Title: "two"}); err != nil {
		t.Fatalf("second OpenWindow() error: %v", err)
	}

	if err := c.Op("focus-column-left", nil); err != nil {
		t.Fatalf("Op() error: %v", err)
	}

	if err := c.CloseWindow(id); err != nil {
		t.Fatalf("CloseWindow() error: %v", err)
	}
}
