// Package mcp exposes a subset of the layout engine's operations as MCP
// tools, so an external agent or automation harness can drive scrollwm's
// layout the same way the compositor's key-bind dispatcher does.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/driftwm/scrollwm/internal/engine"
)

const (
	ServerName    = "scrollwm"
	ServerVersion = "0.1.0"
)

// Server is the MCP server fronting a live engine.Engine.
type Server struct {
	mcpServer *mcpsdk.Server
	eng       *engine.Engine
}

// NewServer creates an MCP server driving eng.
func NewServer(eng *engine.Engine) *Server {
	s := &Server{eng: eng}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List connected monitors with their workspace counts and which one is active.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "add_monitor",
		Description: "Connect a simulated output of the given name and size, inheriting or creating named workspaces and restoring any limboed workspace that previously lived on an output of the same name.",
	}, s.handleAddMonitor)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_window",
		Description: "Map a simulated window as a new column to the right of the focused column on the active workspace (or float it, for a dialog/transient window). Returns the assigned window id.",
	}, s.handleOpenWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Unmap a previously opened window by id.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Switch input focus to a previously opened window by id.",
	}, s.handleFocusWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "run_op",
		Description: "Run one layout operation (e.g. focus-column-left, move-column-to-workspace, set-column-width) against the currently focused thing. Operations are total: malformed or out-of-range arguments are a no-op, never an error.",
	}, s.handleRunOp)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_snapshot",
		Description: "Return the textual snapshot of the active monitor's active workspace.",
	}, s.handleGetSnapshot)
}
