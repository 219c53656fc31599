package mcp

import (
	"context"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/layout"
)

func (s *Server) handleGetSnapshot(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetSnapshotInput) (*mcpsdk.CallToolResult, GetSnapshotOutput, error) {
	return nil, GetSnapshotOutput{Text: s.eng.Snapshot()}, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	s.eng.Lock()
	defer s.eng.Unlock()

	root := s.eng.Root()
	active := root.ActiveMonitorIndex()
	mons := root.Monitors()

	out := make([]MonitorInfo, 0, len(mons))
	for i, m := range mons {
		out = append(out, MonitorInfo{
			Index:           i,
			Active:          i == active,
			WorkspaceCount:  len(m.Workspaces()),
			ActiveWorkspace: m.ActiveIndex(),
		})
	}
	return nil, ListMonitorsOutput{Monitors: out}, nil
}

func (s *Server) handleAddMonitor(_ context.Context, _ *mcpsdk.CallToolRequest, args AddMonitorInput) (*mcpsdk.CallToolResult, AddMonitorOutput, error) {
	if args.Name == "" {
		return nil, AddMonitorOutput{}, fmt.Errorf("name is required")
	}
	scale := args.Scale
	if scale <= 0 {
		scale = 1
	}
	slog.Debug("mcp add_monitor", "name", args.Name, "width", args.Width, "height", args.Height, "scale", scale)
	idx := s.eng.AddMonitor(args.Name, layout.Size{W: args.Width, H: args.Height}, scale, config.Struts{})
	return nil, AddMonitorOutput{MonitorIndex: idx}, nil
}

func (s *Server) handleOpenWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args OpenWindowInput) (*mcpsdk.CallToolResult, OpenWindowOutput, error) {
	slog.Debug("mcp open_window", "app_id", args.AppID)
	id, err := s.eng.OpenWindow(args.AppID, args.Title, args.MinWidth, args.MinHeight, args.MaxWidth, args.MaxHeight, args.IsChild)
	if err != nil {
		return nil, OpenWindowOutput{}, err
	}
	return nil, OpenWindowOutput{WindowID: uint64(id)}, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CloseWindowInput) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	slog.Debug("mcp close_window", "window_id", args.WindowID)
	if err := s.eng.CloseWindow(layout.WindowID(args.WindowID)); err != nil {
		return nil, CloseWindowOutput{}, err
	}
	return nil, CloseWindowOutput{Closed: true}, nil
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusWindowInput) (*mcpsdk.CallToolResult, FocusWindowOutput, error) {
	if err := s.eng.FocusWindow(layout.WindowID(args.WindowID)); err != nil {
		return nil, FocusWindowOutput{}, err
	}
	return nil, FocusWindowOutput{Focused: true}, nil
}

func (s *Server) handleRunOp(_ context.Context, _ *mcpsdk.CallToolRequest, args RunOpInput) (*mcpsdk.CallToolResult, RunOpOutput, error) {
	if args.Name == "" {
		return nil, RunOpOutput{}, fmt.Errorf("name is required")
	}
	slog.Debug("mcp run_op", "name", args.Name, "args", args.Args)
	if err := s.eng.Op(args.Name, args.Args); err != nil {
		return nil, RunOpOutput{}, err
	}
	return nil, RunOpOutput{Ran: true}, nil
}
