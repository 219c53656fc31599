package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/layout"
	"github.com/driftwm/scrollwm/internal/runtimepath"
)

func toWindowID(id uint64) layout.WindowID { return layout.WindowID(id) }

// Server handles IPC requests from clients, dispatching them against one
// shared engine.Engine.
type Server struct {
	socketPath   string
	listener     net.Listener
	eng          *engine.Engine
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates an IPC server bound to the standard runtime socket
// path, driving eng.
func NewServer(eng *engine.Engine) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		eng:        eng,
		startTime:  time.Now(),
	}, nil
}

// Start begins listening for IPC connections.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	slog.Info("ipc server listening", "socket", s.socketPath)
	go s.acceptLoop()
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			down := s.shuttingDown
			s.shutdownMu.Unlock()
			if down {
				return
			}
			slog.Error("ipc accept failed", "error", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		slog.Error("ipc read failed", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)
	respData, err := resp.Marshal()
	if err != nil {
		slog.Error("ipc response marshal failed", "command", req.Command, "error", err)
		return
	}
	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		slog.Error("ipc response write failed", "command", req.Command, "error", err)
	}
}

func (s *Server) handleCommand(req *Request) *Response {
	slog.Debug("ipc request", "command", req.Command)
	switch req.Command {
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandGetSnapshot:
		return s.handleGetSnapshot()
	case CommandOp:
		return s.handleOp(req.Payload)
	case CommandOpenWindow:
		return s.handleOpenWindow(req.Payload)
	case CommandCloseWindow:
		return s.handleCloseWindow(req.Payload)
	default:
		return NewErrorResponse(fmt.Sprintf("unknown command: %s", req.Command))
	}
}

func (s *Server) handleGetStatus() *Response {
	root := s.eng.Root()
	data := StatusData{
		MonitorCount:  len(root.Monitors()),
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}
	if mon := root.ActiveMonitor(); mon != nil {
		data.ActiveMonitor = fmt.Sprintf("monitor[%d]", root.ActiveMonitorIndex())
		_ = mon
	}
	resp, _ := NewOKResponse(data)
	return resp
}

func (s *Server) handleGetSnapshot() *Response {
	resp, _ := NewOKResponse(SnapshotData{Text: s.eng.Snapshot()})
	return resp
}

func (s *Server) handleOp(payload json.RawMessage) *Response {
	var op OpPayload
	if err := json.Unmarshal(payload, &op); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid op payload: %v", err))
	}
	if err := s.eng.Op(op.Name, op.Args); err != nil {
		return NewErrorResponse(err.Error())
	}
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleOpenWindow(payload json.RawMessage) *Response {
	var req OpenWindowPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid open-window payload: %v", err))
	}
	id, err := s.eng.OpenWindow(req.AppID, req.Title, req.MinWidth, req.MinHeight, req.MaxWidth, req.MaxHeight, req.IsChild)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	resp, _ := NewOKResponse(OpenWindowData{WindowID: uint64(id)})
	return resp
}

func (s *Server) handleCloseWindow(payload json.RawMessage) *Response {
	var req CloseWindowPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid close-window payload: %v", err))
	}
	if err := s.eng.CloseWindow(toWindowID(req.WindowID)); err != nil {
		return NewErrorResponse(err.Error())
	}
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendError(conn net.Conn, msg string) {
	resp := NewErrorResponse(msg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop gracefully shuts down the IPC server.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
	slog.Info("ipc server stopped", "socket", s.socketPath)
}
