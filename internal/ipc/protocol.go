// Package ipc is the unix-socket JSON-line command plane for scrollwm: a
// long-lived daemon (cmd/scrollwm serve) exposes the engine over this
// protocol so external tools (the bundled CLI, the TUI, third-party
// scripts) can drive and inspect the layout without linking the engine
// in-process.
package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType names one IPC request kind.
type CommandType string

const (
	CommandGetSnapshot CommandType = "GET_SNAPSHOT"
	CommandGetStatus   CommandType = "GET_STATUS"
	CommandOp          CommandType = "OP"
	CommandOpenWindow  CommandType = "OPEN_WINDOW"
	CommandCloseWindow CommandType = "CLOSE_WINDOW"
)

// Request is one IPC request from client to server.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is one IPC response from server to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData is returned by GET_STATUS.
type StatusData struct {
	MonitorCount  int    `json:"monitor_count"`
	ActiveMonitor string `json:"active_monitor"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// SnapshotData is returned by GET_SNAPSHOT: the textual snapshot of the
// active monitor's active workspace.
type SnapshotData struct {
	Text string `json:"text"`
}

// OpPayload carries one operation dispatch: a name (e.g.
// "move-column-left") and its string-encoded arguments.
type OpPayload struct {
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// OpenWindowPayload describes a simulated window to map (used by the
// `sim` CLI and test harnesses — a real compositor maps windows directly
// through the engine, not over this socket).
type OpenWindowPayload struct {
	AppID     string  `json:"app_id"`
	Title     string  `json:"title"`
	MinWidth  float64 `json:"min_width,omitempty"`
	MinHeight float64 `json:"min_height,omitempty"`
	MaxWidth  float64 `json:"max_width,omitempty"`
	MaxHeight float64 `json:"max_height,omitempty"`
	IsChild   bool    `json:"is_child,omitempty"`
}

// OpenWindowData is returned by OPEN_WINDOW.
type OpenWindowData struct {
	WindowID uint64 `json:"window_id"`
}

// CloseWindowPayload is the payload for CLOSE_WINDOW.
type CloseWindowPayload struct {
	WindowID uint64 `json:"window_id"`
}

// NewOKResponse builds a successful response, optionally carrying data.
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}
	return &Response{Status: "OK", Data: dataBytes}, nil
}

// NewErrorResponse builds an error response carrying msg.
func NewErrorResponse(msg string) *Response {
	return &Response{Status: "ERROR", Error: msg}
}

// ParseRequest decodes a request from JSON bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal encodes a response to JSON bytes.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
