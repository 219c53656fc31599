package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/driftwm/scrollwm/internal/runtimepath"
)

// Client talks to a running `scrollwm serve` daemon over its unix socket.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient builds a client bound to the standard runtime socket path.
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}
	return &Client{socketPath: socketPath, timeout: 5 * time.Second}
}

func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is `scrollwm serve` running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}
	return &resp, nil
}

// GetStatus retrieves daemon status.
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}
	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}
	return &status, nil
}

// GetSnapshot retrieves the active workspace's textual snapshot.
func (c *Client) GetSnapshot() (string, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetSnapshot})
	if err != nil {
		return "", err
	}
	var data SnapshotData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", fmt.Errorf("failed to parse snapshot data: %w", err)
	}
	return data.Text, nil
}

// Op runs one operation against the daemon's focused thing.
func (c *Client) Op(name string, args []string) error {
	payload, err := json.Marshal(OpPayload{Name: name, Args: args})
	if err != nil {
		return fmt.Errorf("failed to marshal op payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandOp, Payload: payload})
	return err
}

// OpenWindow maps a simulated window and returns its assigned id.
func (c *Client) OpenWindow(req OpenWindowPayload) (uint64, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal open-window payload: %w", err)
	}
	resp, err := c.sendRequest(&Request{Command: CommandOpenWindow, Payload: payload})
	if err != nil {
		return 0, err
	}
	var data OpenWindowData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return 0, fmt.Errorf("failed to parse open-window data: %w", err)
	}
	return data.WindowID, nil
}

// CloseWindow closes the window with the given id.
func (c *Client) CloseWindow(id uint64) error {
	payload, err := json.Marshal(CloseWindowPayload{WindowID: id})
	if err != nil {
		return fmt.Errorf("failed to marshal close-window payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandCloseWindow, Payload: payload})
	return err
}

// Ping checks whether the daemon is responding.
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
