package mcp

// OpenWindowInput is the input for the open_window tool.
type OpenWindowInput struct {
	AppID     string  `json:"app_id" jsonschema:"required,App id the window advertises"`
	Title     string  `json:"title,omitempty" jsonschema:"Window title"`
	MinWidth  float64 `json:"min_width,omitempty" jsonschema:"Advertised minimum width in logical pixels"`
	MinHeight float64 `json:"min_height,omitempty" jsonschema:"Advertised minimum height in logical pixels"`
	MaxWidth  float64 `json:"max_width,omitempty" jsonschema:"Advertised maximum width in logical pixels (0: unconstrained)"`
	MaxHeight float64 `json:"max_height,omitempty" jsonschema:"Advertised maximum height in logical pixels (0: unconstrained)"`
	IsChild   bool    `json:"is_child,omitempty" jsonschema:"Marks a transient/dialog window, floated by default"`
}

// OpenWindowOutput is the output for the open_window tool.
type OpenWindowOutput struct {
	WindowID uint64 `json:"window_id"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct {
	WindowID uint64 `json:"window_id" jsonschema:"required,Id returned by open_window"`
}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	Closed bool `json:"closed"`
}

// FocusWindowInput is the input for the focus_window tool.
type FocusWindowInput struct {
	WindowID uint64 `json:"window_id" jsonschema:"required,Id to switch input focus to"`
}

// FocusWindowOutput is the output for the focus_window tool.
type FocusWindowOutput struct {
	Focused bool `json:"focused"`
}

// RunOpInput is the input for the run_op tool: one operation addressed
// to the currently focused thing.
type RunOpInput struct {
	Name string   `json:"name" jsonschema:"required,Operation name (e.g. move-column-left focus-workspace set-column-width)"`
	Args []string `json:"args,omitempty" jsonschema:"Operation-specific string arguments"`
}

// RunOpOutput is the output for the run_op tool.
type RunOpOutput struct {
	Ran bool `json:"ran"`
}

// GetSnapshotInput is the (empty) input for the get_snapshot tool.
type GetSnapshotInput struct{}

// GetSnapshotOutput is the output for the get_snapshot tool.
type GetSnapshotOutput struct {
	Text string `json:"text"`
}

// AddMonitorInput is the input for the add_monitor tool.
type AddMonitorInput struct {
	Name   string  `json:"name" jsonschema:"required,Output name"`
	Width  float64 `json:"width" jsonschema:"required,Output logical width"`
	Height float64 `json:"height" jsonschema:"required,Output logical height"`
	Scale  float64 `json:"scale,omitempty" jsonschema:"Output scale factor (default 1)"`
}

// AddMonitorOutput is the output for the add_monitor tool.
type AddMonitorOutput struct {
	MonitorIndex int `json:"monitor_index"`
}

// ListMonitorsInput is the (empty) input for the list_monitors tool.
type ListMonitorsInput struct{}

// MonitorInfo describes one connected output.
type MonitorInfo struct {
	Index           int  `json:"index"`
	Active          bool `json:"active"`
	WorkspaceCount  int  `json:"workspace_count"`
	ActiveWorkspace int  `json:"active_workspace"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}
