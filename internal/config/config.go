// Package config holds the typed, already-clamped configuration values the
// layout engine consumes. It never talks to Wayland or parses a
// compositor-wide config file format — that belongs to an external
// collaborator — but it owns the settings table end to end: YAML
// decoding, default application, and range clamping.
package config

import "fmt"

// CenterFocusedColumn selects how the scrolling space positions the view
// when column focus changes.
type CenterFocusedColumn string

const (
	CenterNever      CenterFocusedColumn = "never"
	CenterAlways     CenterFocusedColumn = "always"
	CenterOnOverflow CenterFocusedColumn = "on-overflow"
)

// Struts shrinks the working area on each edge; a negative value enlarges
// it instead.
type Struts struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// WidthKind distinguishes a proportional width from an absolute one.
type WidthKind string

const (
	WidthProportion   WidthKind = "proportion"
	WidthFixed        WidthKind = "fixed"
	WidthClientChoice WidthKind = "client-choice" // default-column-width only
)

// Width is a column or tile-height sizing policy: Proportion(f), Fixed(px),
// or (default-column-width only) ClientChoice.
type Width struct {
	Kind  WidthKind `yaml:"kind"`
	Value float64   `yaml:"value,omitempty"`
}

func Proportion(f float64) Width { return Width{Kind: WidthProportion, Value: f} }
func Fixed(px float64) Width     { return Width{Kind: WidthFixed, Value: px} }
func ClientChoice() Width        { return Width{Kind: WidthClientChoice} }

// AnimationKind selects which animation variant backs a given target
// quantity.
type AnimationKind string

const (
	AnimationEasing   AnimationKind = "easing"
	AnimationSpring   AnimationKind = "spring"
	AnimationDisabled AnimationKind = "disabled"
)

// Animation configures one animated quantity.
type Animation struct {
	Kind AnimationKind `yaml:"kind"`

	// Easing fields.
	DurationMS float64 `yaml:"duration_ms,omitempty"`
	Curve      string  `yaml:"curve,omitempty"` // ease-out-quad | ease-out-cubic | ease-out-expo

	// Spring fields.
	DampingRatio float64 `yaml:"damping_ratio,omitempty"`
	Stiffness    float64 `yaml:"stiffness,omitempty"`
	Epsilon      float64 `yaml:"epsilon,omitempty"`
}

// Animations groups every animated target the engine owns.
type Animations struct {
	WindowOpen      Animation `yaml:"window_open"`
	WindowClose     Animation `yaml:"window_close"`
	WindowResize    Animation `yaml:"window_resize"`
	ViewOffset      Animation `yaml:"view_offset"`
	WorkspaceSwitch Animation `yaml:"workspace_switch"`
}

// Config is the effective, clamped configuration.
type Config struct {
	Gaps                     float64             `yaml:"gaps"`
	Struts                   Struts              `yaml:"struts"`
	CenterFocusedColumn      CenterFocusedColumn `yaml:"center_focused_column"`
	AlwaysCenterSingleColumn bool                `yaml:"always_center_single_column"`
	EmptyWorkspaceAboveFirst bool                `yaml:"empty_workspace_above_first"`
	PresetColumnWidths       []Width             `yaml:"preset_column_widths"`
	DefaultColumnWidth       Width               `yaml:"default_column_width"`
	PresetWindowHeights      []Width             `yaml:"preset_window_heights"`
	BorderWidth              float64             `yaml:"border_width"`
	FocusRingWidth           float64             `yaml:"focus_ring_width"`
	CornerRadius             float64             `yaml:"corner_radius"`
	ClipToGeometry           bool                `yaml:"clip_to_geometry"`
	Animations               Animations          `yaml:"animations"`
	RightToLeft              bool                `yaml:"right_to_left"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Gaps:                     16,
		CenterFocusedColumn:      CenterNever,
		AlwaysCenterSingleColumn: false,
		EmptyWorkspaceAboveFirst: false,
		PresetColumnWidths: []Width{
			Proportion(1.0 / 3.0),
			Proportion(1.0 / 2.0),
			Proportion(2.0 / 3.0),
		},
		DefaultColumnWidth: Proportion(0.5),
		PresetWindowHeights: []Width{
			Proportion(1.0 / 3.0),
			Proportion(1.0 / 2.0),
			Proportion(2.0 / 3.0),
		},
		BorderWidth:    4,
		FocusRingWidth: 4,
		Animations: Animations{
			WindowOpen:      Animation{Kind: AnimationEasing, DurationMS: 150, Curve: "ease-out-cubic"},
			WindowClose:     Animation{Kind: AnimationEasing, DurationMS: 150, Curve: "ease-out-quad"},
			WindowResize:    Animation{Kind: AnimationSpring, DampingRatio: 1.0, Stiffness: 800, Epsilon: 0.001},
			ViewOffset:      Animation{Kind: AnimationSpring, DampingRatio: 1.0, Stiffness: 1000, Epsilon: 0.001},
			WorkspaceSwitch: Animation{Kind: AnimationSpring, DampingRatio: 1.0, Stiffness: 1000, Epsilon: 0.0001},
		},
		RightToLeft: false,
	}
}

// ValidationError reports a problem with one configuration path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
