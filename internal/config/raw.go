package config

// RawStruts mirrors Struts with optional fields so the loader can tell an
// explicit zero apart from "not set in this file".
type RawStruts struct {
	Left   *float64 `yaml:"left"`
	Right  *float64 `yaml:"right"`
	Top    *float64 `yaml:"top"`
	Bottom *float64 `yaml:"bottom"`
}

// RawWidth mirrors Width for YAML decoding, accepting either
// `proportion: 0.5` or `fixed: 800`.
type RawWidth struct {
	Proportion   *float64 `yaml:"proportion"`
	Fixed        *float64 `yaml:"fixed"`
	ClientChoice *bool    `yaml:"client_choice"`
}

func (r RawWidth) resolve(def Width) Width {
	switch {
	case r.Proportion != nil:
		return Proportion(*r.Proportion)
	case r.Fixed != nil:
		return Fixed(*r.Fixed)
	case r.ClientChoice != nil && *r.ClientChoice:
		return ClientChoice()
	default:
		return def
	}
}

// RawAnimation mirrors Animation for YAML decoding.
type RawAnimation struct {
	Kind         *string  `yaml:"kind"`
	DurationMS   *float64 `yaml:"duration_ms"`
	Curve        *string  `yaml:"curve"`
	DampingRatio *float64 `yaml:"damping_ratio"`
	Stiffness    *float64 `yaml:"stiffness"`
	Epsilon      *float64 `yaml:"epsilon"`
}

func (r *RawAnimation) merge(def Animation) Animation {
	if r == nil {
		return def
	}
	out := def
	if r.Kind != nil {
		out.Kind = AnimationKind(*r.Kind)
	}
	if r.DurationMS != nil {
		out.DurationMS = *r.DurationMS
	}
	if r.Curve != nil {
		out.Curve = *r.Curve
	}
	if r.DampingRatio != nil {
		out.DampingRatio = *r.DampingRatio
	}
	if r.Stiffness != nil {
		out.Stiffness = *r.Stiffness
	}
	if r.Epsilon != nil {
		out.Epsilon = *r.Epsilon
	}
	return out
}

type RawAnimations struct {
	WindowOpen      *RawAnimation `yaml:"window_open"`
	WindowClose     *RawAnimation `yaml:"window_close"`
	WindowResize    *RawAnimation `yaml:"window_resize"`
	ViewOffset      *RawAnimation `yaml:"view_offset"`
	WorkspaceSwitch *RawAnimation `yaml:"workspace_switch"`
}

// RawConfig is the YAML-decodable shape of Config: every field is a
// pointer (or nil slice) so the loader can distinguish "absent" from
// "explicitly zero" and layer onto Default() correctly.
type RawConfig struct {
	Gaps                     *float64       `yaml:"gaps"`
	Struts                   *RawStruts     `yaml:"struts"`
	CenterFocusedColumn      *string        `yaml:"center_focused_column"`
	AlwaysCenterSingleColumn *bool          `yaml:"always_center_single_column"`
	EmptyWorkspaceAboveFirst *bool          `yaml:"empty_workspace_above_first"`
	PresetColumnWidths       []RawWidth     `yaml:"preset_column_widths"`
	DefaultColumnWidth       *RawWidth      `yaml:"default_column_width"`
	PresetWindowHeights      []RawWidth     `yaml:"preset_window_heights"`
	BorderWidth              *float64       `yaml:"border_width"`
	FocusRingWidth           *float64       `yaml:"focus_ring_width"`
	CornerRadius             *float64       `yaml:"corner_radius"`
	ClipToGeometry           *bool          `yaml:"clip_to_geometry"`
	Animations               *RawAnimations `yaml:"animations"`
	RightToLeft              *bool          `yaml:"right_to_left"`
}
