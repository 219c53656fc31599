package config

// BuildEffective layers a RawConfig over Default() and clamps the result.
func BuildEffective(raw RawConfig) *Config {
	cfg := Default()

	if raw.Gaps != nil {
		cfg.Gaps = *raw.Gaps
	}
	if raw.Struts != nil {
		if raw.Struts.Left != nil {
			cfg.Struts.Left = *raw.Struts.Left
		}
		if raw.Struts.Right != nil {
			cfg.Struts.Right = *raw.Struts.Right
		}
		if raw.Struts.Top != nil {
			cfg.Struts.Top = *raw.Struts.Top
		}
		if raw.Struts.Bottom != nil {
			cfg.Struts.Bottom = *raw.Struts.Bottom
		}
	}
	if raw.CenterFocusedColumn != nil {
		cfg.CenterFocusedColumn = CenterFocusedColumn(*raw.CenterFocusedColumn)
	}
	if raw.AlwaysCenterSingleColumn != nil {
		cfg.AlwaysCenterSingleColumn = *raw.AlwaysCenterSingleColumn
	}
	if raw.EmptyWorkspaceAboveFirst != nil {
		cfg.EmptyWorkspaceAboveFirst = *raw.EmptyWorkspaceAboveFirst
	}
	if raw.PresetColumnWidths != nil {
		widths := make([]Width, len(raw.PresetColumnWidths))
		for i, w := range raw.PresetColumnWidths {
			widths[i] = w.resolve(Width{})
		}
		cfg.PresetColumnWidths = widths
	}
	if raw.DefaultColumnWidth != nil {
		cfg.DefaultColumnWidth = raw.DefaultColumnWidth.resolve(cfg.DefaultColumnWidth)
	}
	if raw.PresetWindowHeights != nil {
		widths := make([]Width, len(raw.PresetWindowHeights))
		for i, w := range raw.PresetWindowHeights {
			widths[i] = w.resolve(Width{})
		}
		cfg.PresetWindowHeights = widths
	}
	if raw.BorderWidth != nil {
		cfg.BorderWidth = *raw.BorderWidth
	}
	if raw.FocusRingWidth != nil {
		cfg.FocusRingWidth = *raw.FocusRingWidth
	}
	if raw.CornerRadius != nil {
		cfg.CornerRadius = *raw.CornerRadius
	}
	if raw.ClipToGeometry != nil {
		cfg.ClipToGeometry = *raw.ClipToGeometry
	}
	if raw.Animations != nil {
		cfg.Animations.WindowOpen = raw.Animations.WindowOpen.merge(cfg.Animations.WindowOpen)
		cfg.Animations.WindowClose = raw.Animations.WindowClose.merge(cfg.Animations.WindowClose)
		cfg.Animations.WindowResize = raw.Animations.WindowResize.merge(cfg.Animations.WindowResize)
		cfg.Animations.ViewOffset = raw.Animations.ViewOffset.merge(cfg.Animations.ViewOffset)
		cfg.Animations.WorkspaceSwitch = raw.Animations.WorkspaceSwitch.merge(cfg.Animations.WorkspaceSwitch)
	}
	if raw.RightToLeft != nil {
		cfg.RightToLeft = *raw.RightToLeft
	}

	cfg.Clamp()
	return cfg
}
