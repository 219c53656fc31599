package config

// Clamp applies the safe-range rules in place: damping ratio clamps to
// [0.1,10], proportions clamp to (0,1], and negative gaps, widths and
// decoration sizes clamp to zero. Output scale and struts depend on the
// output and are clamped separately by ClampScale and ClampStruts. Clamp
// never returns an error; every configuration value maps to some usable
// result.
func (c *Config) Clamp() {
	if c.Gaps < 0 {
		c.Gaps = 0
	}
	clampWidth(&c.DefaultColumnWidth)
	for i := range c.PresetColumnWidths {
		clampWidth(&c.PresetColumnWidths[i])
	}
	for i := range c.PresetWindowHeights {
		clampWidth(&c.PresetWindowHeights[i])
	}
	if c.BorderWidth < 0 {
		c.BorderWidth = 0
	}
	if c.FocusRingWidth < 0 {
		c.FocusRingWidth = 0
	}
	if c.CornerRadius < 0 {
		c.CornerRadius = 0
	}
	clampAnimation(&c.Animations.WindowOpen)
	clampAnimation(&c.Animations.WindowClose)
	clampAnimation(&c.Animations.WindowResize)
	clampAnimation(&c.Animations.ViewOffset)
	clampAnimation(&c.Animations.WorkspaceSwitch)
	switch c.CenterFocusedColumn {
	case CenterNever, CenterAlways, CenterOnOverflow:
	default:
		c.CenterFocusedColumn = CenterNever
	}
}

func clampWidth(w *Width) {
	if w.Kind == WidthProportion {
		if w.Value <= 0 {
			w.Value = 0.01
		}
		if w.Value > 1 {
			w.Value = 1
		}
	}
	if w.Kind == WidthFixed && w.Value < 0 {
		w.Value = 0
	}
}

func clampAnimation(a *Animation) {
	switch a.Kind {
	case AnimationSpring:
		if a.DampingRatio < 0.1 {
			a.DampingRatio = 0.1
		}
		if a.DampingRatio > 10 {
			a.DampingRatio = 10
		}
		if a.Stiffness <= 0 {
			a.Stiffness = 1
		}
		if a.Epsilon <= 0 {
			a.Epsilon = 0.001
		}
	case AnimationEasing:
		if a.DurationMS < 0 {
			a.DurationMS = 0
		}
	}
}

// ClampStruts clamps struts against a specific output's logical size so
// the resulting working area keeps strictly positive width and height.
// Struts that would violate that are ignored for that axis.
func ClampStruts(s Struts, outputW, outputH float64) Struts {
	out := s
	if out.Left+out.Right >= outputW {
		out.Left, out.Right = 0, 0
	}
	if out.Top+out.Bottom >= outputH {
		out.Top, out.Bottom = 0, 0
	}
	return out
}

// ClampScale clamps an output scale factor to [0.1,10].
func ClampScale(scale float64) float64 {
	if scale < 0.1 {
		return 0.1
	}
	if scale > 10 {
		return 10
	}
	return scale
}
