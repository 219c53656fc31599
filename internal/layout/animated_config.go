package layout

import (
	"github.com/driftwm/scrollwm/internal/animation"
	"github.com/driftwm/scrollwm/internal/config"
)

// animConfig adapts a clamped config.Animation into the narrower
// AnimationConfig Animated consumes.
func animConfig(a config.Animation) AnimationConfig {
	return AnimationConfig{
		Kind:         string(a.Kind),
		DurationMS:   a.DurationMS,
		Curve:        parseCurve(a.Curve),
		DampingRatio: a.DampingRatio,
		Stiffness:    a.Stiffness,
		Epsilon:      a.Epsilon,
	}
}

func parseCurve(name string) animation.Curve {
	switch name {
	case "ease-out-cubic":
		return animation.CurveEaseOutCubic
	case "ease-out-expo":
		return animation.CurveEaseOutExpo
	case "ease-out-quad":
		return animation.CurveEaseOutQuad
	default:
		return animation.CurveLinear
	}
}
