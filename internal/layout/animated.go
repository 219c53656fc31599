package layout

import "github.com/driftwm/scrollwm/internal/animation"

// Animated wraps one animated scalar, dispatching to whichever backing the
// quantity's config.Animation selects (easing, spring, or disabled instant
// jump) so the rest of the layout core never branches on animation kind.
type Animated struct {
	s animation.Sampler
}

// AnimationConfig is the subset of config.Animation an Animated needs; kept
// narrow so this file does not import internal/config directly and can be
// driven from literals in tests.
type AnimationConfig struct {
	Kind         string // "easing" | "spring" | "disabled"
	DurationMS   float64
	Curve        animation.Curve
	DampingRatio float64
	Stiffness    float64
	Epsilon      float64
}

// NewAnimated constructs an animated scalar going from->to, starting at
// startMS under cfg.
func NewAnimated(from, to, startMS float64, cfg AnimationConfig) *Animated {
	disabled := cfg.Kind == "disabled"
	switch cfg.Kind {
	case "spring":
		return &Animated{s: animation.NewSpring(from, to, 0, cfg.DampingRatio, cfg.Stiffness, cfg.Epsilon, startMS, disabled)}
	default:
		return &Animated{s: animation.NewEasing(from, to, startMS, cfg.DurationMS, cfg.Curve, disabled)}
	}
}

func (a *Animated) Sample(tNow float64) float64   { return a.s.Sample(tNow) }
func (a *Animated) IsDone(tNow float64) bool      { return a.s.IsDone(tNow) }
func (a *Animated) Target() float64               { return a.s.Target() }
func (a *Animated) Retarget(tNow, newTo float64)  { a.s.Retarget(tNow, newTo) }
func (a *Animated) Shift(delta float64)           { a.s.Shift(delta) }
