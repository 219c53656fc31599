package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve selects one of the supported easing functions.
type Curve int

const (
	CurveLinear Curve = iota
	CurveEaseOutQuad
	CurveEaseOutCubic
	CurveEaseOutExpo
)

func (c Curve) tweenFunc() ease.TweenFunc {
	switch c {
	case CurveEaseOutQuad:
		return ease.OutQuad
	case CurveEaseOutCubic:
		return ease.OutCubic
	case CurveEaseOutExpo:
		return ease.OutExpo
	default:
		return ease.Linear
	}
}

// curveAt evaluates a normalized (0..1) easing curve at fraction t by
// driving a throwaway unit-duration gween.Tween; gween's Update(dt)
// accumulates elapsed time from zero, so a fresh tween sampled once at
// dt=t reproduces the curve's value at t deterministically.
func curveAt(c Curve, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	tw := gween.New(0, 1, 1, c.tweenFunc())
	v, _ := tw.Update(float32(t))
	return float64(v)
}

// Easing is a from->to animation over a fixed duration using one of the
// curves in Curve.
type Easing struct {
	from, to       float64
	start, durMS   float64
	curve          Curve
	disabled       bool
}

// NewEasing constructs an easing animation starting at startMS and running
// for durationMS. When disabled is true (animations turned off globally)
// the animation is still constructed, but Sample jumps straight to `to`
// and IsDone is always true — the rest of the engine never branches on
// whether animations are enabled.
func NewEasing(from, to, startMS, durationMS float64, curve Curve, disabled bool) *Easing {
	return &Easing{from: from, to: to, start: startMS, durMS: durationMS, curve: curve, disabled: disabled}
}

// Sample returns the animation's value at tNow.
func (e *Easing) Sample(tNow float64) float64 {
	if e.disabled || e.durMS <= 0 {
		return e.to
	}
	frac := (tNow - e.start) / e.durMS
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return e.from + (e.to-e.from)*curveAt(e.curve, frac)
}

// IsDone reports whether the animation has reached its target by tNow.
func (e *Easing) IsDone(tNow float64) bool {
	if e.disabled {
		return true
	}
	return tNow >= e.start+e.durMS
}

// Target returns the animation's destination value.
func (e *Easing) Target() float64 {
	return e.to
}

// Retarget cancels the running animation in favor of a new target,
// preserving the value it had reached at tNow as the new starting point.
func (e *Easing) Retarget(tNow, newTo float64) {
	cur := e.Sample(tNow)
	e.from = cur
	e.to = newTo
	e.start = tNow
}

// Shift translates both endpoints by delta without touching timing. The
// ODE/curve is translation invariant, so shifting from and to by the same
// amount moves the whole curve by delta while leaving progress untouched.
// This backs the view-offset coordinate-frame adjustments in (e.g.
// add_column shifting view_offset to keep the active column visually
// stationary) where the change is a reframing, not a retarget.
func (e *Easing) Shift(delta float64) {
	e.from += delta
	e.to += delta
}
