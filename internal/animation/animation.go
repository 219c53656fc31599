package animation

// Sampler is the common query surface both animation variants expose.
// Code in the layout core never branches on which kind of animation is
// backing a quantity; it just samples.
type Sampler interface {
	Sample(tNow float64) float64
	IsDone(tNow float64) bool
	Target() float64
	Retarget(tNow, newTo float64)
	Shift(delta float64)
}

var (
	_ Sampler = (*Easing)(nil)
	_ Sampler = (*Spring)(nil)
)
