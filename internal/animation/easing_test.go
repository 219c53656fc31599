package animation

import "testing"

func TestEasing_SampleClampsAndReachesTarget(t *testing.T) {
	e := NewEasing(0, 100, 1000, 200, CurveEaseOutQuad, false)

	if got := e.Sample(1000); got != 0 {
		t.Fatalf("at start expected 0, got %v", got)
	}
	if got := e.Sample(500); got != 0 {
		t.Fatalf("before start expected clamp to from=0, got %v", got)
	}
	if got := e.Sample(1200); got != 100 {
		t.Fatalf("at end expected 100, got %v", got)
	}
	if got := e.Sample(5000); got != 100 {
		t.Fatalf("past end expected clamp to 100, got %v", got)
	}
	if !e.IsDone(1200) {
		t.Fatalf("expected done at start+duration")
	}
	if e.IsDone(1100) {
		t.Fatalf("expected not done mid-animation")
	}
}

func TestEasing_DisabledJumpsInstantly(t *testing.T) {
	e := NewEasing(0, 100, 1000, 200, CurveEaseOutCubic, true)
	if got := e.Sample(1000); got != 100 {
		t.Fatalf("disabled animation should sample target immediately, got %v", got)
	}
	if !e.IsDone(1000) {
		t.Fatalf("disabled animation should report done immediately")
	}
}

func TestEasing_RetargetPreservesCurrentValueAsNewFrom(t *testing.T) {
	e := NewEasing(0, 100, 0, 1000, CurveEaseOutQuad, false)
	mid := e.Sample(500)
	e.Retarget(500, 50)

	if got := e.Sample(500); got != mid {
		t.Fatalf("retarget should preserve current value %v, got %v", mid, got)
	}
	if got := e.Target(); got != 50 {
		t.Fatalf("expected new target 50, got %v", got)
	}
}

func TestEasing_MonotonicForEaseOutCurves(t *testing.T) {
	for _, curve := range []Curve{CurveEaseOutQuad, CurveEaseOutCubic, CurveEaseOutExpo} {
		e := NewEasing(0, 100, 0, 1000, curve, false)
		prev := -1.0
		for ms := 0.0; ms <= 1000; ms += 50 {
			v := e.Sample(ms)
			if v < prev {
				t.Fatalf("curve %v not monotonic at t=%v: %v < %v", curve, ms, v, prev)
			}
			prev = v
		}
	}
}
