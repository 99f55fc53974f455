package anim

import (
	"math"
	"testing"

	"github.com/milk9111/keyframe/common"
)

func floatTrack(t *testing.T, keys []Keyframe) *Track {
	t.Helper()
	track, err := NewTrack("test", "position.x", 30, TypeFloat, LoopCycle)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}
	track.SetKeys(keys)
	return track
}

func evalFloat(t *testing.T, track *Track, frame float64, cur *Cursor) float64 {
	t.Helper()
	v, err := track.Interpolate(frame, cur)
	if err != nil {
		t.Fatalf("Interpolate(%g) failed: %v", frame, err)
	}
	f, ok := v.(float64)
	if !ok {
		t.Fatalf("Interpolate(%g) returned %T, want float64", frame, v)
	}
	return f
}

func TestInterpolateBoundaryClamp(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 10, Value: 1.0},
		{Frame: 20, Value: 3.0},
	})

	modes := []struct {
		name string
		mode LoopMode
	}{
		{"relative", LoopRelative},
		{"cycle", LoopCycle},
		{"constant", LoopConstant},
		{"yoyo", LoopYoyo},
	}

	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			if got := evalFloat(t, track, 5, NewCursor(m.mode)); got != 1.0 {
				t.Fatalf("before first key: got %g, want 1.0", got)
			}
			if got := evalFloat(t, track, 10, NewCursor(m.mode)); got != 1.0 {
				t.Fatalf("at first key: got %g, want 1.0", got)
			}
			if got := evalFloat(t, track, 20, NewCursor(m.mode)); got != 3.0 {
				t.Fatalf("at last key: got %g, want 3.0", got)
			}
			if got := evalFloat(t, track, 99, NewCursor(m.mode)); got != 3.0 {
				t.Fatalf("past last key: got %g, want 3.0", got)
			}
		})
	}
}

func TestInterpolateLinearExactness(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 10.0},
	})
	if got := evalFloat(t, track, 5, NewCursor(LoopCycle)); got != 5.0 {
		t.Fatalf("evaluate(5): got %g, want 5.0", got)
	}
}

func TestInterpolateStepHold(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 1.0, Interpolation: InterpolationStep},
		{Frame: 10, Value: 2.0},
	})
	if got := evalFloat(t, track, 9, NewCursor(LoopCycle)); got != 1.0 {
		t.Fatalf("evaluate(9): got %g, want 1.0", got)
	}
	if got := evalFloat(t, track, 10, NewCursor(LoopCycle)); got != 2.0 {
		t.Fatalf("evaluate(10): got %g, want 2.0", got)
	}
}

type fixedEasing float64

func (f fixedEasing) Ease(float64) float64 { return float64(f) }

func TestInterpolateCubicEndpoints(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 2.0, OutTangent: 7.0},
		{Frame: 10, Value: 8.0, InTangent: -3.0},
	})

	// Gradient 0 lands exactly on the start value even with tangents.
	if got := evalFloat(t, track, 0, NewCursor(LoopCycle)); got != 2.0 {
		t.Fatalf("gradient 0: got %g, want 2.0", got)
	}

	// An easing hook pinning the gradient to 1 must land exactly on the
	// end value.
	track.SetEasingFunction(fixedEasing(1))
	if got := evalFloat(t, track, 5, NewCursor(LoopCycle)); got != 8.0 {
		t.Fatalf("gradient 1: got %g, want 8.0", got)
	}
	track.SetEasingFunction(nil)
}

func TestInterpolateEasingHook(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 10.0},
	})
	track.SetEasingFunction(fixedEasing(0.25))
	if got := evalFloat(t, track, 8, NewCursor(LoopCycle)); got != 2.5 {
		t.Fatalf("eased evaluate(8): got %g, want 2.5", got)
	}
}

func TestInterpolateConstantShortCircuit(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 10.0},
	})
	cur := NewCursor(LoopConstant)
	cur.RepeatCount = 1
	cur.HighLimitValue = 42.0
	if got := evalFloat(t, track, 3, cur); got != 42.0 {
		t.Fatalf("finished constant playback: got %g, want 42.0", got)
	}
}

func TestInterpolateRelativeOffset(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 10.0},
	})
	cur := NewCursor(LoopRelative)
	cur.OffsetValue = 10.0
	cur.RepeatCount = 2
	if got := evalFloat(t, track, 5, cur); got != 25.0 {
		t.Fatalf("relative evaluate(5): got %g, want 25.0", got)
	}
}

func TestInterpolateVector3Relative(t *testing.T) {
	track, err := NewTrack("move", "position", 30, TypeVector3, LoopRelative)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}
	track.SetKeys([]Keyframe{
		{Frame: 0, Value: common.Vector3{}},
		{Frame: 10, Value: common.Vector3{X: 4}},
	})

	cur := NewCursor(LoopRelative)
	cur.OffsetValue = common.Vector3{X: 4}
	cur.RepeatCount = 1

	v, err := track.Interpolate(5, cur)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	got := v.(common.Vector3)
	if got.X != 6 || got.Y != 0 || got.Z != 0 {
		t.Fatalf("relative vector: got %+v, want {X:6}", got)
	}
}

func TestInterpolateQuaternionSlerp(t *testing.T) {
	q0 := common.IdentityQuaternion()
	q1 := common.Quaternion{Z: math.Sin(math.Pi / 4), W: math.Cos(math.Pi / 4)} // 90 deg about Z

	track, err := NewTrack("spin", "rotation", 30, TypeQuaternion, LoopCycle)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}
	track.SetKeys([]Keyframe{
		{Frame: 0, Value: q0},
		{Frame: 10, Value: q1},
	})

	v, err := track.Interpolate(5, NewCursor(LoopCycle))
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	got := v.(common.Quaternion)
	want := common.Quaternion{Z: math.Sin(math.Pi / 8), W: math.Cos(math.Pi / 8)} // 45 deg
	if math.Abs(got.Z-want.Z) > 1e-9 || math.Abs(got.W-want.W) > 1e-9 {
		t.Fatalf("slerp midpoint: got %+v, want %+v", got, want)
	}
}

func TestInterpolateMatrixGating(t *testing.T) {
	start := common.ComposeMatrix(common.Vector3{X: 1, Y: 1, Z: 1}, common.IdentityQuaternion(), common.Vector3{})
	end := common.ComposeMatrix(common.Vector3{X: 1, Y: 1, Z: 1}, common.IdentityQuaternion(), common.Vector3{X: 10})

	newMatrixTrack := func(t *testing.T) *Track {
		t.Helper()
		track, err := NewTrack("bone", "world", 30, TypeMatrix, LoopCycle)
		if err != nil {
			t.Fatalf("NewTrack failed: %v", err)
		}
		track.SetKeys([]Keyframe{
			{Frame: 0, Value: start},
			{Frame: 10, Value: end},
		})
		return track
	}

	t.Run("disabled_returns_start", func(t *testing.T) {
		track := newMatrixTrack(t)
		v, err := track.Interpolate(5, NewCursor(LoopCycle))
		if err != nil {
			t.Fatalf("Interpolate failed: %v", err)
		}
		if v.(common.Matrix) != start {
			t.Fatalf("matrix interpolation disabled: got %v, want start value", v)
		}
	})

	t.Run("decompose_blend", func(t *testing.T) {
		track := newMatrixTrack(t)
		track.AllowMatricesInterpolation = true
		track.AllowMatrixDecomposeForInterpolation = true
		v, err := track.Interpolate(5, NewCursor(LoopCycle))
		if err != nil {
			t.Fatalf("Interpolate failed: %v", err)
		}
		got := v.(common.Matrix).Translation()
		if math.Abs(got.X-5) > 1e-9 {
			t.Fatalf("decompose blend midpoint: got translation %+v, want X=5", got)
		}
	})

	t.Run("relative_returns_start", func(t *testing.T) {
		track := newMatrixTrack(t)
		track.AllowMatricesInterpolation = true
		cur := NewCursor(LoopRelative)
		cur.RepeatCount = 3
		v, err := track.Interpolate(5, cur)
		if err != nil {
			t.Fatalf("Interpolate failed: %v", err)
		}
		if v.(common.Matrix) != start {
			t.Fatalf("relative matrix: got %v, want start value", v)
		}
	})
}

func TestInterpolateCursorIsolation(t *testing.T) {
	keys := make([]Keyframe, 11)
	for i := range keys {
		keys[i] = Keyframe{Frame: float64(i * 10), Value: float64(i)}
	}
	track := floatTrack(t, keys)

	a := NewCursor(LoopCycle)
	b := NewCursor(LoopCycle)

	if got := evalFloat(t, track, 95, a); got != 9.5 {
		t.Fatalf("cursor a: got %g, want 9.5", got)
	}
	if got := evalFloat(t, track, 5, b); got != 0.5 {
		t.Fatalf("cursor b: got %g, want 0.5", got)
	}
	// a's cached index must survive b's evaluation.
	if a.Key == b.Key {
		t.Fatalf("cursors share cached key index %d", a.Key)
	}
	if got := evalFloat(t, track, 95, a); got != 9.5 {
		t.Fatalf("cursor a after b: got %g, want 9.5", got)
	}
}

func TestInterpolateBackwardJump(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 10.0},
		{Frame: 20, Value: 20.0},
		{Frame: 30, Value: 30.0},
	})
	cur := NewCursor(LoopCycle)
	if got := evalFloat(t, track, 25, cur); got != 25.0 {
		t.Fatalf("forward: got %g, want 25.0", got)
	}
	if got := evalFloat(t, track, 5, cur); got != 5.0 {
		t.Fatalf("backward jump: got %g, want 5.0", got)
	}
}

func TestInterpolateDuplicateFrames(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 5, Value: 1.0},
		{Frame: 5, Value: 2.0},
	})
	for _, frame := range []float64{0, 5, 10} {
		got := evalFloat(t, track, frame, NewCursor(LoopCycle))
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("evaluate(%g) on zero-length segment: got non-finite %g", frame, got)
		}
	}
}

func TestInterpolateEmptyTrack(t *testing.T) {
	track, err := NewTrack("empty", "x", 30, TypeFloat, LoopCycle)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}
	if _, err := track.Interpolate(0, NewCursor(LoopCycle)); err == nil {
		t.Fatal("expected ConfigurationError for empty key store")
	}
}
