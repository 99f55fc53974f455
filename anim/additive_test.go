package anim

import (
	"math"
	"testing"

	"github.com/milk9111/keyframe/common"
)

func TestMakeAdditiveFloatIdentityAtReference(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 2.0},
		{Frame: 10, Value: 6.0},
	})

	converted, err := MakeAdditive(track, 5, "", true)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}

	// Evaluating the converted track at the reference frame must yield
	// the zero delta.
	if got := evalFloat(t, converted, 5, NewCursor(LoopCycle)); got != 0 {
		t.Fatalf("converted value at reference frame: got %g, want 0", got)
	}
	// And the original must be untouched when cloning.
	if got := evalFloat(t, track, 5, NewCursor(LoopCycle)); got != 4.0 {
		t.Fatalf("original mutated by cloned conversion: got %g, want 4.0", got)
	}
}

func TestMakeAdditiveInPlace(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 2.0},
		{Frame: 10, Value: 6.0},
	})

	converted, err := MakeAdditive(track, 0, "", false)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}
	if converted != track {
		t.Fatal("in-place conversion returned a different track")
	}
	if got := track.Keys()[1].Value.(float64); got != 4.0 {
		t.Fatalf("last key delta: got %g, want 4.0", got)
	}
}

func TestMakeAdditiveReferenceClamping(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 10, Value: 3.0},
		{Frame: 20, Value: 7.0},
	})

	t.Run("before_first", func(t *testing.T) {
		converted, err := MakeAdditive(track, -5, "", true)
		if err != nil {
			t.Fatalf("MakeAdditive failed: %v", err)
		}
		if got := converted.Keys()[0].Value.(float64); got != 0 {
			t.Fatalf("first key delta: got %g, want 0", got)
		}
	})

	t.Run("after_last", func(t *testing.T) {
		converted, err := MakeAdditive(track, 99, "", true)
		if err != nil {
			t.Fatalf("MakeAdditive failed: %v", err)
		}
		if got := converted.Keys()[1].Value.(float64); got != 0 {
			t.Fatalf("last key delta: got %g, want 0", got)
		}
	})
}

func TestMakeAdditiveRangeBoundarySynthesis(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 10.0},
		{Frame: 20, Value: 20.0},
	})
	track.CreateRange("mid", 5, 15)

	converted, err := MakeAdditive(track, 10, "mid", true)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}

	keys := converted.Keys()
	wantFrames := []float64{0, 5, 10, 15, 20}
	wantValues := []float64{0, -5, 0, 5, 20}
	if len(keys) != len(wantFrames) {
		t.Fatalf("key count: got %d, want %d", len(keys), len(wantFrames))
	}
	for i, k := range keys {
		if k.Frame != wantFrames[i] {
			t.Fatalf("key %d frame: got %g, want %g", i, k.Frame, wantFrames[i])
		}
		if got := k.Value.(float64); got != wantValues[i] {
			t.Fatalf("key %d value: got %g, want %g", i, got, wantValues[i])
		}
	}
}

func TestMakeAdditiveRangeWithoutInteriorKeys(t *testing.T) {
	// Both range edges fall inside the same segment, so the end boundary
	// key must be sampled before the normalized start key is inserted.
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 20, Value: 20.0},
	})
	track.CreateRange("mid", 5, 15)

	converted, err := MakeAdditive(track, 10, "mid", true)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}

	keys := converted.Keys()
	wantFrames := []float64{0, 5, 15, 20}
	wantValues := []float64{0, -5, 5, 20}
	if len(keys) != len(wantFrames) {
		t.Fatalf("key count: got %d, want %d", len(keys), len(wantFrames))
	}
	for i, k := range keys {
		if k.Frame != wantFrames[i] {
			t.Fatalf("key %d frame: got %g, want %g", i, k.Frame, wantFrames[i])
		}
		if got := k.Value.(float64); got != wantValues[i] {
			t.Fatalf("key %d value: got %g, want %g", i, got, wantValues[i])
		}
	}
}

func TestMakeAdditiveSingleKeyUnchanged(t *testing.T) {
	track := floatTrack(t, []Keyframe{{Frame: 0, Value: 5.0}})

	converted, err := MakeAdditive(track, 0, "", true)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}
	if got := converted.Keys()[0].Value.(float64); got != 5.0 {
		t.Fatalf("single key: got %g, want 5.0 unchanged", got)
	}
}

func TestMakeAdditiveQuaternion(t *testing.T) {
	q0 := common.IdentityQuaternion()
	q1 := common.Quaternion{Z: math.Sin(math.Pi / 4), W: math.Cos(math.Pi / 4)}

	track, err := NewTrack("spin", "rotation", 30, TypeQuaternion, LoopCycle)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}
	track.SetKeys([]Keyframe{
		{Frame: 0, Value: q0},
		{Frame: 10, Value: q1},
	})

	converted, err := MakeAdditive(track, 10, "", true)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}

	// At the reference frame the delta rotation must be identity.
	got := converted.Keys()[1].Value.(common.Quaternion)
	if math.Abs(got.W-1) > 1e-9 || math.Abs(got.X) > 1e-9 || math.Abs(got.Y) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Fatalf("delta at reference: got %+v, want identity", got)
	}
}

func TestMakeAdditiveSize(t *testing.T) {
	track, err := NewTrack("resize", "size", 30, TypeSize, LoopCycle)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}
	track.SetKeys([]Keyframe{
		{Frame: 0, Value: common.Size{Width: 2, Height: 2}},
		{Frame: 10, Value: common.Size{Width: 4, Height: 6}},
	})

	converted, err := MakeAdditive(track, 10, "", true)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}
	got := converted.Keys()[1].Value.(common.Size)
	if got.Width != 0 || got.Height != 0 {
		t.Fatalf("delta at reference: got %+v, want zero size", got)
	}
	first := converted.Keys()[0].Value.(common.Size)
	if first.Width != -2 || first.Height != -4 {
		t.Fatalf("first key delta: got %+v, want {-2 -4}", first)
	}
}

func TestMakeAdditiveUnknownRangeUsesFullSpan(t *testing.T) {
	track := floatTrack(t, []Keyframe{
		{Frame: 0, Value: 1.0},
		{Frame: 10, Value: 3.0},
	})

	converted, err := MakeAdditive(track, 0, "no-such-range", true)
	if err != nil {
		t.Fatalf("MakeAdditive failed: %v", err)
	}
	if got := converted.Keys()[1].Value.(float64); got != 2.0 {
		t.Fatalf("last key delta: got %g, want 2.0", got)
	}
}
