package easing

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	curves := []struct {
		name string
		f    Function
	}{
		{"quad_in", Quad(ModeIn)},
		{"quad_out", Quad(ModeOut)},
		{"quad_inout", Quad(ModeInOut)},
		{"cubic_in", Cubic(ModeIn)},
		{"cubic_out", Cubic(ModeOut)},
		{"cubic_inout", Cubic(ModeInOut)},
		{"sine_in", Sine(ModeIn)},
		{"sine_out", Sine(ModeOut)},
		{"sine_inout", Sine(ModeInOut)},
		{"back_in", Back(ModeIn, 1)},
		{"back_out", Back(ModeOut, 1)},
		{"back_inout", Back(ModeInOut, 1)},
	}

	for _, c := range curves {
		t.Run(c.name, func(t *testing.T) {
			if got := c.f.Ease(0); math.Abs(got) > 1e-9 {
				t.Fatalf("ease(0): got %g, want 0", got)
			}
			if got := c.f.Ease(1); math.Abs(got-1) > 1e-9 {
				t.Fatalf("ease(1): got %g, want 1", got)
			}
		})
	}
}

func TestQuadValues(t *testing.T) {
	if got := Quad(ModeIn).Ease(0.5); got != 0.25 {
		t.Fatalf("quad in at 0.5: got %g, want 0.25", got)
	}
	if got := Quad(ModeOut).Ease(0.5); got != 0.75 {
		t.Fatalf("quad out at 0.5: got %g, want 0.75", got)
	}
	if got := Quad(ModeInOut).Ease(0.5); got != 0.5 {
		t.Fatalf("quad inout at 0.5: got %g, want 0.5", got)
	}
}

func TestBackOvershoots(t *testing.T) {
	f := Back(ModeOut, 1)
	overshot := false
	for g := 0.05; g < 1; g += 0.05 {
		if f.Ease(g) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Fatal("back out never exceeded 1")
	}
}

func TestScriptEase(t *testing.T) {
	s, err := NewScript([]byte(`ease := func(g) { return g * g }`))
	if err != nil {
		t.Fatalf("NewScript failed: %v", err)
	}
	if got := s.Ease(0.5); got != 0.25 {
		t.Fatalf("scripted ease(0.5): got %g, want 0.25", got)
	}
	if got := s.Ease(1); got != 1 {
		t.Fatalf("scripted ease(1): got %g, want 1", got)
	}
}

func TestScriptUsesStdlib(t *testing.T) {
	src := `
math := import("math")
ease := func(g) { return 1 - math.cos(g * math.pi / 2) }
`
	s, err := NewScript([]byte(src))
	if err != nil {
		t.Fatalf("NewScript failed: %v", err)
	}
	if got := s.Ease(1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("scripted sine ease(1): got %g, want 1", got)
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript([]byte(`ease := func(`)); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestScriptNilFailsQuiet(t *testing.T) {
	var s *Script
	if got := s.Ease(0.4); got != 0.4 {
		t.Fatalf("nil script: got %g, want the gradient back", got)
	}
}
