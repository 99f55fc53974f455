// Package easing provides gradient-remapping hooks for animation tracks:
// a small set of fixed curves and a tengo-scripted hook for curves
// authored outside the binary.
package easing

import "math"

// Function remaps a normalized gradient. It satisfies the track's
// easing hook interface directly.
type Function func(gradient float64) float64

// Ease applies the function.
func (f Function) Ease(gradient float64) float64 {
	return f(gradient)
}

// Mode selects which side of the curve accelerates.
type Mode int

const (
	ModeIn Mode = iota
	ModeOut
	ModeInOut
)

// withMode wraps an ease-in primitive into the requested mode.
func withMode(f func(t float64) float64, mode Mode) Function {
	switch mode {
	case ModeOut:
		return func(t float64) float64 { return 1 - f(1-t) }
	case ModeInOut:
		return func(t float64) float64 {
			if t < 0.5 {
				return f(2*t) / 2
			}
			return 1 - f(2-2*t)/2
		}
	default:
		return f
	}
}

// Quad is a quadratic curve.
func Quad(mode Mode) Function {
	return withMode(func(t float64) float64 { return t * t }, mode)
}

// Cubic is a cubic curve.
func Cubic(mode Mode) Function {
	return withMode(func(t float64) float64 { return t * t * t }, mode)
}

// Sine is a quarter-wave sine curve.
func Sine(mode Mode) Function {
	return withMode(func(t float64) float64 {
		return 1 - math.Cos(t*math.Pi/2)
	}, mode)
}

// Back overshoots slightly before settling. Amplitude controls the
// overshoot; 1 gives the classic curve.
func Back(mode Mode, amplitude float64) Function {
	s := 1.70158 * amplitude
	return withMode(func(t float64) float64 {
		return t * t * ((s+1)*t - s)
	}, mode)
}
