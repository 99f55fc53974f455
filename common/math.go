package common

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Hermite evaluates the cubic Hermite basis at s between value1 and value2
// with tangents tangent1 (leaving value1) and tangent2 (entering value2).
func Hermite(value1, tangent1, value2, tangent2, s float64) float64 {
	squared := s * s
	cubed := s * squared
	part1 := 2.0*cubed - 3.0*squared + 1.0
	part2 := -2.0*cubed + 3.0*squared
	part3 := cubed - 2.0*squared + s
	part4 := cubed - squared
	return value1*part1 + value2*part2 + tangent1*part3 + tangent2*part4
}

// Clamp01 clamps t into [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
