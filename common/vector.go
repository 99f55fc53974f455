package common

import "github.com/jakecoffman/cp"

// Vector2 is a 2D vector. It reuses the chipmunk vector type so values
// interoperate directly with physics bodies and anything else built on cp.
type Vector2 = cp.Vector

// Vector2Hermite evaluates the cubic Hermite basis component-wise.
func Vector2Hermite(value1, tangent1, value2, tangent2 Vector2, s float64) Vector2 {
	return Vector2{
		X: Hermite(value1.X, tangent1.X, value2.X, tangent2.X, s),
		Y: Hermite(value1.Y, tangent1.Y, value2.Y, tangent2.Y, s),
	}
}

// Vector3 is a 3D vector.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mult returns v scaled by s.
func (v Vector3) Mult(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Lerp linearly interpolates between v and other by t.
func (v Vector3) Lerp(other Vector3, t float64) Vector3 {
	return Vector3{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
		Z: Lerp(v.Z, other.Z, t),
	}
}

// Hermite evaluates the cubic Hermite basis component-wise.
func (v Vector3) Hermite(tangent1, value2, tangent2 Vector3, s float64) Vector3 {
	return Vector3{
		X: Hermite(v.X, tangent1.X, value2.X, tangent2.X, s),
		Y: Hermite(v.Y, tangent1.Y, value2.Y, tangent2.Y, s),
		Z: Hermite(v.Z, tangent1.Z, value2.Z, tangent2.Z, s),
	}
}
