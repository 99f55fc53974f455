package common

import "math"

// Quaternion is a rotation quaternion (x, y, z, w).
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Mul returns the Hamilton product q * other. Applying the result rotates
// by other first, then by q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the conjugate of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Dot returns the 4D dot product of q and other.
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the magnitude of q.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

// Scale returns q with every component multiplied by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Add returns the component-wise sum of q and other.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{X: q.X + other.X, Y: q.Y + other.Y, Z: q.Z + other.Z, W: q.W + other.W}
}

// Normalize returns q scaled to unit length. A zero quaternion normalizes
// to identity.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return IdentityQuaternion()
	}
	return q.Scale(1.0 / l)
}

// Slerp spherically interpolates between q and other by t.
func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	cosHalfTheta := q.Dot(other)

	// Take the short way around.
	if cosHalfTheta < 0 {
		other = other.Scale(-1)
		cosHalfTheta = -cosHalfTheta
	}

	// Nearly parallel: fall back to a normalized lerp to avoid dividing by
	// a vanishing sin.
	if cosHalfTheta > 0.9995 {
		return Quaternion{
			X: Lerp(q.X, other.X, t),
			Y: Lerp(q.Y, other.Y, t),
			Z: Lerp(q.Z, other.Z, t),
			W: Lerp(q.W, other.W, t),
		}.Normalize()
	}

	halfTheta := math.Acos(cosHalfTheta)
	sinHalfTheta := math.Sqrt(1.0 - cosHalfTheta*cosHalfTheta)
	ratioA := math.Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := math.Sin(t*halfTheta) / sinHalfTheta

	return q.Scale(ratioA).Add(other.Scale(ratioB))
}

// Hermite evaluates the cubic Hermite basis on the raw quaternion
// components. The result is not normalized.
func (q Quaternion) Hermite(tangent1, value2, tangent2 Quaternion, s float64) Quaternion {
	return Quaternion{
		X: Hermite(q.X, tangent1.X, value2.X, tangent2.X, s),
		Y: Hermite(q.Y, tangent1.Y, value2.Y, tangent2.Y, s),
		Z: Hermite(q.Z, tangent1.Z, value2.Z, tangent2.Z, s),
		W: Hermite(q.W, tangent1.W, value2.W, tangent2.W, s),
	}
}
