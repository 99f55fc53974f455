package anim

import (
	"fmt"

	"github.com/milk9111/keyframe/common"
)

// DataType tags the value type a track animates. The numeric values are
// part of the serialized form and must not be reordered.
type DataType int

const (
	TypeFloat      DataType = 0
	TypeVector3    DataType = 1
	TypeQuaternion DataType = 2
	TypeMatrix     DataType = 3
	TypeColor3     DataType = 4
	TypeVector2    DataType = 5
	TypeSize       DataType = 6
	TypeColor4     DataType = 7
)

func (d DataType) String() string {
	switch d {
	case TypeFloat:
		return "float"
	case TypeVector3:
		return "vector3"
	case TypeQuaternion:
		return "quaternion"
	case TypeMatrix:
		return "matrix"
	case TypeColor3:
		return "color3"
	case TypeVector2:
		return "vector2"
	case TypeSize:
		return "size"
	case TypeColor4:
		return "color4"
	default:
		return fmt.Sprintf("datatype(%d)", int(d))
	}
}

// componentCount returns the number of floats in the flattened form of a
// value of this type, or -1 for an unknown type.
func (d DataType) componentCount() int {
	switch d {
	case TypeFloat:
		return 1
	case TypeVector2, TypeSize:
		return 2
	case TypeVector3, TypeColor3:
		return 3
	case TypeQuaternion, TypeColor4:
		return 4
	case TypeMatrix:
		return 16
	default:
		return -1
	}
}

// LoopMode selects how an evaluation cursor expresses repeated playback.
// The looping decision itself (wrapping frames, counting repeats) belongs
// to the player driving the cursor; the evaluator only applies the
// per-call math for each mode.
type LoopMode int

const (
	LoopRelative LoopMode = 0
	LoopCycle    LoopMode = 1
	LoopConstant LoopMode = 2
	LoopYoyo     LoopMode = 4
)

// Interpolation is a per-key override of how the segment leaving the key
// is evaluated.
type Interpolation int

const (
	// InterpolationNone uses the track's normal linear/cubic evaluation.
	InterpolationNone Interpolation = 0
	// InterpolationStep holds the key's value until the next key's frame.
	InterpolationStep Interpolation = 1
)

// Value is a keyframe value. It holds exactly one of: float64,
// common.Vector2, common.Vector3, common.Quaternion, common.Matrix,
// common.Color3, common.Color4, or common.Size, as declared by the owning
// track's DataType. All variants are plain value types, so assignment is
// a deep copy.
type Value any

// zeroValue returns the additive identity for the data type.
func zeroValue(d DataType) Value {
	switch d {
	case TypeFloat:
		return float64(0)
	case TypeVector2:
		return common.Vector2{}
	case TypeVector3:
		return common.Vector3{}
	case TypeQuaternion:
		return common.IdentityQuaternion()
	case TypeMatrix:
		return common.IdentityMatrix()
	case TypeColor3:
		return common.Color3{}
	case TypeColor4:
		return common.Color4{}
	case TypeSize:
		return common.Size{}
	default:
		return nil
	}
}

// valueToArray flattens a value into its serialized component order.
func valueToArray(d DataType, v Value) ([]float64, error) {
	switch d {
	case TypeFloat:
		f, ok := v.(float64)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return []float64{f}, nil
	case TypeVector2:
		vec, ok := v.(common.Vector2)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return []float64{vec.X, vec.Y}, nil
	case TypeVector3:
		vec, ok := v.(common.Vector3)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return []float64{vec.X, vec.Y, vec.Z}, nil
	case TypeQuaternion:
		q, ok := v.(common.Quaternion)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return []float64{q.X, q.Y, q.Z, q.W}, nil
	case TypeMatrix:
		m, ok := v.(common.Matrix)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		out := make([]float64, 16)
		copy(out, m[:])
		return out, nil
	case TypeColor3:
		c, ok := v.(common.Color3)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return []float64{c.R, c.G, c.B}, nil
	case TypeColor4:
		c, ok := v.(common.Color4)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return []float64{c.R, c.G, c.B, c.A}, nil
	case TypeSize:
		s, ok := v.(common.Size)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return []float64{s.Width, s.Height}, nil
	default:
		return nil, &ConfigurationError{Op: "flatten", Reason: fmt.Sprintf("unknown data type %d", int(d))}
	}
}

// valueFromArray rebuilds a value from its flattened component order.
func valueFromArray(d DataType, a []float64) (Value, error) {
	if n := d.componentCount(); n < 0 || len(a) < n {
		return nil, &ConfigurationError{Op: "parse", Reason: fmt.Sprintf("%s needs %d components, got %d", d, d.componentCount(), len(a))}
	}
	switch d {
	case TypeFloat:
		return a[0], nil
	case TypeVector2:
		return common.Vector2{X: a[0], Y: a[1]}, nil
	case TypeVector3:
		return common.Vector3{X: a[0], Y: a[1], Z: a[2]}, nil
	case TypeQuaternion:
		return common.Quaternion{X: a[0], Y: a[1], Z: a[2], W: a[3]}, nil
	case TypeMatrix:
		var m common.Matrix
		copy(m[:], a[:16])
		return m, nil
	case TypeColor3:
		return common.Color3{R: a[0], G: a[1], B: a[2]}, nil
	case TypeColor4:
		return common.Color4{R: a[0], G: a[1], B: a[2], A: a[3]}, nil
	case TypeSize:
		return common.Size{Width: a[0], Height: a[1]}, nil
	default:
		return nil, &ConfigurationError{Op: "parse", Reason: fmt.Sprintf("unknown data type %d", int(d))}
	}
}

// SubtractValue returns a minus b for the given data type. Quaternions
// subtract rotationally: the result composes the conjugate of b with a.
// Matrices subtract in decomposed space. Used by the additive converter
// and by players computing relative-loop offsets.
func SubtractValue(d DataType, a, b Value) (Value, error) {
	switch d {
	case TypeFloat:
		av, aok := a.(float64)
		bv, bok := b.(float64)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return av - bv, nil
	case TypeVector2:
		av, aok := a.(common.Vector2)
		bv, bok := b.(common.Vector2)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return av.Sub(bv), nil
	case TypeVector3:
		av, aok := a.(common.Vector3)
		bv, bok := b.(common.Vector3)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return av.Sub(bv), nil
	case TypeQuaternion:
		av, aok := a.(common.Quaternion)
		bv, bok := b.(common.Quaternion)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return bv.Normalize().Conjugate().Mul(av), nil
	case TypeMatrix:
		av, aok := a.(common.Matrix)
		bv, bok := b.(common.Matrix)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return subtractMatrix(av, bv), nil
	case TypeColor3:
		av, aok := a.(common.Color3)
		bv, bok := b.(common.Color3)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return av.Sub(bv), nil
	case TypeColor4:
		av, aok := a.(common.Color4)
		bv, bok := b.(common.Color4)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return av.Sub(bv), nil
	case TypeSize:
		av, aok := a.(common.Size)
		bv, bok := b.(common.Size)
		if !aok || !bok {
			return nil, typeMismatch(d, a)
		}
		return av.Sub(bv), nil
	default:
		return nil, &ConfigurationError{Op: "subtract", Reason: fmt.Sprintf("unknown data type %d", int(d))}
	}
}

// subtractMatrix rebases a transform against a reference transform:
// translation subtracts, scale divides component-wise, and rotation
// composes with the conjugated reference rotation.
func subtractMatrix(a, ref common.Matrix) common.Matrix {
	aScale, aRotation, aTranslation := a.Decompose()
	refScale, refRotation, refTranslation := ref.Decompose()

	scale := aScale
	if refScale.X != 0 {
		scale.X = aScale.X / refScale.X
	}
	if refScale.Y != 0 {
		scale.Y = aScale.Y / refScale.Y
	}
	if refScale.Z != 0 {
		scale.Z = aScale.Z / refScale.Z
	}

	rotation := refRotation.Normalize().Conjugate().Mul(aRotation)
	translation := aTranslation.Sub(refTranslation)

	return common.ComposeMatrix(scale, rotation, translation)
}

func typeMismatch(d DataType, v Value) error {
	return &ConfigurationError{Op: "dispatch", Reason: fmt.Sprintf("value %T does not match track data type %s", v, d)}
}
