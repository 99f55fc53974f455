package anim

import (
	"github.com/milk9111/keyframe/common"
)

// Interpolate computes the track's value at the given frame using the
// caller's cursor. The cursor's key index hint is updated in place so
// the next call resumes near the last resolved segment.
//
// Loop mechanics live in the player: this call only applies the per-mode
// math. LoopCycle, LoopConstant, and LoopYoyo return the raw
// interpolated value; LoopRelative adds the cursor's offset scaled by
// its repeat count.
func (t *Track) Interpolate(frame float64, cur *Cursor) (Value, error) {
	if len(t.keys) == 0 {
		return nil, &ConfigurationError{Op: "interpolate", Reason: "track " + t.Name + " has no keys"}
	}
	if cur == nil {
		cur = NewCursor(t.LoopMode)
	}

	// A finished constant playback short-circuits to its terminal value.
	// This is a caller contract: the player sets RepeatCount and
	// HighLimitValue once the play head passes the end.
	if cur.LoopMode == LoopConstant && cur.RepeatCount > 0 && cur.HighLimitValue != nil {
		return cur.HighLimitValue, nil
	}

	keys := t.keys
	if cur.Key < 0 {
		cur.Key = 0
	} else if cur.Key > len(keys)-1 {
		cur.Key = len(keys) - 1
	}

	// Resolve the bounding segment incrementally from the cached index.
	for cur.Key > 0 && frame < keys[cur.Key].Frame {
		cur.Key--
	}
	for cur.Key < len(keys)-1 && frame >= keys[cur.Key+1].Frame {
		cur.Key++
	}

	// Boundary clamp: no extrapolation past either end.
	if frame < keys[0].Frame {
		return keys[0].Value, nil
	}
	if cur.Key >= len(keys)-1 {
		return keys[len(keys)-1].Value, nil
	}

	startKey := keys[cur.Key]
	endKey := keys[cur.Key+1]

	if startKey.Interpolation == InterpolationStep {
		if frame < endKey.Frame {
			return startKey.Value, nil
		}
		return endKey.Value, nil
	}

	frameDelta := endKey.Frame - startKey.Frame
	if frameDelta == 0 {
		// Two keys sharing a frame would divide by zero; hold the left
		// value instead of propagating non-finite numbers.
		return startKey.Value, nil
	}

	gradient := (frame - startKey.Frame) / frameDelta
	if t.easing != nil {
		gradient = t.easing.Ease(gradient)
	}

	useTangent := startKey.OutTangent != nil && endKey.InTangent != nil

	switch t.dataType {
	case TypeFloat:
		start, sok := startKey.Value.(float64)
		end, eok := endKey.Value.(float64)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		var v float64
		if useTangent {
			outTangent := startKey.OutTangent.(float64)
			inTangent := endKey.InTangent.(float64)
			v = common.Hermite(start, outTangent*frameDelta, end, inTangent*frameDelta, gradient)
		} else {
			v = common.Lerp(start, end, gradient)
		}
		if cur.LoopMode == LoopRelative {
			offset, _ := cur.OffsetValue.(float64)
			return offset*float64(cur.RepeatCount) + v, nil
		}
		return v, nil

	case TypeVector2:
		start, sok := startKey.Value.(common.Vector2)
		end, eok := endKey.Value.(common.Vector2)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		var v common.Vector2
		if useTangent {
			outTangent := startKey.OutTangent.(common.Vector2)
			inTangent := endKey.InTangent.(common.Vector2)
			v = common.Vector2Hermite(start, outTangent.Mult(frameDelta), end, inTangent.Mult(frameDelta), gradient)
		} else {
			v = start.Lerp(end, gradient)
		}
		if cur.LoopMode == LoopRelative {
			if offset, ok := cur.OffsetValue.(common.Vector2); ok {
				return v.Add(offset.Mult(float64(cur.RepeatCount))), nil
			}
		}
		return v, nil

	case TypeVector3:
		start, sok := startKey.Value.(common.Vector3)
		end, eok := endKey.Value.(common.Vector3)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		var v common.Vector3
		if useTangent {
			outTangent := startKey.OutTangent.(common.Vector3)
			inTangent := endKey.InTangent.(common.Vector3)
			v = start.Hermite(outTangent.Mult(frameDelta), end, inTangent.Mult(frameDelta), gradient)
		} else {
			v = start.Lerp(end, gradient)
		}
		if cur.LoopMode == LoopRelative {
			if offset, ok := cur.OffsetValue.(common.Vector3); ok {
				return v.Add(offset.Mult(float64(cur.RepeatCount))), nil
			}
		}
		return v, nil

	case TypeQuaternion:
		start, sok := startKey.Value.(common.Quaternion)
		end, eok := endKey.Value.(common.Quaternion)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		var v common.Quaternion
		if useTangent {
			outTangent := startKey.OutTangent.(common.Quaternion)
			inTangent := endKey.InTangent.(common.Quaternion)
			v = start.Hermite(outTangent.Scale(frameDelta), end, inTangent.Scale(frameDelta), gradient).Normalize()
		} else {
			v = start.Slerp(end, gradient)
		}
		if cur.LoopMode == LoopRelative && cur.RepeatCount > 0 {
			if offset, ok := cur.OffsetValue.(common.Quaternion); ok {
				return v.Mul(offset.Scale(float64(cur.RepeatCount))), nil
			}
		}
		return v, nil

	case TypeColor3:
		start, sok := startKey.Value.(common.Color3)
		end, eok := endKey.Value.(common.Color3)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		var v common.Color3
		if useTangent {
			outTangent := startKey.OutTangent.(common.Color3)
			inTangent := endKey.InTangent.(common.Color3)
			v = start.Hermite(outTangent.Mult(frameDelta), end, inTangent.Mult(frameDelta), gradient)
		} else {
			v = start.Lerp(end, gradient)
		}
		if cur.LoopMode == LoopRelative {
			if offset, ok := cur.OffsetValue.(common.Color3); ok {
				return v.Add(offset.Mult(float64(cur.RepeatCount))), nil
			}
		}
		return v, nil

	case TypeColor4:
		start, sok := startKey.Value.(common.Color4)
		end, eok := endKey.Value.(common.Color4)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		var v common.Color4
		if useTangent {
			outTangent := startKey.OutTangent.(common.Color4)
			inTangent := endKey.InTangent.(common.Color4)
			v = start.Hermite(outTangent.Mult(frameDelta), end, inTangent.Mult(frameDelta), gradient)
		} else {
			v = start.Lerp(end, gradient)
		}
		if cur.LoopMode == LoopRelative {
			if offset, ok := cur.OffsetValue.(common.Color4); ok {
				return v.Add(offset.Mult(float64(cur.RepeatCount))), nil
			}
		}
		return v, nil

	case TypeSize:
		start, sok := startKey.Value.(common.Size)
		end, eok := endKey.Value.(common.Size)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		var v common.Size
		if useTangent {
			outTangent := startKey.OutTangent.(common.Size)
			inTangent := endKey.InTangent.(common.Size)
			v = start.Hermite(outTangent.Mult(frameDelta), end, inTangent.Mult(frameDelta), gradient)
		} else {
			v = start.Lerp(end, gradient)
		}
		if cur.LoopMode == LoopRelative {
			if offset, ok := cur.OffsetValue.(common.Size); ok {
				return v.Add(offset.Mult(float64(cur.RepeatCount))), nil
			}
		}
		return v, nil

	case TypeMatrix:
		start, sok := startKey.Value.(common.Matrix)
		end, eok := endKey.Value.(common.Matrix)
		if !sok || !eok {
			return nil, typeMismatch(t.dataType, startKey.Value)
		}
		switch cur.LoopMode {
		case LoopCycle, LoopConstant, LoopYoyo:
			// Matrices never interpolate cubically and do not
			// interpolate at all unless explicitly opted in.
			if t.AllowMatricesInterpolation {
				var v common.Matrix
				if t.AllowMatrixDecomposeForInterpolation {
					v = start.DecomposeLerp(end, gradient)
				} else {
					v = start.Lerp(end, gradient)
				}
				cur.WorkValue = v
				return v, nil
			}
			return start, nil
		case LoopRelative:
			// Relative looping applies no offset to matrices; the raw
			// start value comes back unchanged.
			return start, nil
		}
		return start, nil

	default:
		return nil, &ConfigurationError{Op: "interpolate", Reason: "unknown data type " + t.dataType.String()}
	}
}
