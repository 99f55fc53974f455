package anim

// Keyframe is a single timestamped value on a track. Frames are expected
// to be supplied in non-decreasing order; the engine does not reorder
// them. InTangent and OutTangent are optional (nil when absent) and are
// independent per key: a segment evaluates cubically only when the left
// key's OutTangent and the right key's InTangent are both present.
type Keyframe struct {
	Frame         float64
	Value         Value
	InTangent     Value
	OutTangent    Value
	Interpolation Interpolation
}

// cloneKeys deep-copies a key slice. Values are plain value types, so the
// element copy is already deep.
func cloneKeys(keys []Keyframe) []Keyframe {
	out := make([]Keyframe, len(keys))
	copy(out, keys)
	return out
}
