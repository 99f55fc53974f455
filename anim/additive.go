package anim

import "sort"

// MakeAdditive rewrites every key value in the track (or in the named
// range) as a delta from the track's value at referenceFrame, so the
// result can be summed onto a base track by an external blend layer.
//
// When cloneOriginal is set the conversion operates on a deep copy and
// the receiver is left untouched; otherwise the track mutates in place.
// Boundary keys for the range edges are synthesized by sampling the
// evaluator before any subtraction begins, so a failure can never leave
// the track half-converted.
//
// A track with zero or one key is returned unchanged: the reference
// value still resolves, but there is nothing to subtract it from.
func MakeAdditive(t *Track, referenceFrame float64, rangeName string, cloneOriginal bool) (*Track, error) {
	out := t
	if cloneOriginal {
		out = t.Clone()
	}
	if len(out.keys) == 0 {
		return out, nil
	}

	first := out.keys[0].Frame
	last := out.keys[len(out.keys)-1].Frame

	from, to := first, last
	if rangeName != "" {
		if r := out.Range(rangeName); r != nil {
			from, to = r.From, r.To
		}
	}

	// Clamp a malformed interval to the nearest valid boundary.
	if from < first {
		from = first
	}
	if to > last {
		to = last
	}
	if from > to {
		from, to = first, last
	}

	// Resolve the reference value, sampling the evaluator only when the
	// reference frame falls strictly inside the key span.
	var reference Value
	switch {
	case referenceFrame <= first:
		reference = out.keys[0].Value
	case referenceFrame >= last:
		reference = out.keys[len(out.keys)-1].Value
	default:
		v, err := out.Interpolate(referenceFrame, NewCursor(LoopConstant))
		if err != nil {
			return nil, err
		}
		reference = v
	}

	if len(out.keys) < 2 {
		return out, nil
	}

	// Pin the range edges to real keys so the subtraction pass operates
	// on an exact closed interval. Both edges are sampled against the
	// untouched key store before either is inserted; sampling after an
	// insertion would interpolate against the already-normalized start
	// key. The start boundary key is built already normalized and
	// skipped below.
	fromIdx, fromExact := findKeyIndex(out.keys, from)
	toIdx, toExact := findKeyIndex(out.keys, to)

	var fromValue, toValue Value
	if !fromExact {
		sampled, err := out.Interpolate(from, NewCursor(LoopConstant))
		if err != nil {
			return nil, err
		}
		fromValue, err = SubtractValue(out.dataType, sampled, reference)
		if err != nil {
			return nil, err
		}
	}
	if !toExact {
		sampled, err := out.Interpolate(to, NewCursor(LoopConstant))
		if err != nil {
			return nil, err
		}
		toValue = sampled
	}

	skipIndex := -1
	if !fromExact {
		out.keys = insertKey(out.keys, fromIdx, Keyframe{Frame: from, Value: fromValue})
		skipIndex = fromIdx
		toIdx++
	}
	if !toExact {
		out.keys = insertKey(out.keys, toIdx, Keyframe{Frame: to, Value: toValue})
	}

	for i := range out.keys {
		if i == skipIndex {
			continue
		}
		key := &out.keys[i]
		if key.Frame < from || key.Frame > to {
			continue
		}
		delta, err := SubtractValue(out.dataType, key.Value, reference)
		if err != nil {
			return nil, err
		}
		key.Value = delta
	}
	return out, nil
}

// findKeyIndex locates the sorted insertion index for a frame and
// reports whether a key already sits exactly on it.
func findKeyIndex(keys []Keyframe, frame float64) (int, bool) {
	idx := sort.Search(len(keys), func(i int) bool {
		return keys[i].Frame >= frame
	})
	exact := idx < len(keys) && keys[idx].Frame == frame
	return idx, exact
}

func insertKey(keys []Keyframe, idx int, key Keyframe) []Keyframe {
	keys = append(keys, Keyframe{})
	copy(keys[idx+1:], keys[idx:])
	keys[idx] = key
	return keys
}
