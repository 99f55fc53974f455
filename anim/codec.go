package anim

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// TrackRecord is the serialized form of a track. Key values use a
// positional flattened layout: the value's components come first, then
// the optional in-tangent, out-tangent, and interpolation slots in that
// order. An optional slot is only written when needed; a missing earlier
// slot is held open by a null placeholder so later slots keep their
// position.
type TrackRecord struct {
	Name           string        `yaml:"name"`
	Property       string        `yaml:"property"`
	FramePerSecond float64       `yaml:"framePerSecond"`
	DataType       int           `yaml:"dataType"`
	LoopBehavior   int           `yaml:"loopBehavior"`
	EnableBlending bool          `yaml:"enableBlending"`
	BlendingSpeed  float64       `yaml:"blendingSpeed"`
	Keys           []KeyRecord   `yaml:"keys"`
	Ranges         []RangeRecord `yaml:"ranges,omitempty"`
}

// KeyRecord is one serialized keyframe.
type KeyRecord struct {
	Frame  float64     `yaml:"frame"`
	Values []ValueSlot `yaml:"values"`
}

// RangeRecord is one serialized named range.
type RangeRecord struct {
	Name string  `yaml:"name"`
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// ValueSlot is a single entry in a key's positional value list: a
// scalar, a flattened array (composite tangents), or a null placeholder
// standing in for an absent optional slot.
type ValueSlot struct {
	Scalar  float64
	Array   []float64
	IsArray bool
	Null    bool
}

func scalarSlot(v float64) ValueSlot {
	return ValueSlot{Scalar: v}
}

func arraySlot(a []float64) ValueSlot {
	return ValueSlot{Array: a, IsArray: true}
}

// UnmarshalYAML accepts a scalar, a sequence, or null.
func (s *ValueSlot) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			s.Null = true
			return nil
		}
		return value.Decode(&s.Scalar)
	case yaml.SequenceNode:
		s.IsArray = true
		return value.Decode(&s.Array)
	default:
		return fmt.Errorf("key value slot must be a number, sequence, or null")
	}
}

// MarshalYAML emits the slot in its original shape.
func (s ValueSlot) MarshalYAML() (interface{}, error) {
	if s.Null {
		return nil, nil
	}
	if s.IsArray {
		return s.Array, nil
	}
	return s.Scalar, nil
}

// Positions of the optional slots after a key's value components.
const (
	slotInTangent = iota
	slotOutTangent
	slotInterpolation
)

// ToRecord converts the track to its serialized form.
func (t *Track) ToRecord() (*TrackRecord, error) {
	rec := &TrackRecord{
		Name:           t.Name,
		Property:       t.TargetProperty,
		FramePerSecond: t.FramePerSecond,
		DataType:       int(t.dataType),
		LoopBehavior:   int(t.LoopMode),
		EnableBlending: t.EnableBlending,
		BlendingSpeed:  t.BlendingSpeed,
	}

	for _, key := range t.keys {
		kr, err := t.encodeKey(key)
		if err != nil {
			return nil, err
		}
		rec.Keys = append(rec.Keys, kr)
	}

	names := t.RangeNames()
	sort.Strings(names)
	for _, name := range names {
		r := t.ranges[name]
		rec.Ranges = append(rec.Ranges, RangeRecord{Name: r.Name, From: r.From, To: r.To})
	}
	return rec, nil
}

func (t *Track) encodeKey(key Keyframe) (KeyRecord, error) {
	components, err := valueToArray(t.dataType, key.Value)
	if err != nil {
		return KeyRecord{}, err
	}

	var slots []ValueSlot
	for _, c := range components {
		slots = append(slots, scalarSlot(c))
	}

	// Optional slots are positional: pad missing earlier slots with null
	// so a later slot keeps its place.
	written := 0
	appendAt := func(pos int, slot ValueSlot) {
		for written < pos {
			slots = append(slots, ValueSlot{Null: true})
			written++
		}
		slots = append(slots, slot)
		written++
	}

	if key.InTangent != nil {
		slot, err := t.encodeTangent(key.InTangent)
		if err != nil {
			return KeyRecord{}, err
		}
		appendAt(slotInTangent, slot)
	}
	if key.OutTangent != nil {
		slot, err := t.encodeTangent(key.OutTangent)
		if err != nil {
			return KeyRecord{}, err
		}
		appendAt(slotOutTangent, slot)
	}
	if key.Interpolation != InterpolationNone {
		appendAt(slotInterpolation, scalarSlot(float64(key.Interpolation)))
	}

	return KeyRecord{Frame: key.Frame, Values: slots}, nil
}

// encodeTangent flattens a tangent: floats stay scalar, composite types
// become nested arrays.
func (t *Track) encodeTangent(v Value) (ValueSlot, error) {
	flat, err := valueToArray(t.dataType, v)
	if err != nil {
		return ValueSlot{}, err
	}
	if t.dataType == TypeFloat {
		return scalarSlot(flat[0]), nil
	}
	return arraySlot(flat), nil
}

// TrackFromRecord rebuilds a track from its serialized form, preserving
// exact key order.
func TrackFromRecord(rec *TrackRecord) (*Track, error) {
	t, err := NewTrack(rec.Name, rec.Property, rec.FramePerSecond, DataType(rec.DataType), LoopMode(rec.LoopBehavior))
	if err != nil {
		return nil, err
	}
	t.EnableBlending = rec.EnableBlending
	t.BlendingSpeed = rec.BlendingSpeed

	for i, kr := range rec.Keys {
		key, err := t.decodeKey(kr)
		if err != nil {
			return nil, fmt.Errorf("anim: parse track %s key %d: %w", rec.Name, i, err)
		}
		t.keys = append(t.keys, key)
	}

	for _, rr := range rec.Ranges {
		t.CreateRange(rr.Name, rr.From, rr.To)
	}
	return t, nil
}

func (t *Track) decodeKey(kr KeyRecord) (Keyframe, error) {
	n := t.dataType.componentCount()
	if len(kr.Values) < n {
		return Keyframe{}, fmt.Errorf("%s needs %d components, got %d slots", t.dataType, n, len(kr.Values))
	}

	components := make([]float64, n)
	for i := 0; i < n; i++ {
		slot := kr.Values[i]
		if slot.IsArray || slot.Null {
			return Keyframe{}, fmt.Errorf("component slot %d must be a number", i)
		}
		components[i] = slot.Scalar
	}
	value, err := valueFromArray(t.dataType, components)
	if err != nil {
		return Keyframe{}, err
	}

	key := Keyframe{Frame: kr.Frame, Value: value}
	optional := kr.Values[n:]

	if len(optional) > slotInTangent && !optional[slotInTangent].Null {
		tangent, err := t.decodeTangent(optional[slotInTangent])
		if err != nil {
			return Keyframe{}, fmt.Errorf("in tangent: %w", err)
		}
		key.InTangent = tangent
	}
	if len(optional) > slotOutTangent && !optional[slotOutTangent].Null {
		tangent, err := t.decodeTangent(optional[slotOutTangent])
		if err != nil {
			return Keyframe{}, fmt.Errorf("out tangent: %w", err)
		}
		key.OutTangent = tangent
	}
	if len(optional) > slotInterpolation && !optional[slotInterpolation].Null {
		slot := optional[slotInterpolation]
		if slot.IsArray {
			return Keyframe{}, fmt.Errorf("interpolation slot must be a number")
		}
		key.Interpolation = Interpolation(int(slot.Scalar))
	}
	return key, nil
}

func (t *Track) decodeTangent(slot ValueSlot) (Value, error) {
	if t.dataType == TypeFloat {
		if slot.IsArray {
			return nil, fmt.Errorf("float tangent must be a number")
		}
		return slot.Scalar, nil
	}
	if !slot.IsArray {
		return nil, fmt.Errorf("%s tangent must be a sequence", t.dataType)
	}
	return valueFromArray(t.dataType, slot.Array)
}

// Serialize renders the track as YAML.
func (t *Track) Serialize() ([]byte, error) {
	rec, err := t.ToRecord()
	if err != nil {
		return nil, fmt.Errorf("anim: serialize track %s: %w", t.Name, err)
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("anim: serialize track %s: %w", t.Name, err)
	}
	return data, nil
}

// Parse rebuilds a track from YAML produced by Serialize (or authored by
// hand in the same layout).
func Parse(data []byte) (*Track, error) {
	var rec TrackRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("anim: unmarshal track: %w", err)
	}
	return TrackFromRecord(&rec)
}
