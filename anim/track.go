package anim

import (
	"strings"
)

// EasingFunction remaps the normalized interpolation gradient before the
// per-type interpolation runs. A nil hook means identity.
type EasingFunction interface {
	Ease(gradient float64) float64
}

// Track is a named, typed sequence of keyframes plus the metadata an
// external binder and player need: a target property path, frame rate,
// default loop mode, blending hints, named ranges, and frame events.
//
// A track is read-mostly shared: many playbacks may evaluate it at once
// (each with a private Cursor), but mutation of keys, ranges, or events
// must not overlap any in-flight evaluation. The track itself holds no
// locks.
type Track struct {
	Name           string
	TargetProperty string
	FramePerSecond float64
	LoopMode       LoopMode

	// EnableBlending and BlendingSpeed are hints for an external blend
	// layer. The evaluator does not interpret them.
	EnableBlending bool
	BlendingSpeed  float64

	// AllowMatricesInterpolation opts matrix tracks into interpolating at
	// all; naive blending of matrices is usually wrong, so the default is
	// to return the segment's start value verbatim.
	// AllowMatrixDecomposeForInterpolation picks decompose-based blending
	// over raw element lerp when interpolation is allowed.
	AllowMatricesInterpolation           bool
	AllowMatrixDecomposeForInterpolation bool

	dataType           DataType
	targetPropertyPath []string
	keys               []Keyframe
	ranges             map[string]*Range
	events             []Event
	easing             EasingFunction
}

// NewTrack creates a track with its data type fixed for its whole life.
// The target property is a dot-separated path kept as metadata for the
// external binder.
func NewTrack(name, targetProperty string, framePerSecond float64, dataType DataType, loopMode LoopMode) (*Track, error) {
	if dataType.componentCount() < 0 {
		return nil, &ConfigurationError{Op: "new track", Reason: "unknown data type " + dataType.String()}
	}
	return &Track{
		Name:               name,
		TargetProperty:     targetProperty,
		targetPropertyPath: strings.Split(targetProperty, "."),
		FramePerSecond:     framePerSecond,
		dataType:           dataType,
		LoopMode:           loopMode,
		ranges:             make(map[string]*Range),
	}, nil
}

// DataType returns the track's declared value type.
func (t *Track) DataType() DataType {
	return t.dataType
}

// TargetPropertyPath returns the dot-split target property components.
func (t *Track) TargetPropertyPath() []string {
	return t.targetPropertyPath
}

// SetKeys replaces the track's keys with a copy of the given slice.
// Frames must be non-decreasing; the engine does not sort.
func (t *Track) SetKeys(keys []Keyframe) {
	t.keys = cloneKeys(keys)
}

// Keys returns the track's key slice. Callers must not mutate it while
// any playback is evaluating the track.
func (t *Track) Keys() []Keyframe {
	return t.keys
}

// HighestFrame returns the last key's frame, or 0 for an empty track.
func (t *Track) HighestFrame() float64 {
	if len(t.keys) == 0 {
		return 0
	}
	return t.keys[len(t.keys)-1].Frame
}

// SetEasingFunction installs the easing hook. A track holds at most one;
// the last one set wins. Passing nil restores identity easing.
func (t *Track) SetEasingFunction(f EasingFunction) {
	t.easing = f
}

// EasingFunction returns the installed easing hook, or nil.
func (t *Track) EasingFunction() EasingFunction {
	return t.easing
}

// Evaluate interpolates the track at the given frame with a throwaway
// cursor in the track's default loop mode.
func (t *Track) Evaluate(frame float64) (Value, error) {
	return t.Interpolate(frame, NewCursor(t.LoopMode))
}

// Clone returns a fully independent copy: keys and ranges are deep
// copied, the easing hook is shared by reference.
func (t *Track) Clone() *Track {
	out := &Track{
		Name:           t.Name,
		TargetProperty: t.TargetProperty,
		FramePerSecond: t.FramePerSecond,
		LoopMode:       t.LoopMode,
		EnableBlending: t.EnableBlending,
		BlendingSpeed:  t.BlendingSpeed,

		AllowMatricesInterpolation:           t.AllowMatricesInterpolation,
		AllowMatrixDecomposeForInterpolation: t.AllowMatrixDecomposeForInterpolation,

		dataType: t.dataType,
		easing:   t.easing,
	}
	out.targetPropertyPath = append([]string(nil), t.targetPropertyPath...)
	out.keys = cloneKeys(t.keys)
	out.ranges = make(map[string]*Range, len(t.ranges))
	for name, r := range t.ranges {
		if r == nil {
			out.ranges[name] = nil
			continue
		}
		cloned := *r
		out.ranges[name] = &cloned
	}
	out.events = append([]Event(nil), t.events...)
	return out
}
