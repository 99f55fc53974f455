package anim

// Cursor is the caller-owned scratch state for one playback of a track.
// Each independent playback must supply its own cursor; the track never
// holds a playhead of its own, so concurrent evaluations of one track
// cannot interfere as long as their cursors are distinct.
//
// Key caches the last resolved left-key index. The evaluator advances or
// retreats it incrementally instead of searching from scratch, which is
// O(1) amortized for monotonic-ish frames and merely slower, never
// wrong, when the caller jumps backward.
//
// RepeatCount, OffsetValue, and HighLimitValue are written by the player
// when a loop boundary is crossed; the evaluator only reads them.
type Cursor struct {
	Key         int
	RepeatCount int
	LoopMode    LoopMode

	// WorkValue receives the most recent matrix interpolation result.
	WorkValue Value

	// OffsetValue is the per-repeat delta applied under LoopRelative.
	OffsetValue Value

	// HighLimitValue is the terminal value returned when a LoopConstant
	// playback has already finished (RepeatCount > 0).
	HighLimitValue Value
}

// NewCursor returns a cursor starting at the first key with the given
// loop mode.
func NewCursor(mode LoopMode) *Cursor {
	return &Cursor{LoopMode: mode}
}
