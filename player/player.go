// Package player drives track playback: it owns the mapping from
// elapsed time to frames, the per-playback evaluation cursor, loop
// bookkeeping (repeat counts, relative offsets, constant-mode terminal
// values), and event firing. The evaluator itself stays playhead-free.
package player

import (
	"fmt"
	"math"

	"github.com/milk9111/keyframe/anim"
)

// Playback is one running instance of a track. Two playbacks of the
// same track are fully independent: each owns its cursor and clock.
type Playback struct {
	track      *anim.Track
	cursor     *anim.Cursor
	from, to   float64
	speedRatio float64

	elapsed   float64
	prevFrame float64
	started   bool
	finished  bool
	current   anim.Value

	fired map[int]bool
}

// New creates a playback over [from, to]. Passing from >= to plays the
// track's whole key span. Speed ratio 1 plays at the track's declared
// frame rate.
func New(track *anim.Track, from, to, speedRatio float64) (*Playback, error) {
	if track == nil || len(track.Keys()) == 0 {
		return nil, fmt.Errorf("player: playback needs a track with keys")
	}
	keys := track.Keys()
	if from >= to {
		from = keys[0].Frame
		to = keys[len(keys)-1].Frame
	}
	if speedRatio == 0 {
		speedRatio = 1
	}

	p := &Playback{
		track:      track,
		cursor:     anim.NewCursor(track.LoopMode),
		from:       from,
		to:         to,
		speedRatio: speedRatio,
		prevFrame:  from,
		fired:      make(map[int]bool),
	}

	// Loop bookkeeping values are computed up front with neutral cursors
	// so the evaluator never recurses into loop handling.
	fromValue, err := track.Interpolate(from, anim.NewCursor(anim.LoopCycle))
	if err != nil {
		return nil, err
	}
	toValue, err := track.Interpolate(to, anim.NewCursor(anim.LoopCycle))
	if err != nil {
		return nil, err
	}
	p.cursor.HighLimitValue = toValue
	if track.LoopMode == anim.LoopRelative {
		offset, err := anim.SubtractValue(track.DataType(), toValue, fromValue)
		if err != nil {
			return nil, err
		}
		p.cursor.OffsetValue = offset
	}
	return p, nil
}

// Frame returns the playback's current frame position.
func (p *Playback) Frame() float64 {
	return p.prevFrame
}

// Value returns the most recently computed value.
func (p *Playback) Value() anim.Value {
	return p.current
}

// Finished reports whether a constant-mode playback has reached its
// terminal value. Looping modes never finish.
func (p *Playback) Finished() bool {
	return p.finished
}

// Reset rewinds the playback to its start, clearing loop state and
// letting once-only events fire again.
func (p *Playback) Reset() {
	p.elapsed = 0
	p.prevFrame = p.from
	p.started = false
	p.finished = false
	p.cursor.Key = 0
	p.cursor.RepeatCount = 0
	p.fired = make(map[int]bool)
}

// Advance moves the playback forward by deltaSeconds and returns the
// track value at the new position. The bool result reports whether the
// playback is still running.
func (p *Playback) Advance(deltaSeconds float64) (anim.Value, bool, error) {
	if p.finished {
		return p.current, false, nil
	}

	p.elapsed += deltaSeconds * p.speedRatio
	span := p.to - p.from
	progress := p.elapsed * p.track.FramePerSecond

	var frame float64
	if span <= 0 {
		// Degenerate window (single key or from == to): the frame pins to
		// the start instead of dividing progress by a zero span.
		frame = p.from
		if p.track.LoopMode == anim.LoopConstant {
			p.cursor.RepeatCount = 1
			p.finished = true
		}
		p.fireEvents(frame)

		value, err := p.track.Interpolate(frame, p.cursor)
		if err != nil {
			return nil, false, err
		}
		p.current = value
		p.prevFrame = frame
		p.started = true
		return value, !p.finished, nil
	}

	switch p.track.LoopMode {
	case anim.LoopConstant:
		if progress >= span {
			// Past the end: pin to the terminal value. The cursor's
			// repeat count tells the evaluator to short-circuit from
			// here on.
			p.cursor.RepeatCount = 1
			p.finished = true
			frame = p.to
		} else {
			frame = p.from + progress
		}

	case anim.LoopYoyo:
		repeat := int(progress / span)
		frame = p.from + math.Mod(progress, span)
		if repeat%2 == 1 {
			frame = p.to - (frame - p.from)
		}
		p.cursor.RepeatCount = repeat

	default: // LoopCycle, LoopRelative
		repeat := int(progress / span)
		frame = p.from + math.Mod(progress, span)
		p.cursor.RepeatCount = repeat
	}

	p.fireEvents(frame)

	value, err := p.track.Interpolate(frame, p.cursor)
	if err != nil {
		return nil, false, err
	}
	p.current = value
	p.prevFrame = frame
	p.started = true
	return value, !p.finished, nil
}

// fireEvents fires every event whose frame was crossed since the last
// advance, handling loop wraparound. Once-only events fire a single
// time per playback until Reset.
func (p *Playback) fireEvents(frame float64) {
	events := p.track.Events()
	if len(events) == 0 {
		return
	}

	crossed := func(eventFrame float64) bool {
		if !p.started {
			return eventFrame >= p.prevFrame && eventFrame <= frame
		}
		if frame >= p.prevFrame {
			return eventFrame > p.prevFrame && eventFrame <= frame
		}
		// Wrapped (or yoyo reversed): fire the tail and head segments.
		return eventFrame > p.prevFrame || eventFrame <= frame
	}

	for i, e := range events {
		if e.OnlyOnce && p.fired[i] {
			continue
		}
		if !crossed(e.Frame) {
			continue
		}
		p.fired[i] = true
		if e.Action != nil {
			e.Action(e.Payload)
		}
	}
}
