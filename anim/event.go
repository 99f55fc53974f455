package anim

import "sort"

// Event is a fire-once marker at a frame, consumed by an external
// player. The payload is opaque to the evaluator. OnlyOnce asks the
// player not to re-fire the event on later loops.
type Event struct {
	Frame    float64
	Payload  any
	OnlyOnce bool

	// Action is an optional callback a player invokes when it crosses
	// the event's frame.
	Action func(payload any)
}

// AddEvent inserts an event, keeping the event list sorted ascending by
// frame. Events sharing a frame keep their insertion order.
func (t *Track) AddEvent(e Event) {
	t.events = append(t.events, e)
	sort.SliceStable(t.events, func(i, j int) bool {
		return t.events[i].Frame < t.events[j].Frame
	})
}

// RemoveEvents removes every event at exactly the given frame.
func (t *Track) RemoveEvents(frame float64) {
	filtered := t.events[:0]
	for _, e := range t.events {
		if e.Frame != frame {
			filtered = append(filtered, e)
		}
	}
	t.events = filtered
}

// Events returns the track's events in frame order.
func (t *Track) Events() []Event {
	return t.events
}
