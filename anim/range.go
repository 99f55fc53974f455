package anim

// Range is a named frame interval over a track's keys.
type Range struct {
	Name string
	From float64
	To   float64
}

// CreateRange registers a named range. If the name already exists the
// call is a no-op — the first writer wins, so re-parsing the same track
// cannot clobber an existing range.
func (t *Track) CreateRange(name string, from, to float64) {
	if t.ranges == nil {
		t.ranges = make(map[string]*Range)
	}
	if _, ok := t.ranges[name]; ok {
		return
	}
	t.ranges[name] = &Range{Name: name, From: from, To: to}
}

// Range returns the named range, or nil if it was never created or has
// been deleted.
func (t *Track) Range(name string) *Range {
	return t.ranges[name]
}

// DeleteRange clears the named range. When deleteFrames is true, every
// key whose frame lies within [from, to] inclusive is removed. The map
// entry is tombstoned rather than removed so callers can still observe
// that the name previously existed. Unknown names are a no-op.
func (t *Track) DeleteRange(name string, deleteFrames bool) {
	r, ok := t.ranges[name]
	if !ok || r == nil {
		return
	}
	if deleteFrames {
		// High-to-low so removal indices stay valid.
		for i := len(t.keys) - 1; i >= 0; i-- {
			if t.keys[i].Frame >= r.From && t.keys[i].Frame <= r.To {
				t.keys = append(t.keys[:i], t.keys[i+1:]...)
			}
		}
	}
	t.ranges[name] = nil
}

// RangeNames returns the names of all live (non-deleted) ranges.
func (t *Track) RangeNames() []string {
	names := make([]string, 0, len(t.ranges))
	for name, r := range t.ranges {
		if r != nil {
			names = append(names, name)
		}
	}
	return names
}
