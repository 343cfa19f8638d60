package contracts

// Track is an immutable ordered sequence of events plus a tick-mode
// flag. Every transformation returns a new Track; no operation mutates
// a Track in place, so tracks can be shared freely across goroutines.
//
// A track additionally carries a tail: silent time after its last event.
// The tail keeps Length exact for tracks whose musical extent runs past
// the final event, which is what lets a fractionally repeated track have
// length exactly n times the original and lets concatenation rebase by
// exact cumulative length.
type Track struct {
	events   []Event
	relative bool
	tail     float64
}

// NewTrack builds a track over the given events. The events slice is
// copied; callers keep ownership of theirs.
func NewTrack(relative bool, events ...Event) Track {
	evs := make([]Event, len(events))
	copy(evs, events)
	return Track{events: evs, relative: relative}
}

// Len returns the number of events in the track.
func (t Track) Len() int {
	return len(t.events)
}

// At returns the event at index i.
func (t Track) At(i int) Event {
	return t.events[i]
}

// Events returns a copy of the track's events in order.
func (t Track) Events() []Event {
	evs := make([]Event, len(t.events))
	copy(evs, t.events)
	return evs
}

// Relative reports whether ticks are deltas since the previous event
// (true) or offsets since track start (false).
func (t Track) Relative() bool {
	return t.relative
}

// Tail returns the silent time after the track's last event.
func (t Track) Tail() float64 {
	return t.tail
}

// WithTail returns a copy of the track with its tail replaced.
func (t Track) WithTail(tail float64) Track {
	t.tail = tail
	return t
}

// Length returns the track's total extent in ticks: the span of its
// events plus the tail. Length is invariant under mode conversion.
func (t Track) Length() float64 {
	if t.relative {
		var sum float64
		for _, e := range t.events {
			sum += e.Tick
		}
		return sum + t.tail
	}
	if len(t.events) == 0 {
		return t.tail
	}
	return t.events[len(t.events)-1].Tick + t.tail
}

// Abs returns the track converted to absolute tick mode. Conversion is
// pure and reversible; Length is unchanged.
func (t Track) Abs() Track {
	if !t.relative {
		return t
	}
	evs := make([]Event, len(t.events))
	var pos float64
	for i, e := range t.events {
		pos += e.Tick
		evs[i] = e.WithTick(pos)
	}
	return Track{events: evs, relative: false, tail: t.tail}
}

// Rel returns the track converted to relative tick mode. Events must be
// in nondecreasing tick order, which every pipeline stage maintains.
func (t Track) Rel() Track {
	if t.relative {
		return t
	}
	evs := make([]Event, len(t.events))
	var prev float64
	for i, e := range t.events {
		evs[i] = e.WithTick(e.Tick - prev)
		prev = e.Tick
	}
	return Track{events: evs, relative: true, tail: t.tail}
}

// Slice returns the sub-track of events in [i, j), in the same mode,
// with a zero tail.
func (t Track) Slice(i, j int) Track {
	evs := make([]Event, j-i)
	copy(evs, t.events[i:j])
	return Track{events: evs, relative: t.relative}
}

// Append concatenates other onto t, rebasing other's events by t's full
// Length so the result occupies exactly Length(t)+Length(other) ticks.
// If the modes differ, other is converted to t's mode first.
func (t Track) Append(other Track) Track {
	if other.relative != t.relative {
		if t.relative {
			other = other.Rel()
		} else {
			other = other.Abs()
		}
	}
	evs := make([]Event, 0, len(t.events)+len(other.events))
	evs = append(evs, t.events...)
	if len(other.events) == 0 {
		return Track{events: evs, relative: t.relative, tail: t.tail + other.tail}
	}
	if t.relative {
		// The gap into the first appended event absorbs t's tail.
		for i, e := range other.events {
			if i == 0 {
				e.Tick += t.tail
			}
			evs = append(evs, e)
		}
	} else {
		offset := t.Length()
		for _, e := range other.events {
			evs = append(evs, e.WithTick(e.Tick+offset))
		}
	}
	return Track{events: evs, relative: t.relative, tail: other.tail}
}

// Pattern mirrors a Standard MIDI File: a resolution in ticks per
// quarter note, a format tag, and an ordered list of tracks.
type Pattern struct {
	Resolution uint16
	Format     uint16
	Tracks     []Track
}
