package contracts

// EventKind discriminates the event variants a Track can hold.
type EventKind int

const (
	// NoteOn starts a note.
	NoteOn EventKind = iota
	// NoteOff ends a note.
	NoteOff
	// Meta is a metadata event (tempo, time signature, track name, ...).
	// Its payload is opaque to the fractal pipeline.
	Meta
	// EndOfTrack is the track terminator sentinel. At most one per track,
	// always last when present.
	EndOfTrack
	// Other is any remaining channel message (control change, program
	// change, pitch bend, ...). Passed through untouched.
	Other
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "NoteOn"
	case NoteOff:
		return "NoteOff"
	case Meta:
		return "Meta"
	case EndOfTrack:
		return "EndOfTrack"
	default:
		return "Other"
	}
}

// Event is a single timed MIDI event.
//
// Tick is a non-negative time offset whose meaning depends on the owning
// track's mode: a delta since the previous event (relative mode) or an
// offset since track start (absolute mode). Ticks stay real-valued
// through the pipeline; quantization to integer MIDI ticks happens only
// when a pattern is written out.
type Event struct {
	Kind     EventKind
	Tick     float64
	Channel  uint8 // MIDI channel (0-15), note events only
	Pitch    uint8 // MIDI note number (0-127), note events only
	Velocity uint8 // Note velocity (0-127), note events only
	// Data holds the raw encoded message for Meta and Other events so
	// they survive a read/write round trip byte for byte.
	Data []byte
}

// IsNote reports whether the event is a NoteOn or NoteOff.
func (e Event) IsNote() bool {
	return e.Kind == NoteOn || e.Kind == NoteOff
}

// WithTick returns a copy of the event with its tick replaced.
func (e Event) WithTick(tick float64) Event {
	e.Tick = tick
	return e
}

// NoteEvent describes one played note as derived by the note sequencer:
// its pitch, its duration in ticks, and the delta tick that preceded its
// NoteOn event in the source track.
type NoteEvent struct {
	Pitch    uint8
	Duration float64
	Onset    float64
}
