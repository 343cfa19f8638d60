package contracts

import "errors"

// Error definitions for melody analysis and pattern handling issues.
var (
	// ErrEmptyMelody is returned when a track contains no NoteOn event,
	// so no root pitch can be determined.
	ErrEmptyMelody = errors.New("empty melody: track contains no NoteOn event")
	// ErrPolyphony is returned in strict mode when two notes overlap;
	// the fractal transformation is only defined for monophonic input.
	ErrPolyphony = errors.New("polyphonic input: overlapping notes")
	// ErrNoSuchTrack is returned when a pattern does not contain the
	// requested track index.
	ErrNoSuchTrack = errors.New("pattern has no track at the given index")
)
