package fractal

import "github.com/jameswenzel/Fractal-Midi/sdk/contracts"

// Normalize rewrites NoteOn events with velocity zero into explicit
// NoteOff events at the same tick and pitch. Running status encoders
// commonly emit zero-velocity NoteOns as note ends; after this pass the
// rest of the pipeline can assume the canonical event vocabulary.
// Event count and ordering are preserved.
func Normalize(t contracts.Track) contracts.Track {
	events := t.Events()
	for i, ev := range events {
		if ev.Kind == contracts.NoteOn && ev.Velocity == 0 {
			ev.Kind = contracts.NoteOff
			events[i] = ev
		}
	}
	return contracts.NewTrack(t.Relative(), events...).WithTail(t.Tail())
}
