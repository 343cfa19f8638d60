package fractal

import (
	"fmt"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// Notes extracts the played notes of a sorted, relative-mode track in
// track order. For each NoteOn, the duration is the delta tick stored
// on the immediately following event, and the onset is the NoteOn's own
// delta tick. Reading the duration positionally is what requires the
// melody to be monophonic and the track to have gone through SortTicks.
//
// In strict mode, a NoteOn followed by another NoteOn (an overlapping
// open note) or a NoteOn with no following event fails with
// ErrPolyphony. Otherwise such notes are silently skipped.
func Notes(t contracts.Track, strict bool) ([]contracts.NoteEvent, error) {
	var notes []contracts.NoteEvent
	for i := 0; i < t.Len(); i++ {
		ev := t.At(i)
		if ev.Kind != contracts.NoteOn {
			continue
		}
		if i+1 == t.Len() {
			if strict {
				return nil, fmt.Errorf("%w: unterminated note %d", contracts.ErrPolyphony, ev.Pitch)
			}
			continue
		}
		next := t.At(i + 1)
		if strict && next.Kind == contracts.NoteOn {
			return nil, fmt.Errorf("%w: note %d still open when note %d starts", contracts.ErrPolyphony, ev.Pitch, next.Pitch)
		}
		notes = append(notes, contracts.NoteEvent{
			Pitch:    ev.Pitch,
			Duration: next.Tick,
			Onset:    ev.Tick,
		})
	}
	return notes, nil
}
