package fractal

import (
	"sort"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// SortTicks reorders same-tick events so that ending notes are
// processed before starting notes: at any shared instant, every event
// that is not a NoteOn precedes every NoteOn. A NoteOn written before
// the previous note's off event at the same tick would otherwise read
// as an overlap. The sort is stable and idempotent; the result is in
// relative mode.
func SortTicks(t contracts.Track) contracts.Track {
	events := t.Abs().Events()
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Tick != events[j].Tick {
			return events[i].Tick < events[j].Tick
		}
		return events[i].Kind != contracts.NoteOn && events[j].Kind == contracts.NoteOn
	})
	return contracts.NewTrack(false, events...).WithTail(t.Tail()).Rel()
}
