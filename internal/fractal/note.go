package fractal

import "github.com/jameswenzel/Fractal-Midi/sdk/contracts"

// FractalizeNote builds the fractal block for a single note: the whole
// melody compressed or expanded in time by the note's harmonic ratio to
// the root, then repeated enough times to fill the note's duration in
// phrase units.
//
// The number of repetitions is phraseLen * (duration / resolution) *
// ratio, so higher notes repeat a shorter copy proportionally more
// often and every block for a given duration spans the same number of
// ticks.
// The block's first event tick is replaced by the note's onset gap
// mapped into phrase units, which positions the block correctly when
// all blocks are later concatenated in note order.
//
// body is the headerless, terminator-stripped melody in relative mode;
// resolution is the ticks per quarter note of the original pattern.
func FractalizeNote(resolution, phraseLen float64, body contracts.Track, root uint8, note contracts.NoteEvent) contracts.Track {
	ratio := Ratio(root, note.Pitch)
	scaled := Scale(body, ratio)
	quarterNotes := note.Duration / resolution
	repetitions := phraseLen * quarterNotes * ratio
	block := Repeat(scaled, repetitions)

	if block.Len() == 0 {
		return block
	}
	events := block.Events()
	events[0].Tick = note.Onset / resolution * body.Length() * phraseLen
	return contracts.NewTrack(block.Relative(), events...).WithTail(block.Tail())
}
