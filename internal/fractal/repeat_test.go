package fractal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

func oneNote() contracts.Track {
	return contracts.NewTrack(true,
		contracts.Event{Kind: contracts.NoteOn, Pitch: 60, Velocity: 100},
		contracts.Event{Kind: contracts.NoteOff, Tick: 96, Pitch: 60},
	)
}

func TestRepeatWholeCopies(t *testing.T) {
	tr := oneNote() // length 96
	out := Repeat(tr, 3)

	require.Equal(t, 6, out.Len())
	assert.InDelta(t, 3*tr.Length(), out.Length(), 1e-9)
	assert.True(t, out.Relative())

	abs := out.Abs()
	src := tr.Abs()
	for c := 0; c < 3; c++ {
		for i := 0; i < src.Len(); i++ {
			got := abs.At(c*src.Len() + i)
			want := src.At(i)
			assert.InDelta(t, want.Tick+float64(c)*96, got.Tick, 1e-9)
			assert.Equal(t, want.Pitch, got.Pitch)
			assert.Equal(t, want.Kind, got.Kind)
		}
	}
}

func TestRepeatZeroYieldsEmptyTrack(t *testing.T) {
	out := Repeat(oneNote(), 0)
	assert.Zero(t, out.Len())
	assert.Zero(t, out.Length())
}

func TestRepeatFractionalTrimsPartialCopy(t *testing.T) {
	tr := oneNote()
	out := Repeat(tr, 2.5)

	// Two full copies plus the NoteOn of the third; its NoteOff at
	// position 96 of the copy falls past the 48-tick cutoff.
	require.Equal(t, 5, out.Len())
	assert.Equal(t, contracts.NoteOn, out.At(4).Kind)
	assert.InDelta(t, 192, out.Abs().At(4).Tick, 1e-9)

	// Length is exact despite the trim: the remainder is tail silence.
	assert.InDelta(t, 2.5*96, out.Length(), 1e-9)
	assert.InDelta(t, 48, out.Tail(), 1e-9)
}

func TestRepeatCutoffExcludesEventAtBoundary(t *testing.T) {
	tr := oneNote()
	// 1.5 repeats: cutoff is 48 into a copy whose events sit at 0 and
	// 96, so only the NoteOn makes it.
	out := Repeat(tr, 1.5)
	require.Equal(t, 3, out.Len())
	assert.InDelta(t, 144, out.Length(), 1e-9)

	// A cutoff exactly on an event's position excludes the event.
	out = Repeat(tr, 2)
	require.Equal(t, 4, out.Len())
	out = Repeat(tr, 2+1e-9)
	require.Equal(t, 5, out.Len(), "the copy-start NoteOn at position 0 enters immediately")
}
