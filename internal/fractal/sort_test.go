package fractal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// A legato melody where each NoteOn is written before the previous
// note's off event at the same instant.
func legato() contracts.Track {
	return contracts.NewTrack(false,
		contracts.Event{Kind: contracts.NoteOn, Tick: 0, Pitch: 60, Velocity: 100},
		contracts.Event{Kind: contracts.NoteOn, Tick: 96, Pitch: 62, Velocity: 100},
		contracts.Event{Kind: contracts.NoteOff, Tick: 96, Pitch: 60},
		contracts.Event{Kind: contracts.NoteOn, Tick: 192, Pitch: 64, Velocity: 100},
		contracts.Event{Kind: contracts.NoteOff, Tick: 192, Pitch: 62},
		contracts.Event{Kind: contracts.NoteOff, Tick: 288, Pitch: 64},
	)
}

func TestSortTicksClosesBeforeOpening(t *testing.T) {
	out := SortTicks(legato()).Abs()

	prevTick := -1.0
	for i := 0; i < out.Len(); i++ {
		ev := out.At(i)
		require.GreaterOrEqual(t, ev.Tick, prevTick, "ticks stay ordered")
		prevTick = ev.Tick
		if ev.Kind != contracts.NoteOn || i == 0 {
			continue
		}
		// Nothing after a NoteOn at the same tick may be a non-NoteOn.
		for j := i + 1; j < out.Len() && out.At(j).Tick == ev.Tick; j++ {
			assert.Equal(t, contracts.NoteOn, out.At(j).Kind,
				"all NoteOffs at a shared tick precede all NoteOns")
		}
	}
}

func TestSortTicksIdempotent(t *testing.T) {
	once := SortTicks(legato())
	twice := SortTicks(once)
	require.Equal(t, once.Len(), twice.Len())
	for i := 0; i < once.Len(); i++ {
		assert.Equal(t, once.At(i), twice.At(i))
	}
}

func TestSortTicksReturnsRelative(t *testing.T) {
	assert.True(t, SortTicks(legato()).Relative())
}
