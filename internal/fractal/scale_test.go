package fractal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

func melody() contracts.Track {
	return contracts.NewTrack(true,
		contracts.Event{Kind: contracts.NoteOn, Pitch: 60, Velocity: 100},
		contracts.Event{Kind: contracts.NoteOff, Tick: 96, Pitch: 60},
		contracts.Event{Kind: contracts.NoteOn, Tick: 24, Pitch: 64, Velocity: 80},
		contracts.Event{Kind: contracts.NoteOff, Tick: 72, Pitch: 64},
	)
}

func TestScaleDividesTicksAndLength(t *testing.T) {
	tr := melody().WithTail(8)
	out := Scale(tr, 2)

	require.Equal(t, tr.Len(), out.Len())
	assert.InDelta(t, tr.Length()/2, out.Length(), 1e-9)
	for i := 0; i < tr.Len(); i++ {
		assert.InDelta(t, tr.At(i).Tick/2, out.At(i).Tick, 1e-9)
	}
}

func TestScaleNeverTouchesPitchOrVelocity(t *testing.T) {
	tr := melody()
	out := Scale(tr, 1.25992)
	for i := 0; i < tr.Len(); i++ {
		assert.Equal(t, tr.At(i).Pitch, out.At(i).Pitch)
		assert.Equal(t, tr.At(i).Velocity, out.At(i).Velocity)
		assert.Equal(t, tr.At(i).Kind, out.At(i).Kind)
	}
}

func TestScaleRoundTrip(t *testing.T) {
	tr := melody()
	for _, ratio := range []float64{0.25, 0.5, 1, 1.4983, 2, 7.3} {
		back := Scale(Scale(tr, ratio), 1/ratio)
		for i := 0; i < tr.Len(); i++ {
			assert.InDelta(t, tr.At(i).Tick, back.At(i).Tick, 1e-9, "ratio %v", ratio)
		}
	}
}
