package fractal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

func melodyPattern() contracts.Pattern {
	return contracts.Pattern{
		Resolution: 96,
		Format:     1,
		Tracks: []contracts.Track{contracts.NewTrack(true,
			contracts.Event{Kind: contracts.NoteOn, Pitch: 60, Velocity: 100},
			contracts.Event{Kind: contracts.NoteOff, Tick: 96, Pitch: 60},
			contracts.Event{Kind: contracts.NoteOn, Pitch: 72, Velocity: 100},
			contracts.Event{Kind: contracts.NoteOff, Tick: 96, Pitch: 72},
			contracts.Event{Kind: contracts.EndOfTrack},
		)},
	}
}

func TestDefaultOptions(t *testing.T) {
	opts, err := applyDefaultOptions()
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultPhraseLength), opts.PhraseLength)
	assert.Equal(t, 1, opts.Workers)
	assert.False(t, opts.StrictMonophony)
	assert.NotNil(t, opts.Logger)
}

func TestOptionValidation(t *testing.T) {
	_, err := New(contracts.WithPhraseLength(-1))
	require.ErrorIs(t, err, ErrPhraseLength)

	_, err = New(contracts.WithWorkers(-2))
	require.ErrorIs(t, err, ErrWorkers)
}

func TestPatternProducesSingleTrackAtSameResolution(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	out, err := f.Pattern(melodyPattern(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(96), out.Resolution)
	assert.Equal(t, uint16(1), out.Format)
	require.Len(t, out.Tracks, 1)
	assert.InDelta(t, 192, out.Tracks[0].Length(), 1e-6)
}

func TestPatternRejectsBadTrackIndex(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	_, err = f.Pattern(melodyPattern(), 3)
	require.ErrorIs(t, err, contracts.ErrNoSuchTrack)
	_, err = f.Pattern(melodyPattern(), -1)
	require.ErrorIs(t, err, contracts.ErrNoSuchTrack)
}

func TestTrackPropagatesEmptyMelody(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	_, err = f.Track(96, contracts.NewTrack(true,
		contracts.Event{Kind: contracts.EndOfTrack},
	))
	require.ErrorIs(t, err, contracts.ErrEmptyMelody)
}

func TestPhraseLengthControlsDensity(t *testing.T) {
	dense, err := New(contracts.WithPhraseLength(16))
	require.NoError(t, err)
	sparse, err := New(contracts.WithPhraseLength(4))
	require.NoError(t, err)

	p := melodyPattern()
	a, err := dense.Pattern(p, 0)
	require.NoError(t, err)
	b, err := sparse.Pattern(p, 0)
	require.NoError(t, err)

	// Fewer repetitions per quarter note means fewer events, but the
	// final normalization keeps the overall tick span the same.
	assert.Greater(t, a.Tracks[0].Len(), b.Tracks[0].Len())
	assert.InDelta(t, a.Tracks[0].Length(), b.Tracks[0].Length(), 1e-6)
}
