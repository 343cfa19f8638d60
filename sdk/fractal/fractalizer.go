// Package fractal is the public surface of the fractal melody
// generator. A Fractalizer replaces every note of a monophonic melody
// with a pitch- and tempo-scaled copy of the entire melody, so the
// flattened result repeats its own large-scale shape at every level of
// recursion implied by the source notes.
package fractal

import (
	"fmt"

	core "github.com/jameswenzel/Fractal-Midi/internal/fractal"
	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// DefaultPhraseLength is the number of melody repetitions packed into
// each quarter note of the source when no phrase length is configured.
const DefaultPhraseLength = 16

// Fractalizer applies the fractal transformation to tracks and
// patterns. It is immutable after construction and safe for concurrent
// use.
type Fractalizer struct {
	opts contracts.Options
}

// New creates a Fractalizer with the specified options, applying
// defaults for anything not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions to
// customize the transformation.
//
// Returns:
//   - *Fractalizer: A ready-to-use Fractalizer.
//   - error: An error if an option carries an unusable value.
func New(opts ...contracts.Option) (*Fractalizer, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Fractalizer{opts: options}, nil
}

// Track returns the fractal rendition of one melody track.
//
// resolution is the pattern's ticks per quarter note; track is a
// monophonic melody in either tick mode. Fails with ErrEmptyMelody when
// the track plays no note, and with ErrPolyphony in strict mode when
// notes overlap.
func (f *Fractalizer) Track(resolution uint16, track contracts.Track) (contracts.Track, error) {
	return core.FractalizeTrack(resolution, track, core.Config{
		PhraseLength: f.opts.PhraseLength,
		Workers:      f.opts.Workers,
		Strict:       f.opts.StrictMonophony,
		Log:          f.opts.Logger,
	})
}

// Pattern fractalizes the melody track at trackIndex and returns a new
// pattern containing exactly one track, the fractal result, at the
// same resolution and format.
func (f *Fractalizer) Pattern(p contracts.Pattern, trackIndex int) (contracts.Pattern, error) {
	if trackIndex < 0 || trackIndex >= len(p.Tracks) {
		return contracts.Pattern{}, fmt.Errorf("%w: index %d of %d tracks", contracts.ErrNoSuchTrack, trackIndex, len(p.Tracks))
	}
	out, err := f.Track(p.Resolution, p.Tracks[trackIndex])
	if err != nil {
		return contracts.Pattern{}, err
	}
	return contracts.Pattern{
		Resolution: p.Resolution,
		Format:     p.Format,
		Tracks:     []contracts.Track{out},
	}, nil
}
