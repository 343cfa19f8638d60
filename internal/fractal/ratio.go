// Package fractal implements the fractal melody transformation: every
// note of a monophonic melody is replaced by a pitch- and tempo-scaled
// copy of the entire melody, scaled by the equal-tempered ratio between
// that note and the melody's root.
package fractal

import (
	"math"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// twelveRootTwo is the equal-tempered semitone step, 2^(1/12).
var twelveRootTwo = math.Pow(2, 1.0/12)

// Ratio returns the equal-tempered frequency multiplier between pitch
// and root. One octave up doubles, one octave down halves, and a pitch
// equal to the root yields exactly 1.
func Ratio(root, pitch uint8) float64 {
	return math.Pow(twelveRootTwo, float64(pitch)-float64(root))
}

// Root returns the pitch of the first NoteOn event in track order. It
// fails with ErrEmptyMelody if the track plays no note at all.
func Root(t contracts.Track) (uint8, error) {
	for i := 0; i < t.Len(); i++ {
		if ev := t.At(i); ev.Kind == contracts.NoteOn {
			return ev.Pitch, nil
		}
	}
	return 0, contracts.ErrEmptyMelody
}
