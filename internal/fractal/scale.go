package fractal

import "github.com/jameswenzel/Fractal-Midi/sdk/contracts"

// Scale divides every tick value in the track by ratio, in whichever
// mode the track is currently in; Length divides accordingly. Scaling
// is purely a time-axis operation and never touches pitch or velocity.
// A ratio above 1 compresses the track, below 1 expands it.
func Scale(t contracts.Track, ratio float64) contracts.Track {
	events := t.Events()
	for i := range events {
		events[i].Tick /= ratio
	}
	return contracts.NewTrack(t.Relative(), events...).WithTail(t.Tail() / ratio)
}
