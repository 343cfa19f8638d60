package fractal

import (
	"math"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// Repeat concatenates a track with itself n times, where n may be
// fractional. Whole copies are laid back to back, the i-th rebased by
// i*Length(t); a fractional remainder f appends the prefix of events
// whose absolute position is below f*Length(t), rebased past the whole
// copies. The result's Length is exactly n*Length(t): the trailing
// silence after a trimmed partial copy lives in the track tail.
// Repeat(t, 0) yields an empty track.
func Repeat(t contracts.Track, n float64) contracts.Track {
	if n < 0 {
		n = 0
	}
	length := t.Length()
	src := t.Abs().Events()
	k := int(math.Floor(n))
	frac := n - float64(k)

	events := make([]contracts.Event, 0, len(src)*(k+1))
	for i := 0; i < k; i++ {
		offset := float64(i) * length
		for _, ev := range src {
			events = append(events, ev.WithTick(ev.Tick+offset))
		}
	}
	if frac > 0 {
		cutoff := frac * length
		offset := float64(k) * length
		for _, ev := range src {
			if ev.Tick >= cutoff {
				break
			}
			events = append(events, ev.WithTick(ev.Tick+offset))
		}
	}

	total := n * length
	tail := total
	if len(events) > 0 {
		tail = total - events[len(events)-1].Tick
	}
	out := contracts.NewTrack(false, events...).WithTail(tail)
	if t.Relative() {
		out = out.Rel()
	}
	return out
}
