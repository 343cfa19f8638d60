package midifile

import (
	"fmt"
	"io"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// Writer encodes patterns as Standard MIDI Files.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() Writer {
	return Writer{}
}

// WritePattern encodes the pattern at its resolution. Real-valued ticks
// are quantized here and nowhere else: each track is converted to
// absolute mode, positions are rounded to the nearest integer tick, and
// deltas are re-derived from the rounded positions so rounding error
// cannot accumulate across events.
func (Writer) WritePattern(w io.Writer, p contracts.Pattern) error {
	out := smf.New()
	out.TimeFormat = smf.MetricTicks(p.Resolution)
	for _, t := range p.Tracks {
		if err := out.Add(encodeTrack(t)); err != nil {
			return fmt.Errorf("adding track: %w", err)
		}
	}
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi file: %w", err)
	}
	return nil
}

func encodeTrack(t contracts.Track) smf.Track {
	var (
		tr     smf.Track
		prev   uint32
		closed bool
	)
	for _, ev := range t.Abs().Events() {
		tick := quantize(ev.Tick)
		if tick < prev {
			tick = prev
		}
		delta := tick - prev
		prev = tick

		switch ev.Kind {
		case contracts.NoteOn:
			tr.Add(delta, []byte(midi.NoteOn(ev.Channel, ev.Pitch, ev.Velocity)))
		case contracts.NoteOff:
			tr.Add(delta, []byte(midi.NoteOffVelocity(ev.Channel, ev.Pitch, ev.Velocity)))
		case contracts.EndOfTrack:
			tr.Close(delta)
			closed = true
		default:
			tr.Add(delta, ev.Data)
		}
		if closed {
			break
		}
	}
	if !closed {
		tr.Close(0)
	}
	return tr
}

func quantize(tick float64) uint32 {
	if tick <= 0 {
		return 0
	}
	return uint32(math.Round(tick))
}
