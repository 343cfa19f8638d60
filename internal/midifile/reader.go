// Package midifile implements the Reader and Writer contracts over
// Standard MIDI Files using gomidi's smf package. The fractal pipeline
// itself never touches bytes on disk; this package turns files into
// Pattern values and back.
package midifile

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// Reader decodes Standard MIDI Files into patterns. Tracks come out in
// relative tick mode, matching the delta encoding on disk.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() Reader {
	return Reader{}
}

// ReadPattern decodes one Standard MIDI File. Only metric (ticks per
// quarter note) time division is supported; SMPTE timecode files are
// rejected.
func (Reader) ReadPattern(r io.Reader) (contracts.Pattern, error) {
	data, err := smf.ReadFrom(r)
	if err != nil {
		return contracts.Pattern{}, fmt.Errorf("reading midi file: %w", err)
	}
	ticks, ok := data.TimeFormat.(smf.MetricTicks)
	if !ok {
		return contracts.Pattern{}, fmt.Errorf("unsupported time format %v", data.TimeFormat)
	}

	p := contracts.Pattern{
		Resolution: uint16(ticks),
		Format:     data.Format(),
	}
	for _, tr := range data.Tracks {
		p.Tracks = append(p.Tracks, decodeTrack(tr))
	}
	return p, nil
}

func decodeTrack(tr smf.Track) contracts.Track {
	events := make([]contracts.Event, 0, len(tr))
	for _, ev := range tr {
		events = append(events, decodeEvent(ev))
	}
	return contracts.NewTrack(true, events...)
}

func decodeEvent(ev smf.Event) contracts.Event {
	var (
		msg   = ev.Message
		delta = float64(ev.Delta)
		ch    uint8
		key   uint8
		vel   uint8
	)
	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		return contracts.Event{Kind: contracts.NoteOn, Tick: delta, Channel: ch, Pitch: key, Velocity: vel}
	case msg.GetNoteOff(&ch, &key, &vel):
		return contracts.Event{Kind: contracts.NoteOff, Tick: delta, Channel: ch, Pitch: key, Velocity: vel}
	case isEndOfTrack(msg):
		return contracts.Event{Kind: contracts.EndOfTrack, Tick: delta}
	case isMeta(msg):
		return contracts.Event{Kind: contracts.Meta, Tick: delta, Data: rawBytes(msg)}
	default:
		return contracts.Event{Kind: contracts.Other, Tick: delta, Data: rawBytes(msg)}
	}
}

// Meta messages start with the 0xFF escape byte, end of track is the
// meta message FF 2F 00.
func isMeta(msg smf.Message) bool {
	return len(msg) > 0 && msg[0] == 0xFF
}

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

func rawBytes(msg smf.Message) []byte {
	return append([]byte(nil), msg...)
}
