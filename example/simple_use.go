package main

import (
	"fmt"

	"github.com/jameswenzel/Fractal-Midi/internal/logger"
	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
	"github.com/jameswenzel/Fractal-Midi/sdk/fractal"
)

func main() {
	log := logger.NewZapLogger(true)

	// A two-note ascending melody: middle C for one quarter note, then
	// the C an octave up, at 96 ticks per quarter note.
	melody := contracts.NewTrack(true,
		contracts.Event{Kind: contracts.NoteOn, Pitch: 60, Velocity: 100},
		contracts.Event{Kind: contracts.NoteOff, Tick: 96, Pitch: 60},
		contracts.Event{Kind: contracts.NoteOn, Pitch: 72, Velocity: 100},
		contracts.Event{Kind: contracts.NoteOff, Tick: 96, Pitch: 72},
		contracts.Event{Kind: contracts.EndOfTrack},
	)

	f, err := fractal.New(
		contracts.WithLogger(log),
		contracts.WithPhraseLength(16),
		contracts.WithWorkers(4),
	)
	if err != nil {
		log.Error("failed to build fractalizer", contracts.Err(err))
		return
	}

	result, err := f.Track(96, melody)
	if err != nil {
		log.Error("fractalization failed", contracts.Err(err))
		return
	}

	fmt.Printf("melody: %d events over %.0f ticks\n", melody.Len(), melody.Length())
	fmt.Printf("fractal: %d events over %.0f ticks\n", result.Len(), result.Length())
}
