// Command fractal-midi reads one Standard MIDI File, fractalizes its
// melody track, and writes a new single-track file at the same
// resolution.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jameswenzel/Fractal-Midi/internal/config"
	"github.com/jameswenzel/Fractal-Midi/internal/logger"
	"github.com/jameswenzel/Fractal-Midi/internal/midifile"
	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
	"github.com/jameswenzel/Fractal-Midi/sdk/fractal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fractal-midi:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var (
		in      = flag.String("in", "", "input MIDI file (required)")
		out     = flag.String("out", "fractal.mid", "output MIDI file")
		track   = flag.Int("track", cfg.TrackIndex, "index of the melody track")
		phrase  = flag.Float64("phrase", cfg.PhraseLength, "melody repetitions per quarter note")
		workers = flag.Int("workers", cfg.Workers, "goroutines computing per-note blocks")
		strict  = flag.Bool("strict", cfg.StrictMonophony, "reject polyphonic input instead of guessing")
		save    = flag.Bool("save", false, "persist the effective settings as future defaults")
		debug   = flag.Bool("debug", false, "verbose pipeline logging")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		return fmt.Errorf("missing -in")
	}

	log := logger.NewZapLogger(*debug)

	opts := []contracts.Option{
		contracts.WithLogger(log),
		contracts.WithPhraseLength(*phrase),
		contracts.WithWorkers(*workers),
	}
	if *strict {
		opts = append(opts, contracts.WithStrictMonophony())
	}
	f, err := fractal.New(opts...)
	if err != nil {
		return err
	}

	if *save {
		cfg.PhraseLength = *phrase
		cfg.Workers = *workers
		cfg.StrictMonophony = *strict
		cfg.TrackIndex = *track
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		log.Info("saved settings",
			contracts.Float64("phrase", cfg.PhraseLength),
			contracts.Int("workers", cfg.Workers))
	}

	src, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer src.Close()

	pattern, err := midifile.NewReader().ReadPattern(src)
	if err != nil {
		return err
	}
	log.Info("read pattern",
		contracts.String("file", *in),
		contracts.Int("tracks", len(pattern.Tracks)),
		contracts.Int("resolution", int(pattern.Resolution)))

	result, err := f.Pattern(pattern, *track)
	if err != nil {
		return err
	}

	dst, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := midifile.NewWriter().WritePattern(dst, result); err != nil {
		return err
	}
	log.Info("wrote fractal",
		contracts.String("file", *out),
		contracts.Float64("length", result.Tracks[0].Length()))
	return nil
}
