package fractal

import (
	"sync"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// Config carries the orchestrator knobs. Zero values are not usable;
// sdk/fractal applies defaults before calling in.
type Config struct {
	PhraseLength float64
	Workers      int
	Strict       bool
	Log          contracts.Logger
}

// FractalizeTrack runs the whole pipeline over one melody track and
// returns the assembled fractal track:
//
//  1. normalize zero-velocity NoteOns, sort same-tick events off-first
//  2. find the root pitch and extract the note sequence
//  3. split off header metadata and the EndOfTrack sentinel
//  4. compute every note's fractal block against the bare body
//  5. concatenate the blocks in note order, reattach the sentinel
//  6. rescale the whole result back into the source tick range
//  7. prepend the untouched header
//
// Per-note blocks are independent; with Workers > 1 they are computed
// concurrently and still joined in note order, which the tick rebasing
// of step 5 requires for correctness.
func FractalizeTrack(resolution uint16, t contracts.Track, cfg Config) (contracts.Track, error) {
	t = SortTicks(Normalize(t))

	root, err := Root(t)
	if err != nil {
		return contracts.Track{}, err
	}
	notes, err := Notes(t, cfg.Strict)
	if err != nil {
		return contracts.Track{}, err
	}
	header, body := SplitHeader(t)
	body, end := DetachEnd(body)

	cfg.Log.Debug("fractalizing track",
		contracts.Int("root", int(root)),
		contracts.Int("notes", len(notes)),
		contracts.Float64("bodyLength", body.Length()),
		contracts.Float64("phraseLength", cfg.PhraseLength),
		contracts.Int("workers", cfg.Workers))

	blocks := fractalizeNotes(float64(resolution), cfg, body, root, notes)

	fractal := contracts.NewTrack(true)
	for _, block := range blocks {
		fractal = fractal.Append(block)
	}
	if end != nil {
		fractal = fractal.Append(contracts.NewTrack(true, *end))
	}

	// Rescale so the fractal spans a tick range comparable to the
	// source melody, independent of note count and repetition depth.
	fractal = Scale(fractal, body.Length()/float64(resolution)*cfg.PhraseLength)

	return header.Append(fractal), nil
}

// fractalizeNotes computes each note's fractal block, fanning out over
// cfg.Workers goroutines when asked to. The returned slice is indexed
// by note order regardless of completion order.
func fractalizeNotes(resolution float64, cfg Config, body contracts.Track, root uint8, notes []contracts.NoteEvent) []contracts.Track {
	blocks := make([]contracts.Track, len(notes))
	if cfg.Workers <= 1 || len(notes) < 2 {
		for i, note := range notes {
			blocks[i] = FractalizeNote(resolution, cfg.PhraseLength, body, root, note)
		}
		return blocks
	}

	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	for i, note := range notes {
		i, note := i, note
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			blocks[i] = FractalizeNote(resolution, cfg.PhraseLength, body, root, note)
		}()
	}
	wg.Wait()
	return blocks
}
