package contracts

// Options defines the configuration of a Fractalizer.
type Options struct {
	Logger          Logger  // Logger for pipeline diagnostics.
	PhraseLength    float64 // Phrase repetitions packed into each quarter note.
	Workers         int     // Goroutines computing per-note blocks.
	StrictMonophony bool    // Reject overlapping notes instead of ignoring them.
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used by the fractal pipeline.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// WithPhraseLength sets how many repetitions of the melody are packed
// into each quarter note of the source, controlling fractal density.
func WithPhraseLength(n float64) Option {
	return func(opts *Options) {
		opts.PhraseLength = n
	}
}

// WithWorkers sets how many goroutines compute per-note fractal blocks.
// Results are always assembled in note order regardless of worker count.
func WithWorkers(n int) Option {
	return func(opts *Options) {
		opts.Workers = n
	}
}

// WithStrictMonophony makes the note sequencer fail with ErrPolyphony
// when two notes overlap, instead of silently misreading durations.
func WithStrictMonophony() Option {
	return func(opts *Options) {
		opts.StrictMonophony = true
	}
}
