package fractal

import (
	"errors"

	"github.com/jameswenzel/Fractal-Midi/internal/logger"
	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// Option validation errors.
var (
	// ErrPhraseLength is returned when a non-positive phrase length is
	// configured; the fractal density must be a positive multiplier.
	ErrPhraseLength = errors.New("phrase length must be positive")
	// ErrWorkers is returned when a negative worker count is configured.
	ErrWorkers = errors.New("worker count must not be negative")
)

// applyDefaultOptions sets default values for Options if not explicitly
// provided: a no-op logger, DefaultPhraseLength, and a single worker.
func applyDefaultOptions(opts ...contracts.Option) (contracts.Options, error) {
	options := &contracts.Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewNopLogger()
	}
	if options.PhraseLength == 0 {
		options.PhraseLength = DefaultPhraseLength
	}
	if options.PhraseLength < 0 {
		return contracts.Options{}, ErrPhraseLength
	}
	if options.Workers < 0 {
		return contracts.Options{}, ErrWorkers
	}
	if options.Workers == 0 {
		options.Workers = 1
	}
	return *options, nil
}
