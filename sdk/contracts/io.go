package contracts

import "io"

// Reader decodes a MIDI source into a Pattern.
type Reader interface {
	ReadPattern(r io.Reader) (Pattern, error)
}

// Writer encodes a Pattern into a MIDI destination.
type Writer interface {
	WritePattern(w io.Writer, p Pattern) error
}
