package fractal

import "github.com/jameswenzel/Fractal-Midi/sdk/contracts"

// SplitHeader separates the leading run of Meta events from the
// playable body and returns (header, body). Header events carry no
// duration, so splitting after the note sequence has been taken leaves
// all tick arithmetic intact. A track consisting entirely of Meta
// events yields an empty header and the whole track as the body.
func SplitHeader(t contracts.Track) (contracts.Track, contracts.Track) {
	for i := 0; i < t.Len(); i++ {
		if t.At(i).Kind != contracts.Meta {
			return t.Slice(0, i), t.Slice(i, t.Len()).WithTail(t.Tail())
		}
	}
	return contracts.NewTrack(t.Relative()), t
}

// DetachEnd strips a trailing EndOfTrack sentinel from the track, if
// present, and returns it for later reattachment.
func DetachEnd(t contracts.Track) (contracts.Track, *contracts.Event) {
	n := t.Len()
	if n == 0 {
		return t, nil
	}
	if last := t.At(n - 1); last.Kind == contracts.EndOfTrack {
		return t.Slice(0, n-1), &last
	}
	return t, nil
}
