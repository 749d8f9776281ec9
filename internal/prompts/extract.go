package prompts

import (
	"fmt"
	"strings"
)

// Extract isolates the corrected essay from a full decoded model output.
//
// The decoded output contains the echoed prompt followed by the model's
// answer. Extract splits on the LAST occurrence of AnswerMarker — the
// one-shot prompt contains an earlier assistant turn for the worked example,
// and an essay may itself quote the marker text — then strips trailing
// end-of-turn tokens and surrounding whitespace.
//
// If the marker is absent (generation truncated before the echo reached the
// final assistant turn, or a backend that does not reproduce the prompt),
// Extract returns ErrMarkerNotFound rather than guessing: returning unmarked
// text would risk leaking prompt scaffolding into the reported correction.
func Extract(raw string) (string, error) {
	i := strings.LastIndex(raw, AnswerMarker)
	if i < 0 {
		return "", fmt.Errorf("%w (marker %q)", ErrMarkerNotFound, AnswerMarker)
	}
	return stripEndOfTurn(raw[i+len(AnswerMarker):]), nil
}

// stripEndOfTurn removes every trailing end-of-turn token, with any
// interleaved whitespace, then trims the result. Stripping all trailing
// occurrences makes the operation idempotent.
func stripEndOfTurn(s string) string {
	s = strings.TrimSpace(s)
	for strings.HasSuffix(s, EndOfTurn) {
		s = strings.TrimSpace(strings.TrimSuffix(s, EndOfTurn))
	}
	return s
}
