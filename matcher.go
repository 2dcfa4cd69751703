package lext

// Context is the free-form scratchpad passed by reference to every
// matcher on every call during a tokenization attempt. The engine
// never reads or writes it; matchers cooperate by convention and are
// expected to namespace their keys (e.g. "word.seenDigit").
type Context map[string]int

// Matcher is the pluggable, stateful recognizer the engine drives
// against the character stream. A matcher instance may be fed
// characters across many attempts; Reset returns it to its initial
// state at the start of each attempt.
//
// A matcher that reports Matched while IsRunning still returns true is
// permitted and expected: it encodes "longest match so far". The
// engine keeps feeding such a matcher until IsRunning returns false,
// and treats its last Matched outcome as the one that counts.
type Matcher interface {
	// Reset returns the matcher to its initial state at the start of a
	// new tokenization attempt.
	Reset(ctx Context)

	// Feed offers the next character, or (0, false) at end-of-input.
	// seen is the full sequence of characters offered since the last
	// Reset, including the one just passed in ch (when ok is true).
	Feed(ch rune, ok bool, seen []rune, ctx Context) Outcome

	// IsRunning reports whether the matcher may yet consume more
	// characters. Once false, the engine stops calling Feed until the
	// next Reset.
	IsRunning() bool

	// Precedence is this matcher's tie-breaking priority; higher wins.
	Precedence() uint8
}

// OutcomeKind tags the three possible results of feeding a matcher.
type OutcomeKind uint8

const (
	// Running means the matcher needs more input and has not yet
	// committed to a match or a failure.
	Running OutcomeKind = iota
	// Matched means the matcher recognized a valid prefix of seen.
	Matched
	// Failed means the matcher cannot match and will not match
	// further during this attempt.
	Failed
)

// Outcome is what a Matcher reports for one Feed call.
type Outcome struct {
	Kind Kind

	// Tag selects which of Running/Matched/Failed this outcome is.
	Tag OutcomeKind

	// Length is, for a Matched outcome, how many leading characters of
	// seen were consumed by the match.
	Length int
}

// RunningOutcome reports that a matcher needs more input.
func RunningOutcome() Outcome {
	return Outcome{Tag: Running}
}

// MatchedOutcome reports a match of the first length characters of
// seen, tagged with the matcher's token kind.
func MatchedOutcome(kind Kind, length int) Outcome {
	return Outcome{Tag: Matched, Kind: kind, Length: length}
}

// FailedOutcome reports that the matcher cannot match this attempt.
func FailedOutcome() Outcome {
	return Outcome{Tag: Failed}
}
