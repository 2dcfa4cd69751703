package matcher

import (
	"unicode"

	"github.com/hucsmn/lext"
)

// Word matches the maximal run of alphabetic characters (per Unicode
// category), producing lext.KindWord tokens. An empty match fails.
type Word struct {
	precedence uint8
	count      int
	running    bool
}

// NewWord constructs a Word matcher with the given precedence.
func NewWord(precedence uint8) *Word {
	return &Word{precedence: precedence}
}

// Reset implements lext.Matcher.
func (w *Word) Reset(ctx lext.Context) {
	w.count = 0
	w.running = true
}

// Feed implements lext.Matcher.
func (w *Word) Feed(ch rune, ok bool, seen []rune, ctx lext.Context) lext.Outcome {
	if ok && unicode.IsLetter(ch) {
		w.count++
		return lext.RunningOutcome()
	}
	w.running = false
	if w.count > 0 {
		return lext.MatchedOutcome(lext.KindWord, w.count)
	}
	return lext.FailedOutcome()
}

// IsRunning implements lext.Matcher.
func (w *Word) IsRunning() bool { return w.running }

// Precedence implements lext.Matcher.
func (w *Word) Precedence() uint8 { return w.precedence }
