package matcher

import (
	"unicode"

	"github.com/hucsmn/lext"
)

// Whitespace matches the maximal run of whitespace characters (per the
// Unicode whitespace test), producing lext.KindWhitespace tokens. An
// empty match fails.
type Whitespace struct {
	precedence uint8
	count      int
	running    bool
}

// NewWhitespace constructs a Whitespace matcher with the given
// precedence.
func NewWhitespace(precedence uint8) *Whitespace {
	return &Whitespace{precedence: precedence}
}

// Reset implements lext.Matcher.
func (m *Whitespace) Reset(ctx lext.Context) {
	m.count = 0
	m.running = true
}

// Feed implements lext.Matcher.
func (m *Whitespace) Feed(ch rune, ok bool, seen []rune, ctx lext.Context) lext.Outcome {
	if ok && unicode.IsSpace(ch) {
		m.count++
		return lext.RunningOutcome()
	}
	m.running = false
	if m.count > 0 {
		return lext.MatchedOutcome(lext.KindWhitespace, m.count)
	}
	return lext.FailedOutcome()
}

// IsRunning implements lext.Matcher.
func (m *Whitespace) IsRunning() bool { return m.running }

// Precedence implements lext.Matcher.
func (m *Whitespace) Precedence() uint8 { return m.precedence }
