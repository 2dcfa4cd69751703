package matcher

import (
	"unicode"

	"github.com/hucsmn/lext"
)

// Integer matches the maximal run of numeric characters, producing
// lext.KindInteger tokens. An empty match fails.
type Integer struct {
	precedence uint8
	count      int
	running    bool
}

// NewInteger constructs an Integer matcher with the given precedence.
func NewInteger(precedence uint8) *Integer {
	return &Integer{precedence: precedence}
}

// Reset implements lext.Matcher.
func (m *Integer) Reset(ctx lext.Context) {
	m.count = 0
	m.running = true
}

// Feed implements lext.Matcher.
func (m *Integer) Feed(ch rune, ok bool, seen []rune, ctx lext.Context) lext.Outcome {
	if ok && unicode.IsDigit(ch) {
		m.count++
		return lext.RunningOutcome()
	}
	m.running = false
	if m.count > 0 {
		return lext.MatchedOutcome(lext.KindInteger, m.count)
	}
	return lext.FailedOutcome()
}

// IsRunning implements lext.Matcher.
func (m *Integer) IsRunning() bool { return m.running }

// Precedence implements lext.Matcher.
func (m *Integer) Precedence() uint8 { return m.precedence }
