package matcher

import (
	"unicode"

	"github.com/hucsmn/lext"
)

// Symbol matches the maximal run of characters that are neither
// alphanumeric nor whitespace, producing lext.KindSymbol tokens. An
// empty match fails.
type Symbol struct {
	precedence uint8
	count      int
	running    bool
}

// NewSymbol constructs a Symbol matcher with the given precedence.
func NewSymbol(precedence uint8) *Symbol {
	return &Symbol{precedence: precedence}
}

// Reset implements lext.Matcher.
func (m *Symbol) Reset(ctx lext.Context) {
	m.count = 0
	m.running = true
}

// Feed implements lext.Matcher.
func (m *Symbol) Feed(ch rune, ok bool, seen []rune, ctx lext.Context) lext.Outcome {
	if ok && isSymbolRune(ch) {
		m.count++
		return lext.RunningOutcome()
	}
	m.running = false
	if m.count > 0 {
		return lext.MatchedOutcome(lext.KindSymbol, m.count)
	}
	return lext.FailedOutcome()
}

// IsRunning implements lext.Matcher.
func (m *Symbol) IsRunning() bool { return m.running }

// Precedence implements lext.Matcher.
func (m *Symbol) Precedence() uint8 { return m.precedence }

func isSymbolRune(c rune) bool {
	return !unicode.IsLetter(c) && !unicode.IsDigit(c) && !unicode.IsSpace(c)
}

func isAlphanumericRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}
