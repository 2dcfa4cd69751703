package matcher

import (
	"unicode"

	"github.com/hucsmn/lext"
)

// float matching proceeds through three phases: accumulating the
// digits before the dot, having just consumed the dot, and
// accumulating the digits after it. Only phaseAfterDot, once it has
// seen at least one digit, is an acceptable place to stop.
const (
	floatPhaseBeforeDot = iota
	floatPhaseSawDot
	floatPhaseAfterDot
)

// Float matches digits '.' digits — at least one digit before the dot
// and at least one after — producing lext.KindFloat tokens. Leading
// zeroes are permitted. Bare ".9" or "4." do not match; those are left
// for other matchers (typically Symbol and Integer).
type Float struct {
	precedence   uint8
	digitsBefore int
	digitsAfter  int
	phase        int
	running      bool
}

// NewFloat constructs a Float matcher with the given precedence.
func NewFloat(precedence uint8) *Float {
	return &Float{precedence: precedence}
}

// Reset implements lext.Matcher.
func (m *Float) Reset(ctx lext.Context) {
	m.digitsBefore = 0
	m.digitsAfter = 0
	m.phase = floatPhaseBeforeDot
	m.running = true
}

// Feed implements lext.Matcher.
func (m *Float) Feed(ch rune, ok bool, seen []rune, ctx lext.Context) lext.Outcome {
	if !ok {
		m.running = false
		return m.resolve()
	}

	switch m.phase {
	case floatPhaseBeforeDot:
		switch {
		case unicode.IsDigit(ch):
			m.digitsBefore++
			return lext.RunningOutcome()
		case ch == '.' && m.digitsBefore > 0:
			m.phase = floatPhaseSawDot
			return lext.RunningOutcome()
		}
	case floatPhaseSawDot:
		if unicode.IsDigit(ch) {
			m.digitsAfter++
			m.phase = floatPhaseAfterDot
			return lext.RunningOutcome()
		}
	case floatPhaseAfterDot:
		if unicode.IsDigit(ch) {
			m.digitsAfter++
			return lext.RunningOutcome()
		}
	}

	m.running = false
	return m.resolve()
}

func (m *Float) resolve() lext.Outcome {
	if m.phase == floatPhaseAfterDot {
		return lext.MatchedOutcome(lext.KindFloat, m.digitsBefore+1+m.digitsAfter)
	}
	return lext.FailedOutcome()
}

// IsRunning implements lext.Matcher.
func (m *Float) IsRunning() bool { return m.running }

// Precedence implements lext.Matcher.
func (m *Float) Precedence() uint8 { return m.precedence }
