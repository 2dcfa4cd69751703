package matcher

import "github.com/hucsmn/lext"

// BoundedIdentifier matches like LiteralSet, but the character
// following the match must not be alphanumeric (or must be
// end-of-input): a literal that is a prefix of a longer alphanumeric
// run does not match. This is the rule needed to tell a keyword like
// "match" apart from the longer identifier "matcher".
type BoundedIdentifier struct {
	core *literalCore
}

// NewBoundedIdentifier constructs a BoundedIdentifier matcher over
// literals, producing tokens of kind on a match. Pass
// lext.KindBoundedIdentifier for the default reserved kind, or any
// kind >= 100 for user-defined purposes.
func NewBoundedIdentifier(literals []string, kind lext.Kind, precedence uint8) *BoundedIdentifier {
	return &BoundedIdentifier{core: newLiteralCore(literals, kind, precedence, true)}
}

// Reset implements lext.Matcher.
func (m *BoundedIdentifier) Reset(ctx lext.Context) { m.core.reset() }

// Feed implements lext.Matcher.
func (m *BoundedIdentifier) Feed(ch rune, ok bool, seen []rune, ctx lext.Context) lext.Outcome {
	return m.core.feed(ch, ok)
}

// IsRunning implements lext.Matcher.
func (m *BoundedIdentifier) IsRunning() bool { return m.core.isRunning() }

// Precedence implements lext.Matcher.
func (m *BoundedIdentifier) Precedence() uint8 { return m.core.precedenceOf() }
