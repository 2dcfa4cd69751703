package matcher

import "github.com/hucsmn/lext"

// LiteralSet matches the longest literal in a fixed list that equals
// a prefix of the characters fed since the last Reset. There is no
// boundary condition on the character that follows — compare
// BoundedIdentifier, which adds one.
type LiteralSet struct {
	core *literalCore
}

// NewLiteralSet constructs a LiteralSet matcher over literals,
// producing tokens of kind on a match. Pass lext.KindLiteral for the
// default reserved kind, or any kind >= 100 to tag matches for
// user-defined purposes.
func NewLiteralSet(literals []string, kind lext.Kind, precedence uint8) *LiteralSet {
	return &LiteralSet{core: newLiteralCore(literals, kind, precedence, false)}
}

// Reset implements lext.Matcher.
func (m *LiteralSet) Reset(ctx lext.Context) { m.core.reset() }

// Feed implements lext.Matcher.
func (m *LiteralSet) Feed(ch rune, ok bool, seen []rune, ctx lext.Context) lext.Outcome {
	return m.core.feed(ch, ok)
}

// IsRunning implements lext.Matcher.
func (m *LiteralSet) IsRunning() bool { return m.core.isRunning() }

// Precedence implements lext.Matcher.
func (m *LiteralSet) Precedence() uint8 { return m.core.precedenceOf() }
