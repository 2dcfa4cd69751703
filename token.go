package lext

import "fmt"

// Kind identifies the class of a matched token. The reserved range
// below 100 is defined by this package; values 100 and above are free
// for user matchers to claim.
type Kind uint16

// Reserved token kinds produced by the standard matcher library.
const (
	KindInteger Kind = iota + 1
	KindFloat
	KindWhitespace
	KindWord
	KindSymbol
	KindLiteral
	KindBoundedIdentifier
)

// reservedKindCeiling is the first kind value available for user matchers.
const reservedKindCeiling Kind = 100

// Token is the immutable result of a single successful tokenization
// attempt.
type Token struct {
	// Value is the exact character sequence matched.
	Value string

	// Kind identifies the token's class.
	Kind Kind

	// Length is the number of characters (not bytes) in Value.
	Length int

	// Line and Column are the 1-based position of Value's first
	// character at the time the token was emitted.
	Line   int
	Column int

	// Precedence is the precedence of the matcher that produced this
	// token, see Matcher.Precedence.
	Precedence uint8
}

// String formats the token for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%d:%d+%d %v %q", t.Line, t.Column, t.Length, t.Kind, t.Value)
}

// IsKind reports whether the token's kind equals k.
func (t Token) IsKind(k Kind) bool {
	return t.Kind == k
}

// IsReservedKind reports whether the token's kind is one of the
// kinds reserved by this package (below reservedKindCeiling).
func (t Token) IsReservedKind() bool {
	return t.Kind > 0 && t.Kind < reservedKindCeiling
}

// IsUserKind reports whether the token's kind was defined by calling
// code rather than by this package.
func (t Token) IsUserKind() bool {
	return t.Kind >= reservedKindCeiling
}

// String renders a Kind for debugging. Reserved kinds get their name;
// anything else is printed numerically.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindWhitespace:
		return "Whitespace"
	case KindWord:
		return "Word"
	case KindSymbol:
		return "Symbol"
	case KindLiteral:
		return "Literal"
	case KindBoundedIdentifier:
		return "BoundedIdentifier"
	default:
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
}
