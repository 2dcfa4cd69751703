// Package matcher provides the standard matcher library: the seven
// concrete recognizers (Word, Integer, Float, Whitespace, Symbol,
// LiteralSet, BoundedIdentifier) that plug into an engine built with
// github.com/hucsmn/lext by satisfying its Matcher contract.
//
// None of these types hold a reference to an engine; each is
// constructed once and driven by an engine's tokenization loop, which
// calls Reset at the start of every attempt and Feed once per
// character (or once more with ok=false at end-of-input).
package matcher
