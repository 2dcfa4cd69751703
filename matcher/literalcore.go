package matcher

import "github.com/hucsmn/lext"

// literalTarget is one candidate string in a literal matcher's list,
// together with whether it is still a viable prefix of what has been
// fed since the last Reset.
type literalTarget struct {
	runes    []rune
	matching bool
}

// literalCore is the shared incremental longest-literal-of-a-set
// search behind LiteralSet and BoundedIdentifier: adapted from
// hucsmn-peg's prefixTree (a batch longest-prefix search over a
// sorted set of literals) into a search that advances one rune at a
// time and remembers the longest completed literal seen so far,
// exactly as original_source's KeywordMatcher does for its targets.
//
// When bounded is true, a completed literal is only accepted if the
// very next character (or end-of-input) is not alphanumeric — the
// BoundedIdentifier rule. When bounded is false, completion alone is
// enough — the LiteralSet rule.
type literalCore struct {
	kind       lext.Kind
	precedence uint8
	bounded    bool

	targets []literalTarget
	index   int
	found   int // -1 when no literal has completed (acceptably) yet
	running bool
}

func newLiteralCore(literals []string, kind lext.Kind, precedence uint8, bounded bool) *literalCore {
	targets := make([]literalTarget, len(literals))
	for i, s := range literals {
		targets[i] = literalTarget{runes: []rune(s)}
	}
	return &literalCore{
		kind:       kind,
		precedence: precedence,
		bounded:    bounded,
		targets:    targets,
	}
}

func (lc *literalCore) reset() {
	for i := range lc.targets {
		lc.targets[i].matching = true
	}
	lc.index = 0
	lc.found = -1
	lc.running = true
}

func (lc *literalCore) feed(ch rune, ok bool) lext.Outcome {
	if !ok {
		lc.running = false
		for i := range lc.targets {
			t := &lc.targets[i]
			if t.matching && len(t.runes) == lc.index {
				lc.found = i
			}
		}
		return lc.resolve()
	}

	anyMatching := false
	for i := range lc.targets {
		t := &lc.targets[i]
		if !t.matching {
			continue
		}
		if lc.index < len(t.runes) {
			if t.runes[lc.index] == ch {
				anyMatching = true
			} else {
				t.matching = false
			}
			continue
		}
		// t completed on a previous round; ch is the character right
		// after it, which is what the bounded rule tests.
		t.matching = false
		if !lc.bounded || !isAlphanumericRune(ch) {
			lc.found = i
		}
	}
	lc.index++
	lc.running = anyMatching

	if lc.running {
		return lext.RunningOutcome()
	}
	return lc.resolve()
}

func (lc *literalCore) resolve() lext.Outcome {
	if lc.found < 0 {
		return lext.FailedOutcome()
	}
	return lext.MatchedOutcome(lc.kind, len(lc.targets[lc.found].runes))
}

func (lc *literalCore) isRunning() bool     { return lc.running }
func (lc *literalCore) precedenceOf() uint8 { return lc.precedence }
