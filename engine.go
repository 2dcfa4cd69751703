package lext

import "iter"

// Engine is the tokenization coordination loop: it drives a fixed,
// ordered list of Matchers against an Input, resolving competition
// between them by precedence and match length, and emits one Token
// per successful attempt.
//
// An Engine is not safe for concurrent use; it is a straight-line,
// single-threaded computation with one suspension point (Input.Next).
type Engine struct {
	input    Input
	matchers []Matcher
	capacity int

	replay *ring   // over-read replay + caller rewind
	acc    []rune  // working accumulator for the current attempt
	ctx    Context // shared scratchpad, lives for the engine's lifetime

	line, column int

	lookahead *lookaheadSlot
}

type lookaheadSlot struct {
	tok Token
	ok  bool
}

// New constructs an Engine over input, driving matchers in the given
// order. capacity bounds both the maximum token length and the
// maximum amount of over-read/rewound text the replay buffer can
// hold; a single token longer than capacity is a programming error
// reported as a BufferOverflowError, never silently truncated.
func New(input Input, matchers []Matcher, capacity int) *Engine {
	return &Engine{
		input:    input,
		matchers: matchers,
		capacity: capacity,
		replay:   newRing(capacity),
		acc:      make([]rune, 0, capacity),
		ctx:      make(Context),
		line:     1,
		column:   1,
	}
}

// SetInput replaces the input collaborator, resetting line to 1 and
// column to 1 and clearing the replay buffer and any cached lookahead
// token. The matcher list and capacity are preserved.
func (e *Engine) SetInput(input Input) {
	e.input = input
	e.line = 1
	e.column = 1
	e.replay.clear()
	e.lookahead = nil
}

// NextToken produces the next token, consuming a cached lookahead
// token if PeekToken populated one. ok is false, with a nil error,
// exactly at end-of-input.
func (e *Engine) NextToken() (Token, bool, error) {
	if e.lookahead != nil {
		slot := e.lookahead
		e.lookahead = nil
		return slot.tok, slot.ok, nil
	}
	return e.attempt()
}

// PeekToken produces the next token without consuming it: a
// subsequent NextToken returns the same token and clears the cache;
// repeated PeekToken calls return the same cached token. Errors are
// never cached: a call after a failed attempt makes a fresh attempt
// from wherever the failed one left the stream.
func (e *Engine) PeekToken() (Token, bool, error) {
	if e.lookahead != nil {
		return e.lookahead.tok, e.lookahead.ok, nil
	}
	tok, ok, err := e.attempt()
	if err != nil {
		return Token{}, false, err
	}
	e.lookahead = &lookaheadSlot{tok: tok, ok: ok}
	return tok, ok, nil
}

// Rewind pushes token.Value back into the front of the replay buffer
// in original order and resets the engine's line/column to the
// token's own, so the next NextToken reproduces it. The engine does
// not verify token actually came from it: callers may inject arbitrary
// text within capacity. Any cached lookahead token is discarded, since
// the replay buffer it was computed against has just changed.
func (e *Engine) Rewind(token Token) (remainingCapacity int, err error) {
	chars := []rune(token.Value)
	if err := e.replay.prepend(chars); err != nil {
		return 0, &BufferOverflowError{Buffer: "replay", Capacity: e.capacity}
	}
	e.line = token.Line
	e.column = token.Column
	e.lookahead = nil
	return e.capacity - e.replay.len(), nil
}

// Tokens ranges over every remaining token in the stream. Iteration
// stops at end-of-input or at the first error, which is yielded as
// the second value of that final pair.
func (e *Engine) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, ok, err := e.NextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !ok {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// candidate is the best Matched outcome seen so far during an
// attempt, along with the matcher precedence that produced it.
type candidate struct {
	outcome    Outcome
	precedence uint8
}

// attempt runs one full tokenization attempt: init, fetch loop,
// commit. See spec §4.4.
func (e *Engine) attempt() (Token, bool, error) {
	e.acc = e.acc[:0]
	for _, m := range e.matchers {
		m.Reset(e.ctx)
	}

	startLine, startColumn := e.line, e.column
	var best *candidate

	for {
		var ch rune
		var ok bool

		if !e.replay.isEmpty() {
			c, err := e.replay.read()
			if err != nil {
				// unreachable: isEmpty just checked
				return Token{}, false, err
			}
			ch, ok = c, true
		} else {
			c, present, err := e.input.Next()
			if err != nil {
				return Token{}, false, &InputError{Err: err}
			}
			ch, ok = c, present
		}

		if ok {
			if len(e.acc) >= cap(e.acc) {
				return Token{}, false, &BufferOverflowError{Buffer: "accumulator", Capacity: e.capacity}
			}
			e.acc = append(e.acc, ch)
		}

		anyRunning := false
		var iterationWinner *candidate

		for _, m := range e.matchers {
			if !m.IsRunning() {
				continue
			}
			outcome := m.Feed(ch, ok, e.acc, e.ctx)
			if m.IsRunning() {
				anyRunning = true
			}
			if outcome.Tag == Matched {
				prec := m.Precedence()
				if iterationWinner == nil || prec >= iterationWinner.precedence {
					iterationWinner = &candidate{outcome: outcome, precedence: prec}
				}
			}
		}

		if iterationWinner != nil {
			if best == nil || iterationWinner.precedence >= best.precedence {
				best = iterationWinner
			}
		}

		if !anyRunning {
			if best != nil {
				return e.commit(best, startLine, startColumn)
			}
			if !ok && len(e.acc) == 0 {
				return Token{}, false, nil
			}
			notFound := &TokenNotFoundError{Line: e.line, Column: e.column, EndOfInput: !ok}
			if ok {
				notFound.Rune = ch
			}
			return Token{}, false, notFound
		}
	}
}

// commit finalizes the winning candidate: replays any over-read
// characters, stamps the token's position, and advances the engine's
// own line/column past the matched text.
func (e *Engine) commit(best *candidate, startLine, startColumn int) (Token, bool, error) {
	length := best.outcome.Length
	matched := e.acc[:length]
	overread := e.acc[length:]

	if len(overread) > 0 {
		if err := e.replay.prepend(overread); err != nil {
			return Token{}, false, &BufferOverflowError{Buffer: "replay", Capacity: e.capacity}
		}
	}

	tok := Token{
		Value:      string(matched),
		Kind:       best.outcome.Kind,
		Length:     length,
		Line:       startLine,
		Column:     startColumn,
		Precedence: best.precedence,
	}

	e.advance(matched)

	return tok, true, nil
}

// advance walks chars, updating e.line/e.column under the CR/LF/CRLF
// rule: every character advances the column; a line feed resets the
// column and advances the line; a carriage return resets the column
// and advances the line, and if immediately followed by a line feed,
// that line feed does not advance the line again.
func (e *Engine) advance(chars []rune) {
	i := 0
	for i < len(chars) {
		switch c := chars[i]; {
		case c == '\r':
			e.line++
			e.column = 1
			if i+1 < len(chars) && chars[i+1] == '\n' {
				i++
			}
		case c == '\n':
			e.line++
			e.column = 1
		default:
			e.column++
		}
		i++
	}
}
