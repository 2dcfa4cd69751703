package input

import (
	"bufio"
	"errors"
	"io"
)

// Reader is an Input that decodes UTF-8 one rune at a time from a
// buffered io.Reader, generalizing the original file-backed input to
// any byte source. It handles UTF-8 sequences split across
// underlying reads the way bufio.Reader.ReadRune always does, which
// is exactly the boundary-handling contract spec §4.3 leaves to input
// collaborators.
type Reader struct {
	r    *bufio.Reader
	done bool
}

// NewReader constructs a Reader input over r. r is wrapped in a
// bufio.Reader if it is not already one.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// Next implements lext.Input.
func (in *Reader) Next() (rune, bool, error) {
	if in.done {
		return 0, false, nil
	}
	ch, _, err := in.r.ReadRune()
	if err != nil {
		in.done = true
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return ch, true, nil
}
