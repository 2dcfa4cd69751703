package input_test

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucsmn/lext/input"
)

func TestReaderYieldsRunesInOrder(t *testing.T) {
	in := input.NewReader(strings.NewReader("go语言"))
	want := []rune("go语言")

	for i, w := range want {
		ch, ok, err := in.Next()
		require.NoError(t, err)
		require.True(t, ok, "rune #%d", i)
		assert.Equal(t, w, ch)
	}

	_, ok, err := in.Next()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestReaderWrapsExistingBufioReader(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("x"))
	in := input.NewReader(br)
	ch, ok, err := in.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 'x', ch)
}

type erroringReader struct{}

func (erroringReader) Read(p []byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReaderPropagatesNonEOFError(t *testing.T) {
	in := input.NewReader(erroringReader{})
	_, ok, err := in.Next()
	assert.False(t, ok)
	assert.Error(t, err)

	// Once failed, further calls report end-of-input rather than
	// re-reading a now-exhausted reader.
	_, ok, err = in.Next()
	assert.NoError(t, err)
	assert.False(t, ok)
}
