package sink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_AppendsNewlinePerLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)

	require.NoError(t, s.WriteLine("first"))
	require.NoError(t, s.WriteLine("second"))

	require.Equal(t, "first\nsecond\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestWriter_PropagatesWriteError(t *testing.T) {
	s := NewWriter(brokenWriter{})

	err := s.WriteLine("lost")
	require.Error(t, err)
}

func TestCapture_RecordsInOrder(t *testing.T) {
	c := NewCapture()

	require.NoError(t, c.WriteLine("a"))
	require.NoError(t, c.WriteLine("b"))
	require.NoError(t, c.WriteLine("c"))

	require.Equal(t, []string{"a", "b", "c"}, c.Lines())
}

func TestCapture_LinesReturnsCopy(t *testing.T) {
	c := NewCapture()
	require.NoError(t, c.WriteLine("a"))

	lines := c.Lines()
	lines[0] = "mutated"

	require.Equal(t, []string{"a"}, c.Lines())
}

func TestCapture_Reset(t *testing.T) {
	c := NewCapture()
	require.NoError(t, c.WriteLine("a"))

	c.Reset()

	require.Empty(t, c.Lines())
}
