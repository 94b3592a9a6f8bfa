package sink

import (
	"fmt"
	"io"
	"os"
)

// writerSink implements the Sink interface over an io.Writer.
type writerSink struct {
	w io.Writer
}

// NewWriter creates a sink writing each line to w with a trailing newline.
func NewWriter(w io.Writer) Sink {
	return &writerSink{w: w}
}

// NewStdout creates the default sink, writing to standard output.
func NewStdout() Sink {
	return NewWriter(os.Stdout)
}

// WriteLine implements the Sink interface for writer targets.
func (s *writerSink) WriteLine(text string) error {
	if _, err := fmt.Fprintln(s.w, text); err != nil {
		return fmt.Errorf("sink write failed: %w", err)
	}
	return nil
}
