// Package sink provides output destinations for gated log lines.
//
// A tracker hands every emitted line (immediate message or repeat summary)
// to a Sink. The writer sink targets standard output by default; the
// capture sink records lines in order for test assertions; the redis sink
// appends lines to a redis list.
package sink

// Sink defines the interface for emitting a single line of output.
// Implementations append any framing they need (e.g. a trailing newline).
type Sink interface {
	// WriteLine emits one line of text.
	WriteLine(text string) error
}
