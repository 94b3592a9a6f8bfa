package sink

import "sync"

// Capture is a Sink that records lines in write order, for test assertions.
type Capture struct {
	mu    sync.Mutex
	lines []string
}

// NewCapture creates an empty capturing sink.
func NewCapture() *Capture {
	return &Capture{}
}

// WriteLine implements the Sink interface. It never fails.
func (c *Capture) WriteLine(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, text)
	return nil
}

// Lines returns a copy of the recorded lines in write order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Reset discards all recorded lines.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
