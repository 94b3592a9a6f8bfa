package ratelog

import "time"

// limitKind identifies the variant of a Limit.
type limitKind int

const (
	limitCount limitKind = iota
	limitWindow
)

// Limit defines the threshold that triggers a repeat summary.
//
// A Limit is either count-based (fire once the same message has been
// silently repeated n times after its initial print) or window-based (fire
// once the time accumulated between repeats strictly exceeds a duration).
// It is immutable once constructed.
type Limit struct {
	kind   limitKind
	count  uint32
	window time.Duration
}

// Count returns a count-based limit. The n-th silent repeat of a message,
// i.e. its (n+1)-th occurrence overall, emits the summary.
func Count(n uint32) Limit {
	return Limit{kind: limitCount, count: n}
}

// Window returns a duration-based limit. The summary is emitted by the
// first repeat whose accumulated elapsed time strictly exceeds d; equal
// does not fire. A zero window is valid and fires on any repeat with a
// positive elapsed delta.
func Window(d time.Duration) Limit {
	return Limit{kind: limitWindow, window: d}
}

// exceeded reports whether the accumulated repeat count and duration have
// crossed the limit. Pure; both counters are always tracked regardless of
// the limit kind.
func (l Limit) exceeded(count uint32, accumulated time.Duration) bool {
	switch l.kind {
	case limitCount:
		return count >= l.count
	case limitWindow:
		return accumulated > l.window
	}
	return false
}
