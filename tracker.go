package ratelog

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/toolink/ratelog/clock"
	"github.com/toolink/ratelog/sink"
)

// RateLog gates a sequential stream of messages: a new or different
// message is emitted immediately, repeats of the tracked message are
// suppressed and accumulated, and a single summary line is emitted once
// the configured limit is crossed.
//
// Exactly one message key is tracked at a time. A RateLog is not safe for
// concurrent use; fan-in from multiple producers must be serialized by the
// caller before reaching Submit, or one instance used per producer.
type RateLog struct {
	id    string // instance id for log correlation
	limit Limit
	sink  sink.Sink
	clock clock.Clock

	// tracked state for the current message run
	tracked     bool
	key         string
	count       uint32
	accumulated time.Duration
	lastSeen    time.Time
}

// New creates a RateLog enforcing the given limit.
func New(limit Limit, opts ...Option) *RateLog {
	options := defaultTrackerOptions()
	options.Apply(opts...)

	return &RateLog{
		id:    uuid.NewString(),
		limit: limit,
		sink:  options.sink,
		clock: options.clock,
	}
}

// Submit runs the gating decision for one message at the given time.
// It returns the line to emit and true, or a zero Line and false when the
// repeat is suppressed. Submit performs no I/O; callers that want direct
// emission use Log instead.
func (r *RateLog) Submit(message string, now time.Time) (Line, bool) {
	if !r.tracked || message != r.key {
		// A changed key always flushes silently: the abandoned key's
		// partial accumulation is discarded without a summary.
		r.tracked = true
		r.key = message
		r.count = 0
		r.accumulated = 0
		r.lastSeen = now
		log.Debug().Str("tracker_id", r.id).Str("key", message).Msg("new key, emitting immediately")
		return Line{Kind: LineImmediate, Text: message}, true
	}

	delta := now.Sub(r.lastSeen)
	if delta < 0 {
		// Clock went backwards. Tolerated, never surfaced as an error.
		log.Warn().Str("tracker_id", r.id).Dur("delta", delta).Msg("non-monotonic clock reading, clamping delta to zero")
		delta = 0
	}
	r.accumulated += delta
	r.count++
	r.lastSeen = now

	if !r.limit.exceeded(r.count, r.accumulated) {
		log.Debug().Str("tracker_id", r.id).Uint32("count", r.count).Dur("accumulated", r.accumulated).Msg("repeat suppressed")
		return Line{}, false
	}

	text := Summary(r.key, r.count, r.accumulated)
	log.Debug().Str("tracker_id", r.id).Uint32("count", r.count).Dur("accumulated", r.accumulated).Msg("limit exceeded, emitting summary")

	// A new accumulation window begins for the same key; lastSeen stays.
	r.count = 0
	r.accumulated = 0
	return Line{Kind: LineSummary, Text: text}, true
}

// Log submits a message at the tracker clock's current time and writes any
// emitted line to the sink. Counters are committed before the write, so a
// sink failure is returned without rolling back tracking state.
func (r *RateLog) Log(message string) error {
	line, ok := r.Submit(message, r.clock.Now())
	if !ok {
		return nil
	}
	return r.sink.WriteLine(line.Text)
}
