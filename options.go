package ratelog

import (
	"github.com/toolink/ratelog/clock"
	"github.com/toolink/ratelog/sink"
)

// trackerOptions holds configuration for a RateLog instance.
type trackerOptions struct {
	sink  sink.Sink
	clock clock.Clock
}

// defaultTrackerOptions returns the default options: stdout sink, system clock.
func defaultTrackerOptions() *trackerOptions {
	return &trackerOptions{
		sink:  sink.NewStdout(),
		clock: clock.System(),
	}
}

// Option is a function type used to configure a RateLog.
type Option func(*trackerOptions)

// WithSink sets the sink emitted lines are written to. Defaults to stdout.
func WithSink(s sink.Sink) Option {
	return func(o *trackerOptions) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithClock sets the time source Log reads. Defaults to the system clock.
func WithClock(c clock.Clock) Option {
	return func(o *trackerOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// Apply applies the options to the trackerOptions struct.
func (o *trackerOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}
