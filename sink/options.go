package sink

import "time"

// redisOptions holds configuration for the redis sink.
type redisOptions struct {
	writeTimeout time.Duration // context timeout for each push
	listMaxLen   int64         // approx max list length (uses LTRIM). 0=disabled
}

func defaultRedisOptions() redisOptions {
	return redisOptions{
		writeTimeout: 5 * time.Second,
		listMaxLen:   0, // don't trim by default
	}
}

// Option is a function type used to configure the redis sink.
type Option func(*redisOptions)

// WithWriteTimeout sets the context timeout for each RPUSH.
// Defaults to 5 seconds.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *redisOptions) {
		if d > 0 {
			o.writeTimeout = d
		}
	}
}

// WithListMaxLen sets the approximate maximum length for the destination
// list using LTRIM after each push, keeping the newest entries.
// 0 disables trimming.
func WithListMaxLen(maxLen int64) Option {
	return func(o *redisOptions) {
		if maxLen >= 0 {
			o.listMaxLen = maxLen
		}
	}
}
