package ratelog

// Limit kinds
const (
	LimitCount  = "count"
	LimitWindow = "window"
)

// Sink types
const (
	SinkStdout = "stdout"
	SinkRedis  = "redis"
)

// DefaultCountLimit is the repeat threshold used by the default global tracker.
const DefaultCountLimit = 5
