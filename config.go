package ratelog

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/toolink/ratelog/sink"
)

// LimitConfig selects the limit kind and its threshold.
type LimitConfig struct {
	Kind   string        `yaml:"kind"`   // "count" or "window"
	Count  uint32        `yaml:"count"`  // silent repeats allowed before a summary (kind "count")
	Window time.Duration `yaml:"window"` // accumulated time allowed before a summary (kind "window")
}

// SinkConfig selects where emitted lines go.
type SinkConfig struct {
	Type     string `yaml:"type"`      // "stdout" or "redis"
	RedisKey string `yaml:"redis_key"` // destination list for the redis sink
}

// Config holds the overall tracker configuration.
type Config struct {
	Limit LimitConfig `yaml:"limit"`
	Sink  SinkConfig  `yaml:"sink"`
}

// ValidateAndPrepare processes the raw config and validates it.
func (c *Config) ValidateAndPrepare() error {
	switch c.Limit.Kind {
	case LimitCount:
		if c.Limit.Count == 0 {
			return fmt.Errorf("count limit must be positive, got %d", c.Limit.Count)
		}
	case LimitWindow:
		if c.Limit.Window < 0 {
			return fmt.Errorf("window limit must be non-negative, got %s", c.Limit.Window)
		}
		if c.Limit.Window == 0 {
			log.Warn().Msg("window limit of zero configured, every timed repeat will emit a summary")
		}
	default:
		return fmt.Errorf("invalid limit kind: %q, must be %q or %q", c.Limit.Kind, LimitCount, LimitWindow)
	}

	switch c.Sink.Type {
	case "", SinkStdout:
		// stdout is the default
	case SinkRedis:
		if c.Sink.RedisKey == "" {
			return fmt.Errorf("redis sink requires a redis_key")
		}
	default:
		return fmt.Errorf("invalid sink type: %q, must be %q or %q", c.Sink.Type, SinkStdout, SinkRedis)
	}

	return nil
}

// limit builds the Limit described by the config.
// Assumes ValidateAndPrepare has passed.
func (c *Config) limit() Limit {
	if c.Limit.Kind == LimitWindow {
		return Window(c.Limit.Window)
	}
	return Count(c.Limit.Count)
}

// NewFromConfig builds a RateLog from a config, validating it first.
// A pre-configured redis client (e.g., redis.Client or redis.ClusterClient)
// is required only when the redis sink is selected. Explicit options take
// precedence over the sink the config selects.
func NewFromConfig(cfg *Config, client redis.Cmdable, opts ...Option) (*RateLog, error) {
	if err := cfg.ValidateAndPrepare(); err != nil {
		return nil, err
	}

	if cfg.Sink.Type == SinkRedis {
		if client == nil {
			return nil, fmt.Errorf("redis sink selected but no redis client provided")
		}
		opts = append([]Option{WithSink(sink.NewRedis(client, cfg.Sink.RedisKey))}, opts...)
	}

	return New(cfg.limit(), opts...), nil
}
