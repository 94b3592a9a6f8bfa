package sink

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// redisSink implements the Sink interface by pushing lines onto a redis list.
type redisSink struct {
	client  redis.Cmdable
	key     string
	options redisOptions
}

// NewRedis creates a sink appending each line to the redis list at key.
// It expects a pre-configured redis.Cmdable (e.g., redis.Client or redis.ClusterClient).
func NewRedis(client redis.Cmdable, key string, opts ...Option) Sink {
	options := defaultRedisOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &redisSink{
		client:  client,
		key:     key,
		options: options,
	}
}

// WriteLine implements the Sink interface for redis storage.
func (s *redisSink) WriteLine(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.options.writeTimeout)
	defer cancel()

	if err := s.client.RPush(ctx, s.key, text).Err(); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("redis push failed")
		return fmt.Errorf("redis push failed for key %s: %w", s.key, err)
	}

	if s.options.listMaxLen > 0 {
		// Best-effort trim; newest entries live at the tail.
		if err := s.client.LTrim(ctx, s.key, -s.options.listMaxLen, -1).Err(); err != nil {
			log.Warn().Err(err).Str("key", s.key).Msg("redis trim failed")
		}
	}

	log.Debug().Str("key", s.key).Msg("line pushed to redis")
	return nil
}
