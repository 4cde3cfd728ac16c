package cache

import (
	"context"
	"fmt"

	"github.com/lshigami/examcraft/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewExamCache wires the Redis-backed cache when REDIS_URL is set and a no-op
// cache otherwise.
func NewExamCache(lc fx.Lifecycle, cfg *config.Config) (ExamCache, error) {
	if !cfg.Redis.Enabled() {
		log.Info().Msg("REDIS_URL not set, exam cache disabled")
		return NewNoopExamCache(), nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if cfg.Redis.TTL <= 0 {
		log.Warn().Dur("ttl", cfg.Redis.TTL).Msg("CACHE_TTL is not positive, cached exams will not expire")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				log.Warn().Err(err).Str("addr", opts.Addr).Msg("Redis not reachable, cache calls will fail open")
				return nil
			}
			log.Info().Str("addr", opts.Addr).Dur("ttl", cfg.Redis.TTL).Msg("Connected to Redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})
	return NewRedisExamCache(rdb, cfg.Redis.TTL), nil
}
