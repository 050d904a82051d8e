package ratelimit

import (
	"context"

	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type StoreOpts struct {
	fx.In
	LC fx.Lifecycle

	Config *config.Config
	Logger logger.Logger
}

// NewStore picks Redis when REDIS_ADDR is set and process memory otherwise.
func NewStore(opts StoreOpts) Store {
	if opts.Config.Redis.Addr == "" {
		opts.Logger.Info("Rate limiter uses in-memory store")
		return NewMemoryStore()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Config.Redis.Addr,
		Password: opts.Config.Redis.Password,
		DB:       opts.Config.Redis.DB,
	})

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				// An unreachable Redis only degrades rate limiting.
				if err := rdb.Ping(ctx).Err(); err != nil {
					opts.Logger.Warn("Redis ping failed, rate limiter will fail open", "error", err)
					return nil
				}
				opts.Logger.Info("Connected to redis", "addr", opts.Config.Redis.Addr)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return rdb.Close()
			},
		},
	)

	return NewRedisStore(rdb)
}

func New(store Store, log logger.Logger) *Limiter {
	return NewLimiter(store, nil, log)
}

var Module = fx.Module("ratelimit",
	fx.Provide(
		NewStore,
		New,
	),
)
