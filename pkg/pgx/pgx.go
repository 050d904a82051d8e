package pgx

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"go.uber.org/fx"
)

// Opts holds dependencies for creating a pgx pool.
type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New creates a new pgxpool.Pool and manages its lifecycle.
func New(opts Opts) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(opts.Config.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if n := opts.Config.Sync.Concurrency; n > 0 {
		// Every concurrent account task may hold a connection while upserting.
		poolCfg.MaxConns = int32(max(n+2, 4))
	}

	pgx, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := pgx.Ping(ctx); err != nil {
					return fmt.Errorf("failed to ping postgres: %w", err)
				}
				opts.Logger.Info("Connected to postgres", "max_conns", poolCfg.MaxConns)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				pgx.Close()
				return nil
			},
		},
	)

	return pgx, nil
}
