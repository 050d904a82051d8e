package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/orgball2608/insta-shop-sync/internal/graphapi"
	"github.com/orgball2608/insta-shop-sync/internal/instagram/instagramimpl"
	_ "github.com/orgball2608/insta-shop-sync/internal/migrations"
	"github.com/orgball2608/insta-shop-sync/internal/ratelimit"
	repositories "github.com/orgball2608/insta-shop-sync/internal/repositories/fx"
	"github.com/orgball2608/insta-shop-sync/internal/server"
	"github.com/orgball2608/insta-shop-sync/internal/syncer/syncerimpl"
	"github.com/orgball2608/insta-shop-sync/internal/tagging/taggingimpl"
	"github.com/orgball2608/insta-shop-sync/internal/telegram/telegramimpl"
	"github.com/orgball2608/insta-shop-sync/internal/token/tokenimpl"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"github.com/orgball2608/insta-shop-sync/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	graphapi.Module,
	instagramimpl.Module,
	tokenimpl.Module,
	repositories.Module,
	ratelimit.Module,
	telegramimpl.Module,
	syncerimpl.Module,
	taggingimpl.Module,
	fx.Invoke(migrate),
	server.Module,
	fx.Invoke(run),
)

// migrate applies the compiled-in migrations before anything touches the store.
func migrate(cfg *config.Config, log logger.Logger) error {
	log.Info("Applying migrations")
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, s *syncerimpl.SyncerImpl) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := s.Schedule(ctx); err != nil {
				log.Error("Failed to schedule jobs", "error", err)
				return err
			}
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
