package syncerimpl

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
	"github.com/orgball2608/insta-shop-sync/pkg/formatter"
)

const (
	shopSyncJobName     = "shop-sync"
	tokenRefreshJobName = "token-refresh"
	sweepJobName        = "rate-limit-sweep"
)

// Schedule registers the periodic shop sync, token refresh and rate-limit sweep.
// The scheduler shuts down when ctx is cancelled.
func (s *SyncerImpl) Schedule(ctx context.Context) error {
	scheduler, err := s.newScheduler(ctx)
	if err != nil {
		return err
	}

	scheduler.Start()
	s.Logger.Info("Scheduled jobs started",
		"sync_schedule", s.Config.Sync.Schedule,
		"token_refresh_schedule", s.Config.TokenRefresh.Schedule,
	)

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping scheduler")
		if err := scheduler.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}

func (s *SyncerImpl) newScheduler(ctx context.Context) (gocron.Scheduler, error) {
	loc, err := time.LoadLocation(s.Config.Sync.Timezone)
	if err != nil {
		loc = time.UTC
		s.Logger.Warn("Failed to load timezone, using UTC", "timezone", s.Config.Sync.Timezone, "error", err)
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.Config.Sync.Schedule, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			s.syncAllShops(ctx)
		}),
		gocron.WithName(shopSyncJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("failed to schedule shop sync: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.Config.TokenRefresh.Schedule, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()

			refreshed, failed, err := s.RefreshTokens(taskCtx)
			if err != nil {
				s.Logger.Error("Token refresh sweep failed", "error", err)
				return
			}
			s.Logger.Info("Token refresh sweep completed", "refreshed", refreshed, "failed", failed)
		}),
		gocron.WithName(tokenRefreshJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("failed to schedule token refresh: %w", err)
	}

	if interval := s.Config.RateLimit.SweepInterval; interval > 0 {
		_, err = scheduler.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(func() {
				if ctx.Err() != nil {
					return
				}
				s.RateLimiter.Sweep(ctx)
			}),
			gocron.WithName(sweepJobName),
		)
		if err != nil {
			_ = scheduler.Shutdown()
			return nil, fmt.Errorf("failed to schedule rate limit sweep: %w", err)
		}
	}

	return scheduler, nil
}

func (s *SyncerImpl) syncAllShops(ctx context.Context) {
	accounts, err := s.AccountRepo.ListActive(ctx)
	if err != nil {
		s.Logger.Error("Failed to list active accounts", "error", err)
		return
	}

	shops := make(map[string]struct{})
	for _, acc := range accounts {
		shops[acc.Shop] = struct{}{}
	}
	if len(shops) == 0 {
		s.Logger.Info("No connected shops. Skipping.")
		return
	}

	names := make([]string, 0, len(shops))
	for shop := range shops {
		names = append(names, shop)
	}
	sort.Strings(names)

	s.Logger.Info("Starting scheduled sync", "shops", len(names))
	for _, shop := range names {
		if ctx.Err() != nil {
			return
		}
		res := s.SyncShop(ctx, shop)
		if len(res.Errors) > 0 {
			s.Telegram.SendMessageToDefaultChannel(syncFailureAlert(shop, res))
		}
	}
}

func (s *SyncerImpl) RefreshTokens(ctx context.Context) (refreshed, failed int, err error) {
	accounts, err := s.AccountRepo.ListActive(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, acc := range accounts {
		if ctx.Err() != nil {
			return refreshed, failed, ctx.Err()
		}

		updated := s.Tokens.MaybeRefresh(ctx, acc)
		switch {
		case updated.RefreshFailed:
			failed++
		case refreshedSince(acc, updated):
			refreshed++
		}
	}
	return refreshed, failed, nil
}

// refreshedSince reports whether updated carries a newer refresh time than before.
func refreshedSince(before, updated domain.Account) bool {
	if updated.LastRefreshedAt == nil {
		return false
	}
	return before.LastRefreshedAt == nil || updated.LastRefreshedAt.After(*before.LastRefreshedAt)
}

func syncFailureAlert(shop string, res syncer.ShopResult) string {
	var sb strings.Builder
	sb.WriteString("*Instagram sync failed*\n")
	sb.WriteString("Shop: `" + formatter.EscapeMarkdownV2(shop) + "`\n")
	sb.WriteString(fmt.Sprintf(
		"Accounts failed: %s, posts synced: %s\n",
		formatter.FormatNumber(len(res.Errors)),
		formatter.FormatNumber(res.Synced),
	))
	for _, e := range res.Errors {
		sb.WriteString(formatter.EscapeMarkdownV2(fmt.Sprintf("- @%s (#%d): %s", e.Username, e.ConfigID, e.Error)))
		sb.WriteString("\n")
	}
	return sb.String()
}
