package syncerimpl

import (
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/instagram"
	"github.com/orgball2608/insta-shop-sync/internal/ratelimit"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/account"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/post"
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
	"github.com/orgball2608/insta-shop-sync/internal/telegram"
	"github.com/orgball2608/insta-shop-sync/internal/token"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Instagram   instagram.Client
	Tokens      token.Manager
	AccountRepo account.Repository
	PostRepo    post.Repository
	Telegram    telegram.Client
	RateLimiter *ratelimit.Limiter
	Logger      logger.Logger
	Config      *config.Config
}

type SyncerImpl struct {
	Instagram   instagram.Client
	Tokens      token.Manager
	AccountRepo account.Repository
	PostRepo    post.Repository
	Telegram    telegram.Client
	RateLimiter *ratelimit.Limiter
	Logger      logger.Logger
	Config      *config.Config
}

func New(opts Opts) *SyncerImpl {
	return &SyncerImpl{
		Instagram:   opts.Instagram,
		Tokens:      opts.Tokens,
		AccountRepo: opts.AccountRepo,
		PostRepo:    opts.PostRepo,
		Telegram:    opts.Telegram,
		RateLimiter: opts.RateLimiter,
		Logger:      opts.Logger.WithComponent("Syncer"),
		Config:      opts.Config,
	}
}

var _ syncer.Syncer = (*SyncerImpl)(nil)

func (s *SyncerImpl) maxPosts() int {
	if s.Config.Instagram.MaxPosts > 0 {
		return s.Config.Instagram.MaxPosts
	}
	return instagram.DefaultMaxItems
}

func (s *SyncerImpl) insightConcurrency() int {
	return max(s.Config.Sync.InsightConcurrency, 1)
}

func (s *SyncerImpl) accountConcurrency() int {
	return max(s.Config.Sync.Concurrency, 1)
}

func (s *SyncerImpl) syncTimeout() time.Duration {
	return s.Config.Sync.Timeout
}
