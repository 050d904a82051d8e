package taggingimpl

import (
	"github.com/orgball2608/insta-shop-sync/internal/repositories/account"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/post"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/producttag"
	"github.com/orgball2608/insta-shop-sync/internal/tagging"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	AccountRepo    account.Repository
	PostRepo       post.Repository
	ProductTagRepo producttag.Repository
	Logger         logger.Logger
}

type TaggingImpl struct {
	accounts account.Repository
	posts    post.Repository
	tags     producttag.Repository
	logger   logger.Logger
}

var _ tagging.Service = (*TaggingImpl)(nil)

func New(opts Opts) *TaggingImpl {
	return &TaggingImpl{
		accounts: opts.AccountRepo,
		posts:    opts.PostRepo,
		tags:     opts.ProductTagRepo,
		logger:   opts.Logger.WithComponent("Tagging"),
	}
}

var Module = fx.Module("tagging",
	fx.Provide(
		New,
		fx.Annotate(
			func(t *TaggingImpl) tagging.Service {
				return t
			},
			fx.As(new(tagging.Service)),
		),
	),
)
