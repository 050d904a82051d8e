package instagramimpl

import (
	"github.com/orgball2608/insta-shop-sync/internal/graphapi"
	"github.com/orgball2608/insta-shop-sync/internal/instagram"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"go.uber.org/fx"
)

const mediaFields = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp,username,like_count,comments_count"

type IgImpl struct {
	graph  graphapi.Caller
	logger logger.Logger
}

type Opts struct {
	fx.In

	Graph  graphapi.Caller
	Logger logger.Logger
}

func New(opts Opts) *IgImpl {
	return &IgImpl{
		graph:  opts.Graph,
		logger: opts.Logger.WithComponent("InstagramClient"),
	}
}

var _ instagram.Client = (*IgImpl)(nil)
