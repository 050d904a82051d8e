package tokenimpl

import (
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/graphapi"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/account"
	"github.com/orgball2608/insta-shop-sync/internal/token"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

type TokenImpl struct {
	graph    graphapi.Caller
	accounts account.Repository
	oauth    *oauth2.Config
	logger   logger.Logger
	now      func() time.Time
}

type Opts struct {
	fx.In

	Config   *config.Config
	Graph    graphapi.Caller
	Accounts account.Repository
	Logger   logger.Logger
}

func New(opts Opts) *TokenImpl {
	return NewWithClock(opts, time.Now)
}

// NewWithClock is New with an explicit time source.
func NewWithClock(opts Opts, now func() time.Time) *TokenImpl {
	ig := opts.Config.Instagram
	return &TokenImpl{
		graph:    opts.Graph,
		accounts: opts.Accounts,
		oauth: &oauth2.Config{
			ClientID:     ig.AppID,
			ClientSecret: ig.AppSecret,
			RedirectURL:  ig.RedirectURI,
			Scopes:       token.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   ig.DialogURL,
				TokenURL:  ig.GraphURL + "/oauth/access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		logger: opts.Logger.WithComponent("TokenManager"),
		now:    now,
	}
}

var _ token.Manager = (*TokenImpl)(nil)

var Module = fx.Module("token",
	fx.Provide(
		fx.Annotate(New, fx.As(new(token.Manager))),
	),
)
