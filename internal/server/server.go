package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-shop-sync/internal/instagram"
	"github.com/orgball2608/insta-shop-sync/internal/ratelimit"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/account"
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
	"github.com/orgball2608/insta-shop-sync/internal/tagging"
	"github.com/orgball2608/insta-shop-sync/internal/token"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config      *config.Config
	Logger      logger.Logger
	Tokens      token.Manager
	Instagram   instagram.Client
	AccountRepo account.Repository
	Syncer      syncer.Syncer
	Tagging     tagging.Service
	RateLimiter *ratelimit.Limiter
}

type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	tokens      token.Manager
	instagram   instagram.Client
	accounts    account.Repository
	syncer      syncer.Syncer
	tagging     tagging.Service
	rateLimiter *ratelimit.Limiter
	now         func() time.Time

	engine *gin.Engine
}

func New(opts Opts) *Server {
	if opts.Config.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:         opts.Config,
		logger:      opts.Logger.WithComponent("HTTP"),
		tokens:      opts.Tokens,
		instagram:   opts.Instagram,
		accounts:    opts.AccountRepo,
		syncer:      opts.Syncer,
		tagging:     opts.Tagging,
		rateLimiter: opts.RateLimiter,
		now:         time.Now,
	}
	if opts.Config.Webhook.Secret == "" {
		s.logger.Warn("WEBHOOK_SECRET is empty, purge webhooks are not authenticated")
	}
	s.engine = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	{
		api.GET("/instagram/callback", s.callback)

		shops := api.Group("/shops/:shop")
		shops.GET("/instagram/connect", s.connect)
		shops.POST("/sync", s.sync)
		shops.GET("/posts", s.posts)
		shops.DELETE("/accounts/:id", s.disconnect)
		shops.GET("/products", s.associations)
		shops.PUT("/posts/:postID/products", s.setProducts)
		shops.DELETE("/posts/:postID/products", s.clearProducts)

		api.GET("/storefront/:shop/feed", s.storefrontFeed)
	}

	// Purge routes delete a shop's data, so they only run behind the signature check.
	webhooks := r.Group("/webhooks", s.verifyWebhook())
	{
		webhooks.POST("/app-uninstalled", s.purgeWebhook)
		webhooks.POST("/shop-redact", s.purgeWebhook)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Debug("Request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Run binds the listener on start and drains in-flight requests on stop.
func Run(lc fx.Lifecycle, s *Server, cfg *config.Config, log logger.Logger) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			log.Info("Starting server", "addr", srv.Addr)

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(Run),
)
