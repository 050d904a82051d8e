package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/token"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

func (s *Server) healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) connect(c *gin.Context) {
	shop := c.Param("shop")

	res := s.rateLimiter.Check(c.Request.Context(), "connect:"+shop, s.cfg.RateLimit.ConnectMax, s.cfg.RateLimit.ConnectWindow)
	c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	if !res.Allowed {
		retryAfter := int(res.ResetAt.Sub(s.now()).Seconds()) + 1
		c.Header("Retry-After", strconv.Itoa(max(retryAfter, 1)))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: "too many connect attempts, try again later"})
		return
	}

	state, err := signState(shop, s.cfg.Instagram.AppSecret, s.now())
	if err != nil {
		s.respondError(c, err)
		return
	}

	url, err := s.tokens.GetAuthorizationURL(state)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// callback completes the OAuth round trip and stores the connected account.
func (s *Server) callback(c *gin.Context) {
	if reason := c.Query("error_reason"); reason != "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "authorization denied: " + reason})
		return
	}

	shop, err := verifyState(c.Query("state"), s.cfg.Instagram.AppSecret, s.now())
	if err != nil {
		s.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	tok, err := s.tokens.ExchangeCodeForToken(ctx, c.Query("code"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	igID, err := s.instagram.BusinessAccountID(ctx, tok.AccessToken)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if igID == "" {
		s.respondError(c, pkgerrors.InvalidArgument("no Instagram business account is linked to this login"))
		return
	}

	username, err := s.instagram.Username(ctx, igID, tok.AccessToken)
	if err != nil {
		s.respondError(c, err)
		return
	}

	expiresIn := tok.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = token.DefaultExpiresIn
	}
	now := s.now()
	expiresAt := now.Add(time.Duration(expiresIn) * time.Second)

	acc, err := s.accounts.Upsert(ctx, domain.Account{
		Shop:            shop,
		Username:        username,
		AccessToken:     tok.AccessToken,
		Active:          true,
		TokenExpiresAt:  &expiresAt,
		LastRefreshedAt: &now,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.logger.Info("Instagram account connected", "shop", shop, "username", username, "account_id", acc.ID)
	c.JSON(http.StatusOK, newAccountView(acc))
}

func (s *Server) sync(c *gin.Context) {
	res := s.syncer.SyncShop(c.Request.Context(), c.Param("shop"))
	c.JSON(http.StatusOK, newShopView(res))
}

func (s *Server) posts(c *gin.Context) {
	res := s.syncer.ShopPosts(c.Request.Context(), c.Param("shop"))
	c.JSON(http.StatusOK, newShopView(res))
}

func (s *Server) disconnect(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.respondError(c, pkgerrors.InvalidArgument("account id must be numeric"))
		return
	}

	ctx := c.Request.Context()
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	// Accounts of other shops are reported as missing.
	if acc.Shop != c.Param("shop") {
		s.respondError(c, &pkgerrors.Error{Code: pkgerrors.CodeNotFound, Message: "account not found"})
		return
	}

	if err := s.accounts.Deactivate(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	s.logger.Info("Instagram account disconnected", "shop", acc.Shop, "account_id", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) associations(c *gin.Context) {
	set, err := s.tagging.Associations(c.Request.Context(), c.Param("shop"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

type setProductsRequest struct {
	Products []domain.ProductDetail `json:"products"`
}

func (s *Server) setProducts(c *gin.Context) {
	var req setProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, pkgerrors.WrapWithCode(err, pkgerrors.CodeInvalidArgument, "malformed products payload"))
		return
	}

	postID := c.Param("postID")
	set, err := s.tagging.SetPostProducts(c.Request.Context(), c.Param("shop"), postID, req.Products)
	if err != nil {
		s.respondError(c, err)
		return
	}

	products := set.Details[postID]
	if products == nil {
		products = []domain.ProductDetail{}
	}
	c.JSON(http.StatusOK, gin.H{"postId": postID, "products": products})
}

func (s *Server) clearProducts(c *gin.Context) {
	if _, err := s.tagging.SetPostProducts(c.Request.Context(), c.Param("shop"), c.Param("postID"), nil); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) storefrontFeed(c *gin.Context) {
	limit := s.cfg.Sync.DisplayLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.respondError(c, pkgerrors.InvalidArgument("limit must be a positive integer"))
			return
		}
		limit = min(n, s.cfg.Sync.DisplayLimit)
	}

	feed, err := s.tagging.StorefrontFeed(c.Request.Context(), c.Param("shop"), limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, gin.H{"posts": feed})
}

type shopWebhook struct {
	ShopDomain string `json:"shop_domain"`
}

func (s *Server) purgeWebhook(c *gin.Context) {
	var payload shopWebhook
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ShopDomain == "" {
		s.respondError(c, pkgerrors.InvalidArgument("shop_domain is required"))
		return
	}

	if err := s.tagging.PurgeShop(c.Request.Context(), payload.ShopDomain); err != nil {
		s.respondError(c, err)
		return
	}

	s.logger.Info("Shop data purged by webhook", "shop", payload.ShopDomain, "topic", c.FullPath())
	c.Status(http.StatusOK)
}
