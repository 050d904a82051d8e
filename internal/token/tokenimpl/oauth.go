package tokenimpl

import (
	"context"
	"net/url"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/token"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

const exchangePath = "/oauth/access_token"

func (t *TokenImpl) GetAuthorizationURL(state string) (string, error) {
	if state == "" {
		return "", pkgerrors.InvalidArgument("state is required")
	}
	return t.oauth.AuthCodeURL(state), nil
}

func (t *TokenImpl) ExchangeCodeForToken(ctx context.Context, code string) (domain.Token, error) {
	if code == "" {
		return domain.Token{}, pkgerrors.InvalidArgument("authorization code is required")
	}

	params := url.Values{
		"client_id":     {t.oauth.ClientID},
		"client_secret": {t.oauth.ClientSecret},
		"redirect_uri":  {t.oauth.RedirectURL},
		"code":          {code},
	}

	var shortLived domain.Token
	if err := t.graph.Get(ctx, exchangePath, params, &shortLived); err != nil {
		return domain.Token{}, pkgerrors.Wrap(err, "code exchange failed")
	}
	if shortLived.AccessToken == "" {
		return domain.Token{}, &pkgerrors.Error{Code: pkgerrors.CodeUpstream, Message: "code exchange returned no access token"}
	}

	longLived, err := t.longLived(ctx, shortLived.AccessToken)
	if err != nil {
		return domain.Token{}, pkgerrors.Wrap(err, "long-lived token exchange failed")
	}

	t.logger.Info("Exchanged authorization code", "expires_in", longLived.ExpiresIn)
	return longLived, nil
}

func (t *TokenImpl) RefreshToken(ctx context.Context, current string) (domain.Token, error) {
	if current == "" {
		return domain.Token{}, pkgerrors.InvalidArgument("token is required")
	}

	refreshed, err := t.longLived(ctx, current)
	if err != nil {
		return domain.Token{}, pkgerrors.Wrap(err, "refresh failed")
	}
	return refreshed, nil
}

// longLived upgrades any valid token through the fb_exchange_token grant.
func (t *TokenImpl) longLived(ctx context.Context, accessToken string) (domain.Token, error) {
	params := url.Values{
		"grant_type":        {"fb_exchange_token"},
		"client_id":         {t.oauth.ClientID},
		"client_secret":     {t.oauth.ClientSecret},
		"fb_exchange_token": {accessToken},
	}

	var tok domain.Token
	if err := t.graph.Get(ctx, exchangePath, params, &tok); err != nil {
		return domain.Token{}, err
	}
	if tok.ExpiresIn <= 0 {
		tok.ExpiresIn = token.DefaultExpiresIn
	}
	return tok, nil
}
