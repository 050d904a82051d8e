package tokenimpl

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/graphapi"
	mock_graphapi "github.com/orgball2608/insta-shop-sync/internal/graphapi/mocks"
	mock_account "github.com/orgball2608/insta-shop-sync/internal/repositories/account/mocks"
	"github.com/orgball2608/insta-shop-sync/internal/token"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

type fixture struct {
	graph    *mock_graphapi.MockCaller
	accounts *mock_account.MockRepository
	impl     *TokenImpl
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Instagram.AppID = "app-id"
	cfg.Instagram.AppSecret = "app-secret"
	cfg.Instagram.RedirectURI = "https://shop.example.com/api/instagram/callback"
	cfg.Instagram.DialogURL = "https://www.facebook.com/v19.0/dialog/oauth"
	cfg.Instagram.GraphURL = "https://graph.facebook.com/v19.0"

	f := fixture{
		graph:    mock_graphapi.NewMockCaller(ctrl),
		accounts: mock_account.NewMockRepository(ctrl),
	}
	f.impl = NewWithClock(Opts{
		Config:   cfg,
		Graph:    f.graph,
		Accounts: f.accounts,
		Logger:   logger.NewNop(),
	}, func() time.Time { return fixedNow })
	return f
}

func respondWith(tok domain.Token) func(context.Context, string, url.Values, any) error {
	return func(_ context.Context, _ string, _ url.Values, out any) error {
		*(out.(*domain.Token)) = tok
		return nil
	}
}

func TestGetAuthorizationURL(t *testing.T) {
	f := newFixture(t)

	raw, err := f.impl.GetAuthorizationURL("signed-state")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.facebook.com", u.Host)
	assert.Equal(t, "/v19.0/dialog/oauth", u.Path)
	q := u.Query()
	assert.Equal(t, "app-id", q.Get("client_id"))
	assert.Equal(t, "signed-state", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "https://shop.example.com/api/instagram/callback", q.Get("redirect_uri"))
	for _, scope := range token.Scopes {
		assert.Contains(t, q.Get("scope"), scope)
	}
}

func TestGetAuthorizationURL_RequiresState(t *testing.T) {
	f := newFixture(t)

	_, err := f.impl.GetAuthorizationURL("")

	assert.True(t, pkgerrors.IsInvalidArgument(err))
}

func TestExchangeCodeForToken_UpgradesToLongLived(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.graph.EXPECT().
			Get(gomock.Any(), "/oauth/access_token", gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, path string, params url.Values, out any) error {
				assert.Equal(t, "code123", params.Get("code"))
				assert.Equal(t, "app-secret", params.Get("client_secret"))
				return respondWith(domain.Token{AccessToken: "short", TokenType: "bearer", ExpiresIn: 3600})(ctx, path, params, out)
			}),
		f.graph.EXPECT().
			Get(gomock.Any(), "/oauth/access_token", gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, path string, params url.Values, out any) error {
				assert.Equal(t, "fb_exchange_token", params.Get("grant_type"))
				assert.Equal(t, "short", params.Get("fb_exchange_token"))
				return respondWith(domain.Token{AccessToken: "long", TokenType: "bearer"})(ctx, path, params, out)
			}),
	)

	tok, err := f.impl.ExchangeCodeForToken(context.Background(), "code123")

	require.NoError(t, err)
	assert.Equal(t, "long", tok.AccessToken)
	assert.Equal(t, token.DefaultExpiresIn, tok.ExpiresIn)
}

func TestExchangeCodeForToken_RequiresCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.impl.ExchangeCodeForToken(context.Background(), "")

	assert.True(t, pkgerrors.IsInvalidArgument(err))
}

func TestRefreshToken_WrapsUpstreamFailure(t *testing.T) {
	f := newFixture(t)
	f.graph.EXPECT().
		Get(gomock.Any(), "/oauth/access_token", gomock.Any(), gomock.Any()).
		Return(&graphapi.UpstreamError{StatusCode: 400, Code: 190, Message: "expired"})

	_, err := f.impl.RefreshToken(context.Background(), "old")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh failed")
	assert.True(t, errors.Is(err, pkgerrors.ErrUpstream))
	assert.True(t, pkgerrors.IsAuthExpired(err))
}

func TestMaybeRefresh(t *testing.T) {
	at := func(d time.Duration) *time.Time {
		v := fixedNow.Add(d)
		return &v
	}

	tests := []struct {
		name        string
		expiresAt   *time.Time
		wantRefresh bool
	}{
		{"no expiry", nil, false},
		{"far from expiry", at(30 * 24 * time.Hour), false},
		{"exactly seven days", at(token.RefreshWindow), false},
		{"seven days minus an hour", at(token.RefreshWindow - time.Hour), true},
		{"already expired", at(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			acc := domain.Account{ID: 7, Username: "acme", AccessToken: "old", TokenExpiresAt: tt.expiresAt}

			if tt.wantRefresh {
				f.graph.EXPECT().
					Get(gomock.Any(), "/oauth/access_token", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(domain.Token{AccessToken: "new", ExpiresIn: 86400}))
				f.accounts.EXPECT().
					UpdateToken(gomock.Any(), int64(7), "new", fixedNow.Add(24*time.Hour), fixedNow).
					Return(nil)
			}

			got := f.impl.MaybeRefresh(context.Background(), acc)

			assert.False(t, got.RefreshFailed)
			if !tt.wantRefresh {
				assert.Equal(t, acc, got)
				return
			}
			assert.Equal(t, "new", got.AccessToken)
			require.NotNil(t, got.TokenExpiresAt)
			assert.Equal(t, fixedNow.Add(24*time.Hour), *got.TokenExpiresAt)
			require.NotNil(t, got.LastRefreshedAt)
			assert.Equal(t, fixedNow, *got.LastRefreshedAt)
		})
	}
}

func TestMaybeRefresh_SoftFailure(t *testing.T) {
	expires := fixedNow.Add(time.Hour)
	acc := domain.Account{ID: 7, Username: "acme", AccessToken: "old", TokenExpiresAt: &expires}

	t.Run("upstream rejects refresh", func(t *testing.T) {
		f := newFixture(t)
		f.graph.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&graphapi.UpstreamError{StatusCode: 500})

		got := f.impl.MaybeRefresh(context.Background(), acc)

		assert.True(t, got.RefreshFailed)
		assert.Contains(t, got.RefreshError, "refresh failed")
		assert.Equal(t, "old", got.AccessToken)
		assert.Equal(t, &expires, got.TokenExpiresAt)
	})

	t.Run("token cannot be persisted", func(t *testing.T) {
		f := newFixture(t)
		f.graph.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondWith(domain.Token{AccessToken: "new"}))
		f.accounts.EXPECT().
			UpdateToken(gomock.Any(), int64(7), "new", gomock.Any(), gomock.Any()).
			Return(pkgerrors.Database(errors.New("conn refused"), "failed to update token"))

		got := f.impl.MaybeRefresh(context.Background(), acc)

		assert.True(t, got.RefreshFailed)
		assert.Equal(t, "old", got.AccessToken)
	})
}
