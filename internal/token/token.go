package token

import (
	"context"
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
)

const (
	// RefreshWindow is how close to expiry a token must be before it is refreshed.
	RefreshWindow = 7 * 24 * time.Hour

	// DefaultExpiresIn is used when the upstream omits expires_in (about 60 days).
	DefaultExpiresIn int64 = 5184000
)

// Scopes requested on the OAuth dialog.
var Scopes = []string{
	"instagram_basic",
	"instagram_manage_insights",
	"pages_show_list",
	"pages_read_engagement",
	"business_management",
}

//go:generate go run go.uber.org/mock/mockgen -source=token.go -destination=mocks/mock.go
type Manager interface {
	GetAuthorizationURL(state string) (string, error)

	// ExchangeCodeForToken trades an authorization code for a long-lived token.
	// The intermediate short-lived token is never returned.
	ExchangeCodeForToken(ctx context.Context, code string) (domain.Token, error)

	RefreshToken(ctx context.Context, current string) (domain.Token, error)

	// MaybeRefresh refreshes the account token when it expires within
	// RefreshWindow. Refresh failures never escape: the original account is
	// returned with RefreshFailed set.
	MaybeRefresh(ctx context.Context, account domain.Account) domain.Account
}
