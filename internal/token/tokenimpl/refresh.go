package tokenimpl

import (
	"context"
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/token"
)

func (t *TokenImpl) MaybeRefresh(ctx context.Context, acc domain.Account) domain.Account {
	if acc.TokenExpiresAt == nil {
		return acc
	}

	now := t.now()
	untilExpiry := acc.TokenExpiresAt.Sub(now)
	if untilExpiry >= token.RefreshWindow {
		return acc
	}

	t.logger.Info("Token near expiry, refreshing",
		"account_id", acc.ID,
		"username", acc.Username,
		"expires_in", untilExpiry.Round(time.Minute).String(),
	)

	refreshed, err := t.RefreshToken(ctx, acc.AccessToken)
	if err != nil {
		t.logger.Warn("Token refresh failed, continuing with current token", "account_id", acc.ID, "error", err)
		return softFailure(acc, err)
	}

	expiresAt := now.Add(time.Duration(refreshed.ExpiresIn) * time.Second)
	if err := t.accounts.UpdateToken(ctx, acc.ID, refreshed.AccessToken, expiresAt, now); err != nil {
		t.logger.Warn("Failed to persist refreshed token", "account_id", acc.ID, "error", err)
		return softFailure(acc, err)
	}

	acc.AccessToken = refreshed.AccessToken
	acc.TokenExpiresAt = &expiresAt
	acc.LastRefreshedAt = &now
	acc.RefreshFailed = false
	acc.RefreshError = ""

	t.logger.Info("Token refreshed", "account_id", acc.ID, "expires_at", expiresAt)
	return acc
}

func softFailure(acc domain.Account, err error) domain.Account {
	acc.RefreshFailed = true
	acc.RefreshError = "token refresh failed: " + err.Error()
	return acc
}
