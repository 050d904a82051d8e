package account

import (
	"testing"
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertQuery_ReactivatesOnConflict(t *testing.T) {
	expires := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	acc := domain.Account{
		Shop:           "acme.myshopify.com",
		Username:       "acme",
		AccessToken:    "tok",
		TokenExpiresAt: &expires,
	}

	query, args, err := upsertQuery(acc).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO instagram_accounts (shop,username,access_token,active,token_expires_at,last_refreshed_at) VALUES ($1,$2,$3,$4,$5,$6)")
	assert.Contains(t, query, "ON CONFLICT (shop, username) DO UPDATE SET")
	assert.Contains(t, query, "active = TRUE")
	assert.Contains(t, query, "RETURNING id")
	require.Len(t, args, 6)
	assert.Equal(t, "acme.myshopify.com", args[0])
	assert.Equal(t, true, args[3])
	assert.Equal(t, &expires, args[4])
}
