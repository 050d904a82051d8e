package domain

import "time"

// Account is a merchant-owned Instagram Business account linked to a shop.
type Account struct {
	ID              int64
	Shop            string
	Username        string
	AccessToken     string
	Active          bool
	TokenExpiresAt  *time.Time
	LastRefreshedAt *time.Time
	CreatedAt       time.Time

	// Set by the token manager when a proactive refresh failed. Not persisted.
	RefreshFailed bool
	RefreshError  string
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}
