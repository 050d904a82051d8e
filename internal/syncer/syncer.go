package syncer

import (
	"context"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
)

// Result is the settled outcome of syncing several accounts.
type Result struct {
	Posts  []domain.EnrichedPost
	Errors []domain.SyncError
}

// ShopResult is what a merchant sees after a sync of their shop.
type ShopResult struct {
	// Configured is false when the shop has no active account or the store is unreachable.
	Configured bool
	Posts      []domain.Post
	Errors     []domain.SyncError
	// Synced counts posts written during this run.
	Synced int
}

//go:generate go run go.uber.org/mock/mockgen -source=syncer.go -destination=mocks/mock.go
type Syncer interface {
	// SyncAccount fetches published and tagged media of one account with their
	// insights and upserts them. An auth failure deactivates the account.
	// Every failure is returned so the caller can record it.
	SyncAccount(ctx context.Context, account domain.Account) ([]domain.EnrichedPost, error)

	// SyncAll syncs every account concurrently and waits for all of them.
	// One account failing never fails the others.
	SyncAll(ctx context.Context, accounts []domain.Account) Result

	// SyncShop syncs the shop's active accounts and reads the display set back
	// from the store.
	SyncShop(ctx context.Context, shop string) ShopResult

	// ShopPosts reads the display set without syncing.
	ShopPosts(ctx context.Context, shop string) ShopResult

	// RefreshTokens proactively refreshes tokens of every active account.
	RefreshTokens(ctx context.Context) (refreshed, failed int, err error)
}
