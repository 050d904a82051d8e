package syncerimpl

import (
	"context"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
)

func (s *SyncerImpl) SyncShop(ctx context.Context, shop string) syncer.ShopResult {
	accounts, err := s.AccountRepo.ListActiveByShop(ctx, shop)
	if err != nil {
		s.Logger.Error("Failed to load accounts", "shop", shop, "error", err)
		return notConfigured()
	}
	if len(accounts) == 0 {
		return notConfigured()
	}

	synced := s.SyncAll(ctx, accounts)

	view := s.ShopPosts(ctx, shop)
	view.Errors = synced.Errors
	view.Synced = len(synced.Posts)
	return view
}

// ShopPosts reads posts of the shop's currently active usernames from the store.
// An account deactivated during the sync is excluded even if its posts were just written.
func (s *SyncerImpl) ShopPosts(ctx context.Context, shop string) syncer.ShopResult {
	accounts, err := s.AccountRepo.ListActiveByShop(ctx, shop)
	if err != nil {
		s.Logger.Error("Failed to load accounts", "shop", shop, "error", err)
		return notConfigured()
	}
	if len(accounts) == 0 {
		return notConfigured()
	}

	usernames := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		usernames = append(usernames, acc.Username)
	}

	posts, err := s.PostRepo.ListByShopUsernames(ctx, shop, usernames, s.Config.Sync.DisplayLimit)
	if err != nil {
		s.Logger.Error("Failed to read posts", "shop", shop, "error", err)
		return notConfigured()
	}

	return syncer.ShopResult{
		Configured: true,
		Posts:      posts,
		Errors:     make([]domain.SyncError, 0),
	}
}

func notConfigured() syncer.ShopResult {
	return syncer.ShopResult{
		Posts:  make([]domain.Post, 0),
		Errors: make([]domain.SyncError, 0),
	}
}
