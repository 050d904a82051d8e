package taggingimpl

import (
	"context"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

func (t *TaggingImpl) StorefrontFeed(ctx context.Context, shop string, limit int) ([]domain.StorefrontPost, error) {
	accounts, err := t.accounts.ListActiveByShop(ctx, shop)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return []domain.StorefrontPost{}, nil
	}

	usernames := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		usernames = append(usernames, acc.Username)
	}

	posts, err := t.posts.ListByShopUsernames(ctx, shop, usernames, limit)
	if err != nil {
		return nil, err
	}

	set, err := t.tags.Get(ctx, shop)
	if err != nil {
		return nil, err
	}

	feed := make([]domain.StorefrontPost, 0, len(posts))
	for _, p := range posts {
		products := set.Details[p.ID]
		if products == nil {
			products = []domain.ProductDetail{}
		}
		feed = append(feed, domain.StorefrontPost{
			ID:        p.ID,
			Username:  p.OwnerUsername,
			Caption:   p.Caption,
			MediaURL:  p.MediaURL,
			Permalink: p.Permalink,
			MediaType: p.MediaType,
			LikeCount: p.LikeCount,
			Products:  products,
		})
	}
	return feed, nil
}

func (t *TaggingImpl) PurgeShop(ctx context.Context, shop string) error {
	if shop == "" {
		return pkgerrors.InvalidArgument("shop is required")
	}

	posts, err := t.posts.DeleteByShop(ctx, shop)
	if err != nil {
		return err
	}
	accounts, err := t.accounts.DeleteByShop(ctx, shop)
	if err != nil {
		return err
	}
	if err := t.tags.Delete(ctx, shop); err != nil {
		return err
	}

	t.logger.Info("Shop data purged", "shop", shop, "accounts", accounts, "posts", posts)
	return nil
}
