package taggingimpl

import (
	"context"
	"slices"
	"strings"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

func (t *TaggingImpl) SetPostProducts(ctx context.Context, shop, postID string, products []domain.ProductDetail) (domain.ProductTagSet, error) {
	if strings.TrimSpace(shop) == "" || strings.TrimSpace(postID) == "" {
		return domain.ProductTagSet{}, pkgerrors.InvalidArgument("shop and post id are required")
	}

	set, err := t.tags.Get(ctx, shop)
	if err != nil {
		return domain.ProductTagSet{}, err
	}

	ids, details := dedupe(products)
	if !changed(set, postID, ids, details) {
		t.logger.Debug("Product set unchanged, skipping write", "shop", shop, "post_id", postID)
		return set, nil
	}

	if len(ids) == 0 {
		delete(set.Tags, postID)
		delete(set.Details, postID)
	} else {
		set.Tags[postID] = ids
		set.Details[postID] = details
	}

	if err := t.tags.Save(ctx, shop, set); err != nil {
		return domain.ProductTagSet{}, err
	}

	t.logger.Info("Post products updated", "shop", shop, "post_id", postID, "products", len(ids))
	return set, nil
}

func (t *TaggingImpl) Associations(ctx context.Context, shop string) (domain.ProductTagSet, error) {
	return t.tags.Get(ctx, shop)
}

// dedupe keeps the first occurrence of every product id and drops blank ids.
func dedupe(products []domain.ProductDetail) ([]string, []domain.ProductDetail) {
	seen := make(map[string]struct{}, len(products))
	ids := make([]string, 0, len(products))
	details := make([]domain.ProductDetail, 0, len(products))

	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
		details = append(details, p)
	}
	return ids, details
}

func changed(set domain.ProductTagSet, postID string, ids []string, details []domain.ProductDetail) bool {
	currentIDs, tagged := set.Tags[postID]
	_, described := set.Details[postID]
	if len(ids) == 0 {
		return tagged || described
	}
	return !slices.Equal(currentIDs, ids) || !slices.Equal(set.Details[postID], details)
}
