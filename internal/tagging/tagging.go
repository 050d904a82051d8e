package tagging

import (
	"context"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=tagging.go -destination=mocks/mock.go
type Service interface {
	// SetPostProducts replaces the ordered product set of a post. An empty
	// set removes the post from both blobs. Unchanged sets are not written.
	SetPostProducts(ctx context.Context, shop, postID string, products []domain.ProductDetail) (domain.ProductTagSet, error)

	Associations(ctx context.Context, shop string) (domain.ProductTagSet, error)

	// StorefrontFeed returns the shop's displayable posts with their tagged products.
	StorefrontFeed(ctx context.Context, shop string, limit int) ([]domain.StorefrontPost, error)

	// PurgeShop physically deletes everything stored for the shop.
	PurgeShop(ctx context.Context, shop string) error
}
