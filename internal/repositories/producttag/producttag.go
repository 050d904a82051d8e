package producttag

import (
	"context"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
)

const table = "shop_product_tags"

//go:generate go run go.uber.org/mock/mockgen -source=producttag.go -destination=mocks/mock.go
type Repository interface {
	// Get returns the shop's association and details blobs, empty when none stored.
	Get(ctx context.Context, shop string) (domain.ProductTagSet, error)

	Save(ctx context.Context, shop string, set domain.ProductTagSet) error

	Delete(ctx context.Context, shop string) error
}
