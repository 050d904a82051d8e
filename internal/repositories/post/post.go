package post

import (
	"context"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
)

const table = "instagram_posts"

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Repository interface {
	// Upsert writes the post keyed by its external id. Re-syncing the same id
	// overwrites metrics and never duplicates the row.
	Upsert(ctx context.Context, post domain.Post) error

	// ListByShopUsernames returns the newest posts attributed to any of usernames.
	ListByShopUsernames(ctx context.Context, shop string, usernames []string, limit int) ([]domain.Post, error)

	DeleteByShop(ctx context.Context, shop string) (int64, error)
}
