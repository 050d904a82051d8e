package account

import (
	"context"
	"time"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
)

const table = "instagram_accounts"

//go:generate go run go.uber.org/mock/mockgen -source=account.go -destination=mocks/mock.go
type Repository interface {
	// Upsert inserts a connected account or, when (shop, username) exists,
	// replaces its token and reactivates it.
	Upsert(ctx context.Context, acc domain.Account) (domain.Account, error)

	GetByID(ctx context.Context, id int64) (domain.Account, error)

	ListActiveByShop(ctx context.Context, shop string) ([]domain.Account, error)

	// ListActive returns every active account across all shops.
	ListActive(ctx context.Context) ([]domain.Account, error)

	UpdateUsername(ctx context.Context, id int64, username string) error

	UpdateToken(ctx context.Context, id int64, token string, expiresAt, refreshedAt time.Time) error

	// Deactivate sets active=false. The row is kept.
	Deactivate(ctx context.Context, id int64) error

	// DeleteByShop physically removes every account of the shop.
	DeleteByShop(ctx context.Context, shop string) (int64, error)
}
