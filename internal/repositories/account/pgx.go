package account

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/repositories"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
)

var columns = []string{
	"id", "shop", "username", "access_token", "active",
	"token_expires_at", "last_refreshed_at", "created_at",
}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("AccountRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func upsertQuery(acc domain.Account) sq.InsertBuilder {
	return repositories.SqBuilder.
		Insert(table).
		Columns("shop", "username", "access_token", "active", "token_expires_at", "last_refreshed_at").
		Values(acc.Shop, acc.Username, acc.AccessToken, true, acc.TokenExpiresAt, acc.LastRefreshedAt).
		Suffix(`ON CONFLICT (shop, username) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			active = TRUE,
			token_expires_at = EXCLUDED.token_expires_at,
			last_refreshed_at = EXCLUDED.last_refreshed_at
			RETURNING id, shop, username, access_token, active, token_expires_at, last_refreshed_at, created_at`)
}

func (p *Pgx) Upsert(ctx context.Context, acc domain.Account) (domain.Account, error) {
	query, args, err := upsertQuery(acc).ToSql()
	if err != nil {
		return domain.Account{}, repositories.BadQuery(err)
	}

	saved, err := scanAccount(p.pg.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Account{}, pkgerrors.Database(err, "failed to upsert account")
	}

	p.logger.Info("Account connected", "id", saved.ID, "shop", saved.Shop, "username", saved.Username)
	return saved, nil
}

func (p *Pgx) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Account{}, repositories.BadQuery(err)
	}

	acc, err := scanAccount(p.pg.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, pkgerrors.WrapWithCode(err, pkgerrors.CodeNotFound, "account not found")
		}
		return domain.Account{}, pkgerrors.Database(err, "failed to get account")
	}
	return acc, nil
}

func (p *Pgx) ListActiveByShop(ctx context.Context, shop string) ([]domain.Account, error) {
	return p.list(ctx, sq.Eq{"shop": shop, "active": true})
}

func (p *Pgx) ListActive(ctx context.Context) ([]domain.Account, error) {
	return p.list(ctx, sq.Eq{"active": true})
}

func (p *Pgx) list(ctx context.Context, where sq.Eq) ([]domain.Account, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, repositories.BadQuery(err)
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Database(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, pkgerrors.Database(err, "failed to scan account")
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Database(err, "failed to list accounts")
	}
	return accounts, nil
}

func (p *Pgx) UpdateUsername(ctx context.Context, id int64, username string) error {
	return p.update(ctx, id, sq.Eq{"username": username}, "failed to update username")
}

func (p *Pgx) UpdateToken(ctx context.Context, id int64, token string, expiresAt, refreshedAt time.Time) error {
	return p.update(ctx, id, sq.Eq{
		"access_token":      token,
		"token_expires_at":  expiresAt,
		"last_refreshed_at": refreshedAt,
	}, "failed to update token")
}

func (p *Pgx) Deactivate(ctx context.Context, id int64) error {
	return p.update(ctx, id, sq.Eq{"active": false}, "failed to deactivate account")
}

func (p *Pgx) update(ctx context.Context, id int64, set sq.Eq, failure string) error {
	query, args, err := repositories.SqBuilder.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.BadQuery(err)
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return pkgerrors.Database(err, failure)
	}
	return nil
}

func (p *Pgx) DeleteByShop(ctx context.Context, shop string) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return 0, repositories.BadQuery(err)
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, pkgerrors.Database(err, "failed to delete accounts")
	}
	return tag.RowsAffected(), nil
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID,
		&acc.Shop,
		&acc.Username,
		&acc.AccessToken,
		&acc.Active,
		&acc.TokenExpiresAt,
		&acc.LastRefreshedAt,
		&acc.CreatedAt,
	)
	return acc, err
}
