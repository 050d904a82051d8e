package producttag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/repositories"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("ProductTagRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Get(ctx context.Context, shop string) (domain.ProductTagSet, error) {
	query, args, err := repositories.SqBuilder.
		Select("tags", "details").
		From(table).
		Where(sq.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return domain.ProductTagSet{}, repositories.BadQuery(err)
	}

	var tagsRaw, detailsRaw []byte
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&tagsRaw, &detailsRaw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewProductTagSet(), nil
		}
		return domain.ProductTagSet{}, pkgerrors.Database(err, "failed to get product tags")
	}

	set := domain.NewProductTagSet()
	if err := json.Unmarshal(tagsRaw, &set.Tags); err != nil {
		return domain.ProductTagSet{}, pkgerrors.Database(err, "malformed product tags")
	}
	if err := json.Unmarshal(detailsRaw, &set.Details); err != nil {
		return domain.ProductTagSet{}, pkgerrors.Database(err, "malformed product details")
	}
	if set.Tags == nil {
		set.Tags = domain.ProductTags{}
	}
	if set.Details == nil {
		set.Details = domain.ProductDetails{}
	}
	return set, nil
}

func saveQuery(shop string, set domain.ProductTagSet) (sq.InsertBuilder, error) {
	tags, err := json.Marshal(set.Tags)
	if err != nil {
		return sq.InsertBuilder{}, fmt.Errorf("failed to encode tags: %w", err)
	}
	details, err := json.Marshal(set.Details)
	if err != nil {
		return sq.InsertBuilder{}, fmt.Errorf("failed to encode details: %w", err)
	}

	return repositories.SqBuilder.
		Insert(table).
		Columns("shop", "tags", "details", "updated_at").
		Values(shop, string(tags), string(details), sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (shop) DO UPDATE SET
			tags = EXCLUDED.tags,
			details = EXCLUDED.details,
			updated_at = EXCLUDED.updated_at`), nil
}

func (p *Pgx) Save(ctx context.Context, shop string, set domain.ProductTagSet) error {
	builder, err := saveQuery(shop, set)
	if err != nil {
		return pkgerrors.InvalidArgument(err.Error())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return repositories.BadQuery(err)
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return pkgerrors.Database(err, "failed to save product tags")
	}
	return nil
}

func (p *Pgx) Delete(ctx context.Context, shop string) error {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return repositories.BadQuery(err)
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return pkgerrors.Database(err, "failed to delete product tags")
	}
	return nil
}
