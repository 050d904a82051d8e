package post

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/repositories"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
)

var columns = []string{
	"id", "shop", "username", "owner_username", "is_tagged", "caption", "media_url",
	"permalink", "timestamp", "media_type", "like_count", "comments_count",
	"impressions", "reach", "saved", "hashtags", "updated_at",
}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
	now    func() time.Time
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PostRepo"),
		now:    time.Now,
	}
}

var _ Repository = (*Pgx)(nil)

func upsertQuery(p domain.Post, now time.Time) sq.InsertBuilder {
	var timestamp *time.Time
	if !p.Timestamp.IsZero() {
		timestamp = &p.Timestamp
	}

	return repositories.SqBuilder.
		Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.Shop, p.Username, p.OwnerUsername, p.IsTagged, p.Caption, p.MediaURL,
			p.Permalink, timestamp, p.MediaType, p.LikeCount, p.CommentsCount,
			p.Impressions, p.Reach, p.Saved, p.Hashtags, now,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			shop = EXCLUDED.shop,
			username = EXCLUDED.username,
			owner_username = EXCLUDED.owner_username,
			is_tagged = EXCLUDED.is_tagged,
			caption = EXCLUDED.caption,
			media_url = EXCLUDED.media_url,
			permalink = EXCLUDED.permalink,
			timestamp = EXCLUDED.timestamp,
			media_type = EXCLUDED.media_type,
			like_count = EXCLUDED.like_count,
			comments_count = EXCLUDED.comments_count,
			impressions = EXCLUDED.impressions,
			reach = EXCLUDED.reach,
			saved = EXCLUDED.saved,
			hashtags = EXCLUDED.hashtags,
			updated_at = EXCLUDED.updated_at`)
}

func (p *Pgx) Upsert(ctx context.Context, post domain.Post) error {
	query, args, err := upsertQuery(post, p.now()).ToSql()
	if err != nil {
		return repositories.BadQuery(err)
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return pkgerrors.Database(err, "failed to upsert post "+post.ID)
	}
	return nil
}

func listQuery(shop string, usernames []string, limit int) sq.SelectBuilder {
	q := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"shop": shop, "username": usernames}).
		OrderBy("timestamp DESC NULLS LAST", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q
}

func (p *Pgx) ListByShopUsernames(ctx context.Context, shop string, usernames []string, limit int) ([]domain.Post, error) {
	posts := make([]domain.Post, 0)
	if len(usernames) == 0 {
		return posts, nil
	}

	query, args, err := listQuery(shop, usernames, limit).ToSql()
	if err != nil {
		return nil, repositories.BadQuery(err)
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Database(err, "failed to list posts")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			post      domain.Post
			timestamp *time.Time
		)
		if err := rows.Scan(
			&post.ID, &post.Shop, &post.Username, &post.OwnerUsername, &post.IsTagged,
			&post.Caption, &post.MediaURL, &post.Permalink, &timestamp, &post.MediaType,
			&post.LikeCount, &post.CommentsCount, &post.Impressions, &post.Reach,
			&post.Saved, &post.Hashtags, &post.UpdatedAt,
		); err != nil {
			return nil, pkgerrors.Database(err, "failed to scan post")
		}
		if timestamp != nil {
			post.Timestamp = *timestamp
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Database(err, "failed to list posts")
	}
	return posts, nil
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
		return 0, pkgerrors.Database(err, "failed to delete posts")
	}

	p.logger.Info("Deleted posts", "shop", shop, "count", tag.RowsAffected())
	return tag.RowsAffected(), nil
}
