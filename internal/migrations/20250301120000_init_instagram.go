package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitInstagram, downInitInstagram)
}

func upInitInstagram(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS instagram_accounts (
			id                BIGSERIAL PRIMARY KEY,
			shop              VARCHAR NOT NULL,
			username          VARCHAR NOT NULL,
			access_token      TEXT NOT NULL,
			active            BOOLEAN NOT NULL DEFAULT TRUE,
			token_expires_at  TIMESTAMP WITH TIME ZONE,
			last_refreshed_at TIMESTAMP WITH TIME ZONE,
			created_at        TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			CONSTRAINT instagram_accounts_shop_username_key UNIQUE (shop, username)
		);
		CREATE INDEX IF NOT EXISTS instagram_accounts_active_idx ON instagram_accounts (shop) WHERE active;

		CREATE TABLE IF NOT EXISTS instagram_posts (
			id             VARCHAR PRIMARY KEY,
			shop           VARCHAR NOT NULL,
			username       VARCHAR NOT NULL,
			owner_username VARCHAR NOT NULL DEFAULT '',
			is_tagged      BOOLEAN NOT NULL DEFAULT FALSE,
			caption        TEXT NOT NULL DEFAULT '',
			media_url      TEXT NOT NULL DEFAULT '',
			permalink      TEXT NOT NULL DEFAULT '',
			timestamp      TIMESTAMP WITH TIME ZONE,
			media_type     VARCHAR NOT NULL DEFAULT '',
			like_count     INTEGER NOT NULL DEFAULT 0,
			comments_count INTEGER NOT NULL DEFAULT 0,
			impressions    INTEGER,
			reach          INTEGER,
			saved          INTEGER,
			hashtags       TEXT,
			updated_at     TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS instagram_posts_shop_username_idx ON instagram_posts (shop, username);

		CREATE TABLE IF NOT EXISTS shop_product_tags (
			shop       VARCHAR PRIMARY KEY,
			tags       JSONB NOT NULL DEFAULT '{}'::jsonb,
			details    JSONB NOT NULL DEFAULT '{}'::jsonb,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInitInstagram(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		DROP TABLE IF EXISTS shop_product_tags;
		DROP TABLE IF EXISTS instagram_posts;
		DROP TABLE IF EXISTS instagram_accounts;
	`)
	if err != nil {
		return err
	}
	return nil
}
