package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE categories (
		id BIGSERIAL PRIMARY KEY,
		category_id VARCHAR NOT NULL UNIQUE,
		name VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE TABLE users (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR NOT NULL UNIQUE,
		name VARCHAR NOT NULL,
		email VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE TABLE accounts (
		id BIGSERIAL PRIMARY KEY,
		account_id VARCHAR NOT NULL UNIQUE,
		username VARCHAR NOT NULL,
		follows_count INTEGER NOT NULL DEFAULT 0,
		followers_count INTEGER NOT NULL DEFAULT 0,
		media_count INTEGER NOT NULL DEFAULT 0,
		profile_picture_url TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		biography TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE TABLE pages (
		id BIGSERIAL PRIMARY KEY,
		page_id VARCHAR NOT NULL UNIQUE,
		name VARCHAR NOT NULL,
		access_token TEXT NOT NULL DEFAULT '',
		tasks JSONB NOT NULL DEFAULT '[]',
		account_id BIGINT REFERENCES accounts(id),
		user_id BIGINT REFERENCES users(id),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE TABLE page_categories (
		page_id BIGINT NOT NULL REFERENCES pages(id) ON DELETE CASCADE,
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		PRIMARY KEY (page_id, category_id)
	);

	CREATE TABLE media (
		id BIGSERIAL PRIMARY KEY,
		media_id VARCHAR NOT NULL UNIQUE,
		username VARCHAR NOT NULL DEFAULT '',
		caption TEXT NOT NULL DEFAULT '',
		kind VARCHAR NOT NULL,
		media_url TEXT NOT NULL DEFAULT '',
		timestamp VARCHAR NOT NULL DEFAULT '',
		like_count INTEGER NOT NULL DEFAULT 0,
		comments_count INTEGER NOT NULL DEFAULT 0,
		account_id BIGINT NOT NULL REFERENCES accounts(id),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX idx_media_account_id ON media(account_id);

	CREATE TABLE comments (
		id BIGSERIAL PRIMARY KEY,
		comment_id VARCHAR NOT NULL UNIQUE,
		text TEXT NOT NULL DEFAULT '',
		username VARCHAR NOT NULL DEFAULT '',
		like_count INTEGER NOT NULL DEFAULT 0,
		timestamp VARCHAR NOT NULL DEFAULT '',
		media_id BIGINT REFERENCES media(id),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX idx_comments_media_id ON comments(media_id);

	CREATE TABLE stories (
		id BIGSERIAL PRIMARY KEY,
		story_id VARCHAR NOT NULL UNIQUE,
		media_type VARCHAR NOT NULL DEFAULT '',
		media_url TEXT NOT NULL DEFAULT '',
		timestamp VARCHAR NOT NULL DEFAULT '',
		account_id BIGINT NOT NULL REFERENCES accounts(id),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX idx_stories_account_id ON stories(account_id);

	CREATE TABLE insights (
		id BIGSERIAL PRIMARY KEY,
		insight_id VARCHAR NOT NULL UNIQUE,
		name VARCHAR NOT NULL,
		period VARCHAR NOT NULL DEFAULT '',
		metric_values JSONB NOT NULL DEFAULT '[]',
		title VARCHAR NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		kind VARCHAR NOT NULL,
		account_id BIGINT REFERENCES accounts(id),
		media_id BIGINT REFERENCES media(id),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		CONSTRAINT insights_one_owner CHECK (
			(kind = 'account' AND account_id IS NOT NULL AND media_id IS NULL) OR
			(kind = 'media' AND media_id IS NOT NULL AND account_id IS NULL)
		)
	);
	CREATE INDEX idx_insights_account_id ON insights(account_id);
	CREATE INDEX idx_insights_media_id ON insights(media_id);

	CREATE TABLE post_publications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id),
		file_url TEXT NOT NULL,
		caption TEXT NOT NULL DEFAULT '',
		kind VARCHAR NOT NULL,
		carousel BOOLEAN NOT NULL DEFAULT FALSE,
		published_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE TABLE story_publications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id),
		file_url TEXT NOT NULL,
		kind VARCHAR NOT NULL,
		published_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE TABLE comment_publications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id),
		media_id BIGINT NOT NULL REFERENCES media(id),
		text TEXT NOT NULL,
		published_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE comment_publications;
	DROP TABLE story_publications;
	DROP TABLE post_publications;
	DROP TABLE insights;
	DROP TABLE stories;
	DROP TABLE comments;
	DROP TABLE media;
	DROP TABLE page_categories;
	DROP TABLE pages;
	DROP TABLE accounts;
	DROP TABLE users;
	DROP TABLE categories;
	`)
	if err != nil {
		return err
	}
	return nil
}
