package db

import (
	"database/sql"
)

// MigrateUp creates the schema. Statements are idempotent so startup
// can run this unconditionally.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id            BIGSERIAL PRIMARY KEY,
    title         TEXT NOT NULL,
    content       TEXT NOT NULL DEFAULT '',
    author_id     BIGINT NOT NULL DEFAULT 0,
    hits          BIGINT NOT NULL DEFAULT 0,
    tags          TEXT NOT NULL DEFAULT '',
    category      TEXT NOT NULL DEFAULT '',
    status        VARCHAR(20) NOT NULL DEFAULT 'draft',
    type          VARCHAR(20) NOT NULL DEFAULT 'post',
    allow_comment BOOLEAN NOT NULL DEFAULT TRUE,
    comment_count BIGINT NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    id          BIGSERIAL PRIMARY KEY,
    article_id  BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    parent_id   BIGINT REFERENCES comments(id) ON DELETE SET NULL,
    content     TEXT NOT NULL,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL DEFAULT '',
    website     TEXT NOT NULL DEFAULT '',
    ip          TEXT NOT NULL DEFAULT '',
    agent       TEXT NOT NULL DEFAULT '',
    agree       BIGINT NOT NULL DEFAULT 0,
    disagree    BIGINT NOT NULL DEFAULT 0,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// 公開記事一覧は ORDER BY created_at DESC で取得する
		`CREATE INDEX IF NOT EXISTS idx_articles_status_type_created_at ON articles(status, type, created_at DESC)`,
		// ページはタイトル引き
		`CREATE INDEX IF NOT EXISTS idx_articles_type_title ON articles(type, title)`,
		// 記事別コメント一覧用
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id_created_at ON comments(article_id, created_at)`,
		// 管理画面の新着順一覧用
		`CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown rolls back the schema.
// Use with caution: this deletes all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS comments CASCADE`,
		`DROP TABLE IF EXISTS articles CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
