// Package postgres implements the repository interfaces on PostgreSQL
// through database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inkpress/internal/domain/entity"
	"inkpress/internal/observability/metrics"
	"inkpress/internal/repository"
)

// observe records one query duration. Used as `defer observe(op, time.Now())`.
func observe(op string, start time.Time) {
	metrics.RecordQueryDuration(op, time.Since(start))
}

const articleColumns = `id, title, content, author_id, hits, tags, category, status, type, allow_comment, comment_count, created_at, modified_at`

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(row interface{ Scan(...any) error }) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.Title, &article.Content, &article.AuthorID,
		&article.Hits, &article.Tags, &article.Category, &article.Status, &article.Type,
		&article.AllowComment, &article.CommentCount, &article.CreatedAt, &article.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("article_get", time.Now())
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetPublishedPost(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("article_get_published", time.Now())
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
  AND status = 'publish'
  AND type = 'post'
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetPublishedPost: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetPublishedPageByTitle(ctx context.Context, title string) (*entity.Article, error) {
	defer observe("article_get_page", time.Now())
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE title = $1
  AND status = 'publish'
  AND type = 'page'
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, title))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetPublishedPageByTitle: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) ListPublishedPosts(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	defer observe("article_list_published", time.Now())
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE status = 'publish'
  AND type = 'post'
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedPosts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPublishedPosts: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) CountPublishedPosts(ctx context.Context) (int64, error) {
	defer observe("article_count_published", time.Now())
	const query = `SELECT COUNT(*) FROM articles WHERE status = 'publish' AND type = 'post'`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPublishedPosts: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) UpdateHits(ctx context.Context, id int64, hits int64) error {
	defer observe("article_update_hits", time.Now())
	const query = `UPDATE articles SET hits = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, hits, id)
	if err != nil {
		return fmt.Errorf("UpdateHits: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateHits: no rows affected")
	}
	return nil
}

// AddCommentCount adjusts the counter inside the database so concurrent
// comment writes never lose updates.
func (repo *ArticleRepo) AddCommentCount(ctx context.Context, id int64, delta int64) error {
	defer observe("article_add_comment_count", time.Now())
	const query = `UPDATE articles SET comment_count = comment_count + $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("AddCommentCount: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("AddCommentCount: no rows affected")
	}
	return nil
}
