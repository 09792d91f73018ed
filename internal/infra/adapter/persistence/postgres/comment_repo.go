package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inkpress/internal/domain/entity"
	"inkpress/internal/repository"
)

const commentColumns = `id, article_id, parent_id, content, name, email, website, ip, agent, agree, disagree, created_at, modified_at`

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func scanComment(row interface{ Scan(...any) error }) (*entity.Comment, error) {
	var comment entity.Comment
	var parentID sql.NullInt64
	err := row.Scan(&comment.ID, &comment.ArticleID, &parentID, &comment.Content,
		&comment.Name, &comment.Email, &comment.Website, &comment.IP, &comment.Agent,
		&comment.Agree, &comment.Disagree, &comment.CreatedAt, &comment.ModifiedAt)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		comment.ParentID = &parentID.Int64
	}
	return &comment, nil
}

func (repo *CommentRepo) Insert(ctx context.Context, c *entity.Comment) (int64, error) {
	defer observe("comment_insert", time.Now())
	const query = `
INSERT INTO comments
       (article_id, parent_id, content, name, email, website, ip, agent)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		c.ArticleID, c.ParentID, c.Content, c.Name,
		c.Email, c.Website, c.IP, c.Agent,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("Insert: %w", err)
	}
	return id, nil
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	defer observe("comment_get", time.Now())
	const query = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = $1
LIMIT 1`
	comment, err := scanComment(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return comment, nil
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64, offset, limit int) ([]*entity.Comment, error) {
	defer observe("comment_list_by_article", time.Now())
	const query = `
SELECT ` + commentColumns + `
FROM comments
WHERE article_id = $1
ORDER BY created_at ASC
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, query, articleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, limit)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	defer observe("comment_count_by_article", time.Now())
	const query = `SELECT COUNT(*) FROM comments WHERE article_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, articleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByArticle: %w", err)
	}
	return count, nil
}

func (repo *CommentRepo) List(ctx context.Context, offset, limit int) ([]*entity.Comment, error) {
	defer observe("comment_list", time.Now())
	const query = `
SELECT ` + commentColumns + `
FROM comments
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, limit)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Count(ctx context.Context) (int64, error) {
	defer observe("comment_count", time.Now())
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// IncrementAssessment bumps one counter inside the database so
// concurrent assessments of the same comment never lose updates.
func (repo *CommentRepo) IncrementAssessment(ctx context.Context, id int64, kind entity.AssessKind) (bool, error) {
	defer observe("comment_increment_assessment", time.Now())
	var query string
	switch kind {
	case entity.AssessAgree:
		query = `UPDATE comments SET agree = agree + 1 WHERE id = $1`
	case entity.AssessDisagree:
		query = `UPDATE comments SET disagree = disagree + 1 WHERE id = $1`
	default:
		return false, fmt.Errorf("IncrementAssessment: unknown kind %q", kind)
	}
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("IncrementAssessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("IncrementAssessment: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	defer observe("comment_delete", time.Now())
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
