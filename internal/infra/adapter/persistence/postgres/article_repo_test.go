package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"inkpress/internal/domain/entity"
	"inkpress/internal/infra/adapter/persistence/postgres"
)

/* ──────────────────────────────── ヘルパ ──────────────────────────────── */

func articleRow(art *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "content", "author_id", "hits",
		"tags", "category", "status", "type",
		"allow_comment", "comment_count", "created_at", "modified_at",
	}).AddRow(
		art.ID, art.Title, art.Content, art.AuthorID, art.Hits,
		art.Tags, art.Category, art.Status, art.Type,
		art.AllowComment, art.CommentCount, art.CreatedAt, art.ModifiedAt,
	)
}

func sampleArticle(now time.Time) *entity.Article {
	return &entity.Article{
		Record:       entity.Record{ID: 1, CreatedAt: now, ModifiedAt: now},
		Title:        "hello world",
		Content:      "body text",
		AuthorID:     1,
		Hits:         42,
		Tags:         "go,blog",
		Category:     "dev",
		Status:       entity.StatusPublish,
		Type:         entity.TypePost,
		AllowComment: true,
		CommentCount: 3,
	}
}

/* ──────────────────────────────── 1. Get ──────────────────────────────── */

func TestArticleRepo_GetPublishedPost(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleArticle(time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs(int64(1)).
		WillReturnRows(articleRow(want))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.GetPublishedPost(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPublishedPost err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_GetPublishedPost_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// 空の結果セットは (nil, nil)
	empty := sqlmock.NewRows([]string{
		"id", "title", "content", "author_id", "hits",
		"tags", "category", "status", "type",
		"allow_comment", "comment_count", "created_at", "modified_at",
	})
	mock.ExpectQuery(`FROM articles`).WithArgs(int64(99)).WillReturnRows(empty)

	repo := postgres.NewArticleRepo(db)
	got, err := repo.GetPublishedPost(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetPublishedPost err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing row, got %+v", got)
	}
}

/* ──────────────────────────────── 2. List ──────────────────────────────── */

func TestArticleRepo_ListPublishedPosts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(`FROM articles`).
		WithArgs(20, 0).
		WillReturnRows(articleRow(sampleArticle(now)))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.ListPublishedPosts(context.Background(), 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListPublishedPosts err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CountPublishedPosts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.CountPublishedPosts(context.Background())
	if err != nil || got != 7 {
		t.Fatalf("CountPublishedPosts err=%v got=%d", err, got)
	}
}

/* ──────────────────────────────── 3. UpdateHits ──────────────────────────────── */

func TestArticleRepo_UpdateHits(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE articles SET hits = $1 WHERE id = $2`)).
		WithArgs(int64(52), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewArticleRepo(db)
	if err := repo.UpdateHits(context.Background(), 1, 52); err != nil {
		t.Fatalf("UpdateHits err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_UpdateHits_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE articles`).
		WithArgs(int64(52), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewArticleRepo(db)
	if err := repo.UpdateHits(context.Background(), 99, 52); err == nil {
		t.Fatal("want error for missing article")
	}
}

/* ──────────────────────────────── 4. AddCommentCount ──────────────────────────────── */

func TestArticleRepo_AddCommentCount(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`comment_count = comment_count + $1`)).
		WithArgs(int64(1), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewArticleRepo(db)
	if err := repo.AddCommentCount(context.Background(), 1, 1); err != nil {
		t.Fatalf("AddCommentCount err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
