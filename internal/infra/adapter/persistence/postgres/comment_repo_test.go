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

func commentRow(c *entity.Comment) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "article_id", "parent_id", "content", "name",
		"email", "website", "ip", "agent",
		"agree", "disagree", "created_at", "modified_at",
	}).AddRow(
		c.ID, c.ArticleID, c.ParentID, c.Content, c.Name,
		c.Email, c.Website, c.IP, c.Agent,
		c.Agree, c.Disagree, c.CreatedAt, c.ModifiedAt,
	)
}

func sampleComment(now time.Time) *entity.Comment {
	parentID := int64(7)
	return &entity.Comment{
		Record:    entity.Record{ID: 11, CreatedAt: now, ModifiedAt: now},
		ArticleID: 1,
		ParentID:  &parentID,
		Content:   "nice post",
		Name:      "alice",
		Email:     "alice@example.com",
		Website:   "https://alice.example.com",
		IP:        "203.0.113.7",
		Agent:     "Mozilla/5.0",
		Agree:     2,
		Disagree:  1,
	}
}

/* ──────────────────────────────── 1. Insert / Get ──────────────────────────────── */

func TestCommentRepo_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	c := sampleComment(time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO comments`)).
		WithArgs(c.ArticleID, c.ParentID, c.Content, c.Name,
			c.Email, c.Website, c.IP, c.Agent).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	repo := postgres.NewCommentRepo(db)
	id, err := repo.Insert(context.Background(), c)
	if err != nil || id != 11 {
		t.Fatalf("Insert err=%v id=%d", err, id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleComment(time.Now())
	mock.ExpectQuery(`FROM comments`).
		WithArgs(int64(11)).
		WillReturnRows(commentRow(want))

	repo := postgres.NewCommentRepo(db)
	got, err := repo.Get(context.Background(), 11)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentRepo_Get_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	empty := sqlmock.NewRows([]string{
		"id", "article_id", "parent_id", "content", "name",
		"email", "website", "ip", "agent",
		"agree", "disagree", "created_at", "modified_at",
	})
	mock.ExpectQuery(`FROM comments`).WithArgs(int64(99)).WillReturnRows(empty)

	repo := postgres.NewCommentRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil) for missing row, got (%+v, %v)", got, err)
	}
}

/* ──────────────────────────────── 2. List ──────────────────────────────── */

func TestCommentRepo_ListByArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`ORDER BY created_at ASC`).
		WithArgs(int64(1), 20, 0).
		WillReturnRows(commentRow(sampleComment(time.Now())))

	repo := postgres.NewCommentRepo(db)
	got, err := repo.ListByArticle(context.Background(), 1, 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByArticle err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`ORDER BY created_at DESC`).
		WithArgs(50, 0).
		WillReturnRows(commentRow(sampleComment(time.Now())))

	repo := postgres.NewCommentRepo(db)
	got, err := repo.List(context.Background(), 0, 50)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

/* ──────────────────────────────── 3. IncrementAssessment ──────────────────────────────── */

func TestCommentRepo_IncrementAssessment(t *testing.T) {
	tests := []struct {
		kind  entity.AssessKind
		query string
	}{
		{entity.AssessAgree, `SET agree = agree + 1`},
		{entity.AssessDisagree, `SET disagree = disagree + 1`},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(int64(11)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			repo := postgres.NewCommentRepo(db)
			ok, err := repo.IncrementAssessment(context.Background(), 11, tt.kind)
			if err != nil || !ok {
				t.Fatalf("IncrementAssessment err=%v ok=%v", err, ok)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCommentRepo_IncrementAssessment_Missing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE comments`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewCommentRepo(db)
	ok, err := repo.IncrementAssessment(context.Background(), 99, entity.AssessAgree)
	if err != nil {
		t.Fatalf("IncrementAssessment err=%v", err)
	}
	if ok {
		t.Fatal("want ok=false for missing comment")
	}
}

/* ──────────────────────────────── 4. Delete ──────────────────────────────── */

func TestCommentRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments`)).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewCommentRepo(db)
	if err := repo.Delete(context.Background(), 11); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestCommentRepo_Delete_Missing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM comments`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewCommentRepo(db)
	if err := repo.Delete(context.Background(), 99); err == nil {
		t.Fatal("want error for missing comment")
	}
}
