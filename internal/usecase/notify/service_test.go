package notify_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/domain/entity"
	"inkpress/internal/usecase/notify"
)

/* ───────── スタブ実装 ───────── */

// 送信先を記録するインメモリ Mailer
type stubMailer struct {
	mu    sync.Mutex
	sends []string
	err   error
	delay time.Duration
}

func (m *stubMailer) Send(ctx context.Context, to string, detail *entity.CommentDetail) error {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, to)
	return nil
}

func (m *stubMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sends...)
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func detailWithParentEmail(email string) *entity.CommentDetail {
	parentID := int64(1)
	return &entity.CommentDetail{
		Comment: entity.Comment{
			Record:    entity.Record{ID: 2},
			ArticleID: 5,
			ParentID:  &parentID,
			Content:   "<p>reply</p>",
			Name:      "alice",
		},
		Parent: &entity.Comment{
			Record:  entity.Record{ID: 1},
			Content: "<p>first</p>",
			Name:    "bob",
			Email:   email,
		},
	}
}

func drain(t *testing.T, svc notify.Service) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))
}

/* ───────── テストケース ───────── */

func TestNotifyNewComment_ParentWithEmail(t *testing.T) {
	m := &stubMailer{}
	svc := notify.NewService(m, "admin@example.com", 4, discard())

	require.NoError(t, svc.NotifyNewComment(context.Background(), detailWithParentEmail("bob@example.com")))
	drain(t, svc)

	got := m.recipients()
	assert.Len(t, got, 2, "admin + parent author")
	assert.Contains(t, got, "admin@example.com")
	assert.Contains(t, got, "bob@example.com")
}

func TestNotifyNewComment_ParentWithoutEmail(t *testing.T) {
	m := &stubMailer{}
	svc := notify.NewService(m, "admin@example.com", 4, discard())

	require.NoError(t, svc.NotifyNewComment(context.Background(), detailWithParentEmail("")))
	drain(t, svc)

	assert.Equal(t, []string{"admin@example.com"}, m.recipients(), "admin only")
}

func TestNotifyNewComment_TopLevel(t *testing.T) {
	m := &stubMailer{}
	svc := notify.NewService(m, "admin@example.com", 4, discard())

	detail := &entity.CommentDetail{
		Comment: entity.Comment{Record: entity.Record{ID: 3}, ArticleID: 5, Name: "carol"},
	}
	require.NoError(t, svc.NotifyNewComment(context.Background(), detail))
	drain(t, svc)

	assert.Equal(t, []string{"admin@example.com"}, m.recipients())
}

func TestNotifyNewComment_DeliveryFailureDoesNotPropagate(t *testing.T) {
	m := &stubMailer{err: errors.New("smtp unreachable")}
	svc := notify.NewService(m, "admin@example.com", 4, discard())

	err := svc.NotifyNewComment(context.Background(), detailWithParentEmail("bob@example.com"))
	assert.NoError(t, err, "dispatch must succeed even when delivery fails")
	drain(t, svc)
}

func TestNotifyNewComment_NilDetail(t *testing.T) {
	m := &stubMailer{}
	svc := notify.NewService(m, "admin@example.com", 4, discard())

	require.NoError(t, svc.NotifyNewComment(context.Background(), nil))
	drain(t, svc)
	assert.Empty(t, m.recipients())
}

func TestShutdown_WaitsForInflight(t *testing.T) {
	m := &stubMailer{delay: 50 * time.Millisecond}
	svc := notify.NewService(m, "admin@example.com", 4, discard())

	require.NoError(t, svc.NotifyNewComment(context.Background(), detailWithParentEmail("bob@example.com")))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))

	assert.Len(t, m.recipients(), 2, "in-flight deliveries completed before shutdown returned")
}
