// Package notify dispatches best-effort notifications after a comment is
// persisted. Delivery runs on background goroutines; failures are logged
// and counted but never propagate to the comment-creation response.
package notify

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/requestid"
	"inkpress/internal/infra/mailer"
	"inkpress/internal/observability/metrics"
)

const (
	workerPoolTimeout = 5 * time.Second  // Timeout for acquiring a worker slot
	deliveryTimeout   = 30 * time.Second // Timeout for an individual delivery
)

// Recipient types used in logs and metrics.
const (
	recipientAdmin        = "admin"
	recipientParentAuthor = "parent_author"
)

// Service dispatches comment notifications.
//
// Dispatch is non-blocking: the caller returns once delivery has been
// initiated, and a failed delivery is terminal for that event (no
// retry). This keeps notification strictly decoupled from persistence
// success.
type Service interface {
	// NotifyNewComment dispatches notifications for a newly persisted
	// comment: always to the site administrator, and additionally to the
	// parent comment's author when the parent resolved with a non-empty
	// email. Always returns nil; errors are handled internally.
	NotifyNewComment(ctx context.Context, detail *entity.CommentDetail) error

	// Shutdown waits for in-flight deliveries to complete or the context
	// to expire.
	Shutdown(ctx context.Context) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	mailer     mailer.Mailer
	adminEmail string
	workerPool chan struct{} // semaphore bounding concurrent deliveries
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewService creates a notification service delivering through m.
// maxConcurrent bounds parallel deliveries (recommended: 4-16).
func NewService(m mailer.Mailer, adminEmail string, maxConcurrent int, logger *slog.Logger) Service {
	if maxConcurrent < 1 {
		maxConcurrent = 4
	}
	return &service{
		mailer:     m,
		adminEmail: adminEmail,
		workerPool: make(chan struct{}, maxConcurrent),
		logger:     logger,
	}
}

// NotifyNewComment implements Service.NotifyNewComment.
func (s *service) NotifyNewComment(ctx context.Context, detail *entity.CommentDetail) error {
	if detail == nil {
		s.logger.Warn("nil comment detail passed to notification dispatch")
		return nil
	}

	// Inherit a request ID from the caller when present, for tracing.
	requestID := requestid.FromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	type target struct {
		kind string
		to   string
	}
	targets := make([]target, 0, 2)
	if s.adminEmail != "" {
		targets = append(targets, target{recipientAdmin, s.adminEmail})
	}
	if detail.Parent != nil && detail.Parent.Email != "" {
		targets = append(targets, target{recipientParentAuthor, detail.Parent.Email})
	}

	if len(targets) == 0 {
		s.logger.Debug("no notification recipients",
			slog.String("request_id", requestID),
			slog.Int64("comment_id", detail.ID))
		return nil
	}

	s.logger.Info("dispatching comment notifications",
		slog.String("request_id", requestID),
		slog.Int64("comment_id", detail.ID),
		slog.Int64("article_id", detail.ArticleID),
		slog.Int("recipients", len(targets)))

	for _, tgt := range targets {
		s.wg.Add(1)
		go s.deliver(requestID, tgt.kind, tgt.to, detail)
	}
	return nil
}

// deliver sends one notification on a background goroutine.
func (s *service) deliver(requestID, kind, to string, detail *entity.CommentDetail) {
	defer s.wg.Done()

	// A panicking mail path must not take the process down.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during notification delivery",
				slog.String("request_id", requestID),
				slog.String("recipient", kind),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	// Acquire a worker slot; drop rather than block when saturated.
	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-time.After(workerPoolTimeout):
		s.logger.Warn("notification dropped: worker pool full",
			slog.String("request_id", requestID),
			slog.String("recipient", kind))
		metrics.RecordNotificationDropped("pool_full")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	start := time.Now()
	err := s.mailer.Send(ctx, to, detail)
	metrics.RecordNotification(kind, err == nil, time.Since(start))

	if err != nil {
		// Terminal for this event: logged, counted, never surfaced.
		s.logger.Error("notification delivery failed",
			slog.String("request_id", requestID),
			slog.String("recipient", kind),
			slog.Int64("comment_id", detail.ID),
			slog.Any("error", err))
		return
	}

	s.logger.Debug("notification delivered",
		slog.String("request_id", requestID),
		slog.String("recipient", kind),
		slog.Int64("comment_id", detail.ID))
}

// Shutdown implements Service.Shutdown.
func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		metrics.RecordNotificationDropped("shutdown")
		return ctx.Err()
	}
}
